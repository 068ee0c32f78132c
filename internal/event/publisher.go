package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// PublisherConfig configures the Publisher
type PublisherConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultPublisherConfig returns the retry settings used by the services
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		MaxRetries: DefaultPublishRetries,
		RetryDelay: DefaultPublishRetryDelay,
	}
}

// Publisher publishes events off the caller's goroutine and retries failed
// deliveries with a linear backoff. Shutdown waits for everything in flight.
type Publisher struct {
	inner  Bus
	config PublisherConfig
	wg     sync.WaitGroup
}

// NewPublisher wraps inner. A nil inner makes Publish a no-op.
func NewPublisher(inner Bus, config PublisherConfig) *Publisher {
	return &Publisher{
		inner:  inner,
		config: config,
	}
}

// Publish hands the event to the bus in the background. The request context
// is detached so a finished request does not cancel delivery.
func (p *Publisher) Publish(ctx context.Context, evt Event) {
	if p == nil || p.inner == nil {
		return
	}

	bgCtx := context.WithoutCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.deliver(bgCtx, evt)
	}()
}

func (p *Publisher) deliver(ctx context.Context, evt Event) {
	log := logger.FromContext(ctx)

	err := p.inner.Publish(ctx, evt)
	if err == nil {
		return
	}
	log.Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err, "retries", p.config.MaxRetries)

	for i := 1; i <= p.config.MaxRetries; i++ {
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		if err = p.retry(ctx, evt, err); err == nil {
			log.Info(LogMsgPublishRetrySucceeded, "event_type", evt.Type, "attempt", i)
			return
		}
		log.Warn(LogMsgPublishRetryFailed, "event_type", evt.Type, "attempt", i, "error", err)
	}

	log.Error(LogMsgPublishGaveUp, "event_type", evt.Type, "error", err)
}

// retry re-runs only the subscribers that failed last time when the bus says
// which ones they were; otherwise the whole event is published again.
func (p *Publisher) retry(ctx context.Context, evt Event, last error) error {
	var delivery *DeliveryError
	if errors.As(last, &delivery) {
		return deliverTo(ctx, evt, delivery.Failed)
	}
	return p.inner.Publish(ctx, evt)
}

// Shutdown blocks until in-flight deliveries finish or ctx expires
func (p *Publisher) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgPublisherShutdown, ctx.Err())
	}
}
