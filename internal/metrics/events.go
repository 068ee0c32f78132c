package metrics

import (
	"context"

	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all economy events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. Decode failures are
// logged and swallowed so metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ActivityRewarded:
		var p event.ActivityRewardedPayloadV1
		if p, err = event.DecodePayload[event.ActivityRewardedPayloadV1](evt.Payload); err == nil {
			CurrencyEarned.WithLabelValues(p.Source).Add(float64(p.Amount))
		}

	case event.DailyClaimed:
		var p event.DailyClaimedPayloadV1
		if p, err = event.DecodePayload[event.DailyClaimedPayloadV1](evt.Payload); err == nil {
			DailyClaims.Inc()
			CurrencyEarned.WithLabelValues(SourceDaily).Add(float64(p.Currency))
		}

	case event.ItemPurchased:
		var p event.ItemPurchasedPayloadV1
		if p, err = event.DecodePayload[event.ItemPurchasedPayloadV1](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.ItemID).Inc()
			CurrencySpent.WithLabelValues(SourcePurchase).Add(float64(p.Price))
			if p.Warning != "" {
				UnknownEffectPurchases.Inc()
			}
		}

	case event.SpinCompleted:
		var p event.SpinCompletedPayloadV1
		if p, err = event.DecodePayload[event.SpinCompletedPayloadV1](evt.Payload); err == nil {
			CurrencySpent.WithLabelValues(SourceSpin).Add(float64(p.Cost))
			for _, r := range p.Rewards {
				RewardsDrawn.WithLabelValues(r.CategoryKey).Inc()
			}
		}

	case event.RoleClaimed:
		RoleClaims.Inc()

	case event.GameSettled:
		var p event.GameSettledPayloadV1
		if p, err = event.DecodePayload[event.GameSettledPayloadV1](evt.Payload); err == nil {
			GamesSettled.WithLabelValues(p.Game, p.Outcome).Inc()
			if p.Delta > 0 {
				CurrencyEarned.WithLabelValues(p.Game).Add(float64(p.Delta))
			} else if p.Delta < 0 {
				CurrencySpent.WithLabelValues(p.Game).Add(float64(-p.Delta))
			}
		}
	}

	if err != nil {
		log.Debug(LogMsgDecodePayloadFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
