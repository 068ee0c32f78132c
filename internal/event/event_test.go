package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	calledAfterError := false

	errHandler := errors.New("handler error")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errHandler
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		calledAfterError = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	require.Error(t, err)
	assert.True(t, calledAfterError, "later handlers still run after an error")
	assert.ErrorIs(t, err, errHandler)

	var delivery *DeliveryError
	require.True(t, errors.As(err, &delivery))
	assert.Len(t, delivery.Failed, 1)
	assert.Equal(t, eventType, delivery.Type)
}

func TestDecodePayload(t *testing.T) {
	evt := NewGameSettledEvent("u1", "roulette", "lost", -25)

	// CASE 1: BEST CASE - in-process payload is already typed
	payload, err := DecodePayload[GameSettledPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, -25, payload.Delta)
	assert.Equal(t, "roulette", evt.GetMetadataValue(MetadataKeyGame))

	// CASE 2: map payload from a serialized source
	decoded, err := DecodePayload[ActivityRewardedPayloadV1](map[string]interface{}{
		"user_id": "u2",
		"source":  string(domain.ActivityVoice),
		"amount":  7,
	})
	require.NoError(t, err)
	assert.Equal(t, "u2", decoded.UserID)
	assert.Equal(t, 7, decoded.Amount)
}
