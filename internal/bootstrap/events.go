package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/eventlog"
	"github.com/osse101/SpinEconomy_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector and the event logger to it. Services publish through
// their own event.Publisher, so delivery retries happen off the request path.
func InitializeEventSystem(eventLogRepo eventlog.Repository) (*event.MemoryBus, eventlog.Service, error) {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	eventLog := eventlog.NewService(eventLogRepo)
	if err := eventLog.Subscribe(bus); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLog, err)
	}
	slog.Info(LogMsgEventLogSubscribed)

	slog.Info(LogMsgEventSystemInitialized)
	return bus, eventLog, nil
}
