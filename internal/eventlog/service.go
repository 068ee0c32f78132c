// Package eventlog keeps an audit trail of economy events and serves it back
// as per-account history.
package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all economy events
	Subscribe(bus event.Bus) error

	// History returns an account's newest events. Limit is clamped to
	// [1, MaxHistoryLimit]; zero means DefaultHistoryLimit.
	History(ctx context.Context, userID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, ok := toObject(evt.Payload)
	if !ok {
		log.Debug(LogMsgEventPayloadNotObject, LogFieldType, evt.Type)
		return nil
	}
	metadata, _ := toObject(evt.Metadata)

	var userID *string
	if uid, ok := payload[PayloadKeyUserID].(string); ok && uid != "" {
		userID = &uid
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

func (s *service) History(ctx context.Context, userID string, limit int) ([]Event, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.GetEventsByUser(ctx, userID, limit)
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}

// toObject turns a typed payload into a JSON object map. Non-object payloads
// report false.
func toObject(v interface{}) (map[string]interface{}, bool) {
	switch p := v.(type) {
	case nil:
		return nil, false
	case map[string]interface{}:
		return p, true
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}
