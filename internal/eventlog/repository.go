package eventlog

import (
	"context"
	"time"
)

// Event represents a logged event
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	UserID    *string                `json:"user_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event
	LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error

	// GetEventsByUser returns the newest events for a user, newest first
	GetEventsByUser(ctx context.Context, userID string, limit int) ([]Event, error)

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
