package eventlog

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps the newest events in process. Once capacity is
// reached the oldest event is dropped.
type MemoryRepository struct {
	mu       sync.RWMutex
	events   []Event
	nextID   int64
	capacity int
	now      func() time.Time
}

// NewMemoryRepository creates a MemoryRepository. A non-positive capacity
// uses DefaultMemoryCapacity.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryRepository{capacity: capacity, now: time.Now}
}

func (r *MemoryRepository) LogEvent(_ context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if len(r.events) >= r.capacity {
		r.events = append(r.events[:0], r.events[1:]...)
	}
	r.events = append(r.events, Event{
		ID:        r.nextID,
		EventType: eventType,
		UserID:    userID,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: r.now(),
	})
	return nil
}

func (r *MemoryRepository) GetEventsByUser(_ context.Context, userID string, limit int) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Event
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		evt := r.events[i]
		if evt.UserID != nil && *evt.UserID == userID {
			out = append(out, evt)
		}
	}
	return out, nil
}

func (r *MemoryRepository) CleanupOldEvents(_ context.Context, retentionDays int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().AddDate(0, 0, -retentionDays)
	kept := r.events[:0]
	for _, evt := range r.events {
		if !evt.CreatedAt.Before(cutoff) {
			kept = append(kept, evt)
		}
	}
	removed := int64(len(r.events) - len(kept))
	r.events = kept
	return removed, nil
}
