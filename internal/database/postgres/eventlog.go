package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/eventlog"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) eventlog.Repository {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeEvent, eventType, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf(ErrMsgEncodeEvent, eventType, err)
		}
	}

	if _, err := r.db.Exec(ctx, SQLInsertEvent, eventType, userID, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%w: "+ErrMsgLogEvent, domain.ErrStoreUnavailable, eventType, err)
	}
	return nil
}

// GetEventsByUser retrieves events for a specific user
func (r *eventLogRepository) GetEventsByUser(ctx context.Context, userID string, limit int) ([]eventlog.Event, error) {
	rows, err := r.db.Query(ctx, SQLSelectEventsByUser, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgQueryEvents, domain.ErrStoreUnavailable, userID, err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgQueryEvents, domain.ErrStoreUnavailable, userID, err)
	}
	return events, nil
}

// CleanupOldEvents removes events older than the specified number of days
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	result, err := r.db.Exec(ctx, SQLDeleteEventsOlderThan, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%w: "+ErrMsgCleanupEvent, domain.ErrStoreUnavailable, err)
	}
	return result.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]eventlog.Event, error) {
	var events []eventlog.Event

	for rows.Next() {
		var evt eventlog.Event
		var payloadJSON, metadataJSON []byte

		if err := rows.Scan(
			&evt.ID,
			&evt.EventType,
			&evt.UserID,
			&payloadJSON,
			&metadataJSON,
			&evt.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeEvent, evt.ID, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf(ErrMsgDecodeEvent, evt.ID, err)
			}
		}

		events = append(events, evt)
	}

	return events, rows.Err()
}
