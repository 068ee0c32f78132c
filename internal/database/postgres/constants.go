package postgres

// SQL queries
const (
	SQLSelectAccount = `
		SELECT user_id, username, currency, xp, spins, last_daily_claim_at, inventory, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
	`

	SQLUpsertAccount = `
		INSERT INTO accounts (user_id, username, currency, xp, spins, last_daily_claim_at, inventory, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			username            = EXCLUDED.username,
			currency            = EXCLUDED.currency,
			xp                  = EXCLUDED.xp,
			spins               = EXCLUDED.spins,
			last_daily_claim_at = EXCLUDED.last_daily_claim_at,
			inventory           = EXCLUDED.inventory,
			updated_at          = EXCLUDED.updated_at
	`
)

// Error messages
const (
	ErrMsgLoadAccount     = "failed to load account %s: %v"
	ErrMsgSaveAccount     = "failed to save account %s: %v"
	ErrMsgDecodeInventory = "failed to decode inventory of %s: %v"
	ErrMsgEncodeInventory = "failed to encode inventory of %s: %w"
)

// Event log queries
const (
	SQLInsertEvent = `
		INSERT INTO event_log (event_type, user_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	SQLSelectEventsByUser = `
		SELECT id, event_type, user_id, payload, metadata, created_at
		FROM event_log
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	SQLDeleteEventsOlderThan = `
		DELETE FROM event_log
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
)

// Event log error messages
const (
	ErrMsgEncodeEvent  = "failed to encode %s event: %w"
	ErrMsgLogEvent     = "failed to log %s event: %v"
	ErrMsgQueryEvents  = "failed to query events of %s: %v"
	ErrMsgDecodeEvent  = "failed to decode event %d: %v"
	ErrMsgCleanupEvent = "failed to clean up events: %v"
)
