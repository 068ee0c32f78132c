package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyGame = "game"
)

// ErrMsgHandlerErrorFormat wraps the errors collected from subscribers
const ErrMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

// Publisher defaults
const (
	DefaultPublishRetries    = 2
	DefaultPublishRetryDelay = 200 * time.Millisecond
)

// Publisher log messages
const (
	LogMsgPublishFailed         = "Failed to publish event, retrying in background"
	LogMsgPublishRetrySucceeded = "Published event after retry"
	LogMsgPublishRetryFailed    = "Retry failed"
	LogMsgPublishGaveUp         = "Dropping event after retries"
	ErrMsgPublisherShutdown     = "publisher shutdown timed out: %w"
)
