package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// History paging
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// DefaultMemoryCapacity bounds the in-process log
const DefaultMemoryCapacity = 10000

// JobNameCleanup names the retention job
const JobNameCleanup = "event_log_cleanup"

// Log messages - service events
const (
	LogMsgEventPayloadNotObject = "Event payload is not an object, skipping log"
	LogMsgFailedToLogEvent      = "Failed to log event"
	LogMsgEventLogged           = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldUserID        = "user_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
