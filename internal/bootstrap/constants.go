package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept before a new one is opened
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting SpinEconomy"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Store Configuration
// =============================================================================

const (
	LogMsgStoreSelected      = "Account store selected"
	LogMsgAccountCacheActive = "Account cache enabled"
	LogMsgStoreCloseFailed   = "Store close failed"

	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrateDatabase = "failed to migrate database"
	ErrMsgFailedConnectRedis    = "failed to connect to redis"
	ErrMsgUnknownStoreBackend   = "unknown store backend"
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgCatalogsLoaded = "Catalogs loaded"

	ErrMsgFailedLoadCatalog    = "failed to load catalog file"
	ErrMsgInvalidShopCatalog   = "invalid shop catalog"
	ErrMsgInvalidRewardCatalog = "invalid reward catalog"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLogSubscribed         = "Event logger subscribed"

	ErrMsgFailedSubscribeEventLog = "failed to subscribe event logger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownWorkers  = "Stopping scheduler and workers..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// Service names for shutdown logging
	ServiceNameEconomy      = "economy"
	ServiceNameBlackjack    = "blackjack"
	ServiceNameRoulette     = "roulette"
	ServiceNameCatalogAdmin = "catalog admin"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
