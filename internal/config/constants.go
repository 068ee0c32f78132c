package config

import "time"

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.yaml"
)

// Account store backends
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// MaxSpinBatch is the largest number of spins bought in one request.
const MaxSpinBatch = 3

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "spin-economy"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultAccountCacheSize  = 1000
	DefaultAccountCacheTTL   = 5 * time.Minute

	DefaultDailyReward = 100
	DefaultDailyXP     = 25
	DefaultSpinCostX1  = 50
	DefaultSpinCostX2  = 100
	DefaultSpinCostX3  = 150

	DefaultChatCooldown  = time.Minute
	DefaultVoiceCooldown = 2 * time.Minute
	DefaultChatMin       = 1
	DefaultChatMax       = 5
	DefaultVoiceMin      = 2
	DefaultVoiceMax      = 10

	DefaultBlackjackBet         = 25
	DefaultBlackjackWin         = 25
	DefaultBlackjackNatural     = 37
	DefaultRouletteMultiplier   = 2
	DefaultRouletteBet          = 25
	DefaultSessionTTL           = 10 * time.Minute
	DefaultSessionSweepInterval = time.Minute

	DefaultEventLogRetentionDays   = 30
	DefaultEventLogCleanupInterval = 24 * time.Hour
	DefaultEventLogMemoryCapacity  = 10000
)
