package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Host           string
	Port           int
	APIKey         string   // API key for authentication
	TrustedProxies []string // Proxies whose X-Forwarded-For is honoured
	LogLevel       string
	LogFormat      string
	LogDir         string
	ServiceName    string
	Version        string
	Environment    string

	// Account storage
	StoreBackend      string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	AccountCacheSize  int
	AccountCacheTTL   time.Duration

	// Catalogs
	CatalogPath string

	Economy  EconomyConfig
	Games    GamesConfig
	EventLog EventLogConfig
}

// EconomyConfig holds ledger amounts and activity cooldowns.
type EconomyConfig struct {
	DailyReward   int
	DailyXP       int
	SpinCosts     [MaxSpinBatch]int
	ChatCooldown  time.Duration
	VoiceCooldown time.Duration
	ChatMin       int
	ChatMax       int
	VoiceMin      int
	VoiceMax      int
}

// SpinCost returns the configured price of a batch of n spins.
func (e EconomyConfig) SpinCost(n int) (int, bool) {
	if n < 1 || n > MaxSpinBatch {
		return 0, false
	}
	return e.SpinCosts[n-1], true
}

// GamesConfig holds game stakes and session housekeeping.
type GamesConfig struct {
	BlackjackBet           int
	BlackjackWinPayout     int
	BlackjackNaturalPayout int
	RouletteMultiplier     int
	RouletteDefaultBet     int
	SessionTTL             time.Duration
	SessionSweepInterval   time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Host:           getEnv("HOST", ""),
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:         getEnv("LOG_DIR", DefaultLogDir),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", DefaultVersion),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),

		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "spineconomy"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		AccountCacheSize:  getEnvAsInt("ACCOUNT_CACHE_SIZE", DefaultAccountCacheSize),
		AccountCacheTTL:   getEnvAsDuration("ACCOUNT_CACHE_TTL", DefaultAccountCacheTTL),

		CatalogPath: getEnv("CATALOG_PATH", ConfigPathCatalog),

		Economy: EconomyConfig{
			DailyReward: getEnvAsInt("DAILY_REWARD", DefaultDailyReward),
			DailyXP:     getEnvAsInt("DAILY_XP", DefaultDailyXP),
			SpinCosts: [MaxSpinBatch]int{
				getEnvAsInt("SPIN_COST_X1", DefaultSpinCostX1),
				getEnvAsInt("SPIN_COST_X2", DefaultSpinCostX2),
				getEnvAsInt("SPIN_COST_X3", DefaultSpinCostX3),
			},
			ChatCooldown:  getEnvAsDuration("CHAT_COOLDOWN", DefaultChatCooldown),
			VoiceCooldown: getEnvAsDuration("VOICE_COOLDOWN", DefaultVoiceCooldown),
			ChatMin:       getEnvAsInt("CHAT_REWARD_MIN", DefaultChatMin),
			ChatMax:       getEnvAsInt("CHAT_REWARD_MAX", DefaultChatMax),
			VoiceMin:      getEnvAsInt("VOICE_REWARD_MIN", DefaultVoiceMin),
			VoiceMax:      getEnvAsInt("VOICE_REWARD_MAX", DefaultVoiceMax),
		},
		Games: GamesConfig{
			BlackjackBet:           getEnvAsInt("BLACKJACK_BET", DefaultBlackjackBet),
			BlackjackWinPayout:     getEnvAsInt("BLACKJACK_WIN_PAYOUT", DefaultBlackjackWin),
			BlackjackNaturalPayout: getEnvAsInt("BLACKJACK_NATURAL_PAYOUT", DefaultBlackjackNatural),
			RouletteMultiplier:     getEnvAsInt("ROULETTE_MULTIPLIER", DefaultRouletteMultiplier),
			RouletteDefaultBet:     getEnvAsInt("ROULETTE_DEFAULT_BET", DefaultRouletteBet),
			SessionTTL:             getEnvAsDuration("BLACKJACK_SESSION_TTL", DefaultSessionTTL),
			SessionSweepInterval:   getEnvAsDuration("SESSION_SWEEP_INTERVAL", DefaultSessionSweepInterval),
		},
		EventLog: EventLogConfig{
			RetentionDays:   getEnvAsInt("EVENT_LOG_RETENTION_DAYS", DefaultEventLogRetentionDays),
			CleanupInterval: getEnvAsDuration("EVENT_LOG_CLEANUP_INTERVAL", DefaultEventLogCleanupInterval),
			MemoryCapacity:  getEnvAsInt("EVENT_LOG_MEMORY_CAPACITY", DefaultEventLogMemoryCapacity),
		},
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EventLogConfig holds audit trail retention.
type EventLogConfig struct {
	RetentionDays   int
	CleanupInterval time.Duration
	MemoryCapacity  int
}

// Validate checks value ranges that would break ledger invariants.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT value: %d out of range", c.Port)
	}
	switch c.StoreBackend {
	case StoreMemory, StorePostgres, StoreRedis:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: expected memory, postgres or redis", c.StoreBackend)
	}
	if c.Economy.DailyReward < 0 || c.Economy.DailyXP < 0 {
		return fmt.Errorf("daily reward values must not be negative")
	}
	for i, cost := range c.Economy.SpinCosts {
		if cost < 0 {
			return fmt.Errorf("SPIN_COST_X%d must not be negative", i+1)
		}
	}
	if c.Economy.ChatMin > c.Economy.ChatMax || c.Economy.VoiceMin > c.Economy.VoiceMax {
		return fmt.Errorf("activity reward minimum exceeds maximum")
	}
	if c.Games.BlackjackBet <= 0 || c.Games.RouletteDefaultBet <= 0 {
		return fmt.Errorf("game bets must be positive")
	}
	if c.Games.RouletteMultiplier < 1 {
		return fmt.Errorf("ROULETTE_MULTIPLIER must be at least 1")
	}
	if c.Games.SessionTTL <= 0 || c.Games.SessionSweepInterval <= 0 {
		return fmt.Errorf("session TTL and sweep interval must be positive")
	}
	if c.EventLog.RetentionDays < 1 || c.EventLog.CleanupInterval <= 0 {
		return fmt.Errorf("event log retention and cleanup interval must be positive")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or invalid.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
