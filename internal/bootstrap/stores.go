package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/config"
	"github.com/osse101/SpinEconomy_Go/internal/cooldown"
	"github.com/osse101/SpinEconomy_Go/internal/database"
	"github.com/osse101/SpinEconomy_Go/internal/database/memory"
	"github.com/osse101/SpinEconomy_Go/internal/database/postgres"
	"github.com/osse101/SpinEconomy_Go/internal/database/redis"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/eventlog"
	"github.com/osse101/SpinEconomy_Go/internal/repository"
	"github.com/osse101/SpinEconomy_Go/internal/user"
)

// Stores holds the persistence layer selected by configuration.
type Stores struct {
	Accounts  repository.AccountStore
	Cooldowns cooldown.Service
	EventLog  eventlog.Repository
	Health    repository.HealthChecker

	closers []func()
}

// Close releases connections in reverse order of acquisition.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// InitializeStores opens the configured account backend, wraps it in the
// account cache and picks the matching cooldown and event log backends.
// Postgres is migrated before use. Redis and memory keep cooldowns and the
// event log in process.
func InitializeStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	cooldownCfg := cooldown.Config{
		Cooldowns: map[string]time.Duration{
			cooldown.ActionName(domain.ActivityChat):  cfg.Economy.ChatCooldown,
			cooldown.ActionName(domain.ActivityVoice): cfg.Economy.VoiceCooldown,
		},
	}

	stores := &Stores{}
	var inner repository.AccountStore

	switch cfg.StoreBackend {
	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		stores.closers = append(stores.closers, pool.Close)

		if err := database.Migrate(ctx, pool); err != nil {
			stores.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDatabase, err)
		}

		inner = postgres.NewAccountStore(pool)
		stores.Cooldowns = cooldown.NewPostgresService(pool, cooldownCfg)
		stores.EventLog = postgres.NewEventLogRepository(pool)

	case config.StoreRedis:
		rs, err := redis.NewStore(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}
		stores.closers = append(stores.closers, func() {
			if err := rs.Close(); err != nil {
				slog.Warn(LogMsgStoreCloseFailed, "backend", config.StoreRedis, "error", err)
			}
		})

		inner = rs
		stores.Cooldowns = cooldown.NewMemoryService(cooldownCfg)
		stores.EventLog = eventlog.NewMemoryRepository(cfg.EventLog.MemoryCapacity)

	case config.StoreMemory:
		inner = memory.NewStore()
		stores.Cooldowns = cooldown.NewMemoryService(cooldownCfg)
		stores.EventLog = eventlog.NewMemoryRepository(cfg.EventLog.MemoryCapacity)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreBackend, cfg.StoreBackend)
	}
	slog.Info(LogMsgStoreSelected, "backend", cfg.StoreBackend)

	// The memory store is already in process; caching it only costs copies
	if cfg.StoreBackend != config.StoreMemory && cfg.AccountCacheSize > 0 {
		inner = user.NewCachedStore(inner, user.CacheConfig{Size: cfg.AccountCacheSize, TTL: cfg.AccountCacheTTL})
		slog.Info(LogMsgAccountCacheActive, "size", cfg.AccountCacheSize, "ttl", cfg.AccountCacheTTL)
	}

	stores.Accounts = inner
	if hc, ok := inner.(repository.HealthChecker); ok {
		stores.Health = hc
	}
	return stores, nil
}
