// Package user caches accounts in front of a slower account store.
package user

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/repository"
)

// CacheConfig sizes the account cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache settings
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedAccountEntry wraps an account with version metadata for cache invalidation
type cachedAccountEntry struct {
	Version  string
	Account  *domain.Account
	CachedAt time.Time
}

// CachedStore is a read-through, write-through LRU cache over an account
// store. Callers get copies, never the cached value itself.
type CachedStore struct {
	inner  repository.AccountStore
	lru    *expirable.LRU[string, *cachedAccountEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCachedStore wraps inner with an expiring LRU.
func NewCachedStore(inner repository.AccountStore, config CacheConfig) *CachedStore {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	return &CachedStore{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedAccountEntry](config.Size, nil, config.TTL),
	}
}

func (c *CachedStore) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	if entry, found := c.lru.Get(userID); found {
		if entry.Version == CacheSchemaVersion {
			c.hits.Add(1)
			logger.FromContext(ctx).Debug(LogMsgAccountCacheHit, "user_id", userID)
			return entry.Account.Clone(), nil
		}
		c.lru.Remove(userID)
	}
	c.misses.Add(1)

	acc, err := c.inner.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.set(acc)
	return acc, nil
}

// SaveAccount writes to the backing store first and only caches what was
// stored. A failed save drops the entry so the next read goes to the store.
func (c *CachedStore) SaveAccount(ctx context.Context, account *domain.Account) error {
	if err := c.inner.SaveAccount(ctx, account); err != nil {
		if account != nil {
			c.lru.Remove(account.UserID)
			logger.FromContext(ctx).Debug(LogMsgAccountCacheInvalid, "user_id", account.UserID)
		}
		return err
	}
	c.set(account)
	return nil
}

// Ping forwards to the backing store when it supports health checks.
func (c *CachedStore) Ping(ctx context.Context) error {
	if hc, ok := c.inner.(repository.HealthChecker); ok {
		return hc.Ping(ctx)
	}
	return nil
}

// Invalidate removes an account from the cache.
func (c *CachedStore) Invalidate(userID string) {
	c.lru.Remove(userID)
}

// Clear removes all entries from the cache.
func (c *CachedStore) Clear() {
	c.lru.Purge()
}

// GetStats returns hit and miss counters and the current size.
func (c *CachedStore) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func (c *CachedStore) set(acc *domain.Account) {
	c.lru.Add(acc.UserID, &cachedAccountEntry{
		Version:  CacheSchemaVersion,
		Account:  acc.Clone(),
		CachedAt: time.Now(),
	})
}
