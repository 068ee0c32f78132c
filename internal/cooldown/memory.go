package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/concurrency"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// memoryBackend keeps cooldowns in process memory. It is the default for
// single-process deployments that do not run PostgreSQL.
type memoryBackend struct {
	keys     *concurrency.LockManager
	mu       sync.Mutex
	lastUsed map[string]time.Time
	config   Config
	now      func() time.Time
}

// NewMemoryService creates a cooldown service backed by an in-memory map.
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		keys:     concurrency.NewLockManager(),
		lastUsed: make(map[string]time.Time),
		config:   config,
		now:      time.Now,
	}
}

func memoryKey(userID, action string) string {
	return userID + HashSeparator + action
}

func (b *memoryBackend) CheckCooldown(_ context.Context, userID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	onCooldown, remaining := b.checkLocked(userID, action)
	return onCooldown, remaining, nil
}

// EnforceCooldown holds the lock for this user and action across fn so
// concurrent callers for the same pair cannot both pass the check. Other pairs
// proceed in parallel; mu only guards the map.
func (b *memoryBackend) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	key := memoryKey(userID, action)
	unlock := b.keys.Lock(key)
	defer unlock()

	if b.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "userID", userID)
	} else {
		b.mu.Lock()
		onCooldown, remaining := b.checkLocked(userID, action)
		b.mu.Unlock()
		if onCooldown {
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}
	}

	if err := fn(); err != nil {
		return err
	}

	b.mu.Lock()
	b.lastUsed[key] = b.now()
	b.mu.Unlock()
	return nil
}

func (b *memoryBackend) ResetCooldown(_ context.Context, userID, action string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.lastUsed, memoryKey(userID, action))
	return nil
}

func (b *memoryBackend) GetLastUsed(_ context.Context, userID, action string) (*time.Time, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t, ok := b.lastUsed[memoryKey(userID, action)]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (b *memoryBackend) checkLocked(userID, action string) (bool, time.Duration) {
	t, ok := b.lastUsed[memoryKey(userID, action)]
	if !ok {
		return false, 0
	}
	return remainingAt(b.now(), &t, b.config.GetCooldownDuration(action))
}
