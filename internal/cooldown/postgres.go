package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
	now    func() time.Time
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{
		db:     db,
		config: config,
		now:    time.Now,
	}
}

// CheckCooldown checks if a user's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	lastUsed, err := b.getLastUsed(ctx, b.db, userID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	onCooldown, remaining := b.checkCooldownInternal(b.now(), lastUsed, b.config.GetCooldownDuration(action))
	return onCooldown, remaining, nil
}

// EnforceCooldown atomically checks cooldown and executes action if allowed.
// An unlocked read rejects most repeat requests before the advisory lock is taken.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, remaining, err := b.CheckCooldown(ctx, userID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Advisory locks work even when no cooldown row exists yet
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashUserAction(userID, action)); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "userID", userID)
	} else {
		lastUsed, err := b.getLastUsed(ctx, tx, userID, action)
		if err != nil {
			return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
		}
		onCooldown, remaining := b.checkCooldownInternal(b.now(), lastUsed, b.config.GetCooldownDuration(action))
		if onCooldown {
			log.Debug(LogMsgRaceConditionDetected,
				"action", action, "userID", userID, "remaining", remaining)
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}
	}

	if err := fn(); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, SQLUpsertCooldown, userID, action, b.now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "userID", userID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, userID, action string) error {
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, userID, action); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, b.db, userID, action)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (b *postgresBackend) getLastUsed(ctx context.Context, q rowQuerier, userID, action string) (*time.Time, error) {
	var lastUsed time.Time

	err := q.QueryRow(ctx, SQLSelectLastUsed, userID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

// hashUserAction creates a consistent int64 hash from userID + action for advisory locking
func hashUserAction(userID, action string) int64 {
	h := sha256.Sum256([]byte(userID + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

func (b *postgresBackend) checkCooldownInternal(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	return remainingAt(now, lastUsed, duration)
}
