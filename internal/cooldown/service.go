package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Service manages action cooldowns for users
type Service interface {
	// CheckCooldown checks if a user's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks cooldown and executes action if allowed.
	// The cooldown is only recorded when fn succeeds.
	EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, userID, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// remainingAt reports whether lastUsed is still inside the cooldown window at now.
func remainingAt(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
