package repository

import (
	"context"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// AccountStore defines key-value persistence of per-user accounts.
//
// GetAccount never returns ErrAccountNotFound: an unknown user yields a fresh
// account with default values, which is only persisted once SaveAccount is
// called. Implementations wrap infrastructure failures with
// domain.ErrStoreUnavailable.
type AccountStore interface {
	GetAccount(ctx context.Context, userID string) (*domain.Account, error)
	SaveAccount(ctx context.Context, account *domain.Account) error
}

// HealthChecker is implemented by stores that can report reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
