// Package postgres implements the account store and the event log on
// PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// AccountStore persists accounts as one row each, with the inventory in a
// JSONB column.
type AccountStore struct {
	db *pgxpool.Pool
}

// NewAccountStore creates a new AccountStore
func NewAccountStore(db *pgxpool.Pool) *AccountStore {
	return &AccountStore{db: db}
}

// GetAccount loads an account. Unknown users get an unsaved default account.
func (s *AccountStore) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	var (
		acc       domain.Account
		lastClaim *time.Time
		inventory []byte
	)
	err := s.db.QueryRow(ctx, SQLSelectAccount, userID).Scan(
		&acc.UserID,
		&acc.Username,
		&acc.Currency,
		&acc.XP,
		&acc.Spins,
		&lastClaim,
		&inventory,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewAccount(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgLoadAccount, domain.ErrStoreUnavailable, userID, err)
	}

	acc.LastDailyClaimAt = lastClaim
	acc.Inventory = make(map[string][]domain.RewardItem)
	if len(inventory) > 0 {
		if err := json.Unmarshal(inventory, &acc.Inventory); err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgDecodeInventory, domain.ErrStoreUnavailable, userID, err)
		}
	}
	return &acc, nil
}

// SaveAccount upserts the full account in one statement.
func (s *AccountStore) SaveAccount(ctx context.Context, account *domain.Account) error {
	if account == nil || account.UserID == "" {
		return domain.ErrInvalidUserID
	}

	inventory := account.Inventory
	if inventory == nil {
		inventory = map[string][]domain.RewardItem{}
	}
	encoded, err := json.Marshal(inventory)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeInventory, account.UserID, err)
	}

	_, err = s.db.Exec(ctx, SQLUpsertAccount,
		account.UserID,
		account.Username,
		account.Currency,
		account.XP,
		account.Spins,
		account.LastDailyClaimAt,
		encoded,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: "+ErrMsgSaveAccount, domain.ErrStoreUnavailable, account.UserID, err)
	}
	return nil
}

// Ping checks the database is reachable.
func (s *AccountStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
