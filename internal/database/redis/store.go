// Package redis implements the account store on Redis, one JSON document per
// account.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store is a Redis-backed repository.AccountStore.
type Store struct {
	client *goredis.Client
}

// NewStore connects to Redis and verifies the connection.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf(ErrMsgConnect, err)
	}
	return &Store{client: client}, nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *goredis.Client) *Store {
	return &Store{client: client}
}

// GetAccount loads an account. A missing key yields an unsaved default account.
func (s *Store) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	data, err := s.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.NewAccount(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgLoadAccount, domain.ErrStoreUnavailable, userID, err)
	}

	var acc domain.Account
	if err := json.Unmarshal(data, &acc); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecodeAccount, domain.ErrStoreUnavailable, userID, err)
	}
	if acc.Inventory == nil {
		acc.Inventory = make(map[string][]domain.RewardItem)
	}
	return &acc, nil
}

// SaveAccount writes the whole account under a single key, so a save is
// all-or-nothing.
func (s *Store) SaveAccount(ctx context.Context, account *domain.Account) error {
	if account == nil || account.UserID == "" {
		return domain.ErrInvalidUserID
	}

	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeAccount, account.UserID, err)
	}
	if err := s.client.Set(ctx, key(account.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: "+ErrMsgSaveAccount, domain.ErrStoreUnavailable, account.UserID, err)
	}
	return nil
}

// Ping checks Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

func key(userID string) string {
	return fmt.Sprintf(KeyAccount, userID)
}
