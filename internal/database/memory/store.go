// Package memory provides an in-process AccountStore for single-node
// deployments and tests.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Store keeps accounts in a map. Every read and write deep-copies so callers
// never share inventory slices with the store.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{accounts: make(map[string]*domain.Account)}
}

// GetAccount returns a copy of the stored account or a fresh default one.
func (s *Store) GetAccount(_ context.Context, userID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if acc, ok := s.accounts[userID]; ok {
		return acc.Clone(), nil
	}
	return domain.NewAccount(userID), nil
}

// SaveAccount replaces the stored account.
func (s *Store) SaveAccount(_ context.Context, account *domain.Account) error {
	if account == nil || account.UserID == "" {
		return domain.ErrInvalidUserID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.UserID] = account.Clone()
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Len returns the number of persisted accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
