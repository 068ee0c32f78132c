package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// MockAccountStore implements repository.AccountStore for testing
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
