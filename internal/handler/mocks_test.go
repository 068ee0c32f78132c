package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
)

// MockEconomyService mocks economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockEconomyService) GrantActivity(ctx context.Context, userID string, source domain.ActivitySource) (*economy.ActivityResult, error) {
	args := m.Called(ctx, userID, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.ActivityResult), args.Error(1)
}

func (m *MockEconomyService) ClaimDaily(ctx context.Context, userID string) (*economy.DailyResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.DailyResult), args.Error(1)
}

func (m *MockEconomyService) DailyStatus(ctx context.Context, userID string) (*economy.DailyStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.DailyStatus), args.Error(1)
}

func (m *MockEconomyService) Purchase(ctx context.Context, userID, itemID string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) Spin(ctx context.Context, userID string, count int) (*economy.SpinResult, error) {
	args := m.Called(ctx, userID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SpinResult), args.Error(1)
}

func (m *MockEconomyService) Preview(ctx context.Context) *economy.Preview {
	args := m.Called(ctx)
	return args.Get(0).(*economy.Preview)
}

func (m *MockEconomyService) ClaimRole(ctx context.Context, userID, roleID string) (*domain.RoleClaim, error) {
	args := m.Called(ctx, userID, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoleClaim), args.Error(1)
}

func (m *MockEconomyService) ListInventory(ctx context.Context, userID string) ([]domain.InventoryCategory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryCategory), args.Error(1)
}

func (m *MockEconomyService) Update(ctx context.Context, userID string, fn economy.UpdateFunc) (*domain.Account, error) {
	args := m.Called(ctx, userID, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockEconomyService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockBlackjackService mocks blackjack.Service
type MockBlackjackService struct {
	mock.Mock
}

func (m *MockBlackjackService) Start(ctx context.Context, userID string) (*domain.BlackjackView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlackjackView), args.Error(1)
}

func (m *MockBlackjackService) Hit(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlackjackView), args.Error(1)
}

func (m *MockBlackjackService) Stand(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlackjackView), args.Error(1)
}

func (m *MockBlackjackService) SweepExpired(ctx context.Context) int {
	return m.Called(ctx).Int(0)
}

func (m *MockBlackjackService) ActiveSessions() int {
	return m.Called().Int(0)
}

func (m *MockBlackjackService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockRouletteService mocks roulette.Service
type MockRouletteService struct {
	mock.Mock
}

func (m *MockRouletteService) Play(ctx context.Context, userID string, bet domain.RouletteBet, amount int) (*domain.RouletteResult, error) {
	args := m.Called(ctx, userID, bet, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouletteResult), args.Error(1)
}

func (m *MockRouletteService) DefaultBet() int {
	return m.Called().Int(0)
}

func (m *MockRouletteService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockCatalogAdmin mocks CatalogAdmin
type MockCatalogAdmin struct {
	mock.Mock
}

func (m *MockCatalogAdmin) AddItem(ctx context.Context, req shop.AddItemRequest) (*shop.AddItemResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.AddItemResult), args.Error(1)
}

// MockHealthChecker mocks repository.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
