package economy

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinEconomy_Go/internal/concurrency"
	"github.com/osse101/SpinEconomy_Go/internal/config"
	"github.com/osse101/SpinEconomy_Go/internal/cooldown"
	"github.com/osse101/SpinEconomy_Go/internal/database/memory"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/repository"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
	"github.com/osse101/SpinEconomy_Go/internal/spinner"
	"github.com/osse101/SpinEconomy_Go/internal/testing/fakerand"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

func testEconomyConfig() config.EconomyConfig {
	return config.EconomyConfig{
		DailyReward: 100,
		DailyXP:     25,
		SpinCosts:   [config.MaxSpinBatch]int{50, 100, 150},
		ChatMin:     1,
		ChatMax:     5,
		VoiceMin:    2,
		VoiceMax:    10,
	}
}

func testRewardCategories() []domain.RewardCategory {
	return []domain.RewardCategory{
		{Key: "colors", Name: "Colors", Rarity: "common", Weight: 70, Items: []domain.RewardItem{
			{ID: "red", Name: "Red", RoleID: "r-red"},
			{ID: "blue", Name: "Blue", RoleID: "r-blue"},
		}},
		{Key: "badges", Name: "Badges", Rarity: "rare", Weight: 30, Items: []domain.RewardItem{
			{ID: "vip", Name: "VIP", RoleID: "r-vip"},
		}},
	}
}

func setupService(t *testing.T, store repository.AccountStore, categories []domain.RewardCategory, rng utils.RandomSource) *service {
	t.Helper()
	return setupServiceWithBus(t, store, categories, rng, nil)
}

func setupServiceWithBus(t *testing.T, store repository.AccountStore, categories []domain.RewardCategory, rng utils.RandomSource, bus event.Bus) *service {
	t.Helper()

	shopCatalog, err := shop.NewCatalog([]domain.ShopItem{
		{ID: "spin_1", Name: "Single Spin", Price: 50, Type: domain.EffectSpins, Quantity: 1},
		{ID: "xp_boost", Name: "XP Boost", Price: 100, Type: domain.EffectXP, Quantity: 100},
		{ID: "mystery", Name: "Mystery", Price: 40, Type: "custom", Quantity: 1},
	})
	require.NoError(t, err)
	rewards, err := spinner.NewCatalog(categories)
	require.NoError(t, err)

	svc := NewService(
		store,
		concurrency.NewLockManager(),
		shopCatalog,
		rewards,
		rng,
		cooldown.NewMemoryService(cooldown.Config{}),
		bus,
		testEconomyConfig(),
	)
	return svc.(*service)
}

func TestService_GrantActivity(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := setupService(t, store, testRewardCategories(), fakerand.Ints(2, 8))

	// CASE 1: BEST CASE - chat pays 1..5 (Intn(5)=2 -> 3)
	res, err := svc.GrantActivity(ctx, "user1", domain.ActivityChat)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Amount)
	assert.Equal(t, 103, res.Currency)
	assert.True(t, res.DailyReady)

	// CASE 2: chat is on cooldown, nothing changes
	_, err = svc.GrantActivity(ctx, "user1", domain.ActivityChat)
	assert.ErrorIs(t, err, domain.ErrOnCooldown)
	acc, _ := store.GetAccount(ctx, "user1")
	assert.Equal(t, 103, acc.Currency)

	// CASE 3: voice has its own cooldown and range (Intn(9)=8 -> 10)
	res, err = svc.GrantActivity(ctx, "user1", domain.ActivityVoice)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Amount)

	// CASE 4: unknown source
	_, err = svc.GrantActivity(ctx, "user1", "reaction")
	assert.ErrorIs(t, err, domain.ErrInvalidActivity)
}

func TestService_ClaimDaily(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := setupService(t, store, testRewardCategories(), fakerand.Ints(0))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res, err := svc.ClaimDaily(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 200, res.Currency)
	assert.Equal(t, 25, res.TotalXP)

	// Idempotent within the window
	now = now.Add(12 * time.Hour)
	_, err = svc.ClaimDaily(ctx, "user1")
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

	status, err := svc.DailyStatus(ctx, "user1")
	require.NoError(t, err)
	assert.False(t, status.Ready)
	assert.Equal(t, int64(12*3600), status.RemainingSeconds)

	acc, _ := store.GetAccount(ctx, "user1")
	assert.Equal(t, 200, acc.Currency)

	now = now.Add(12 * time.Hour)
	_, err = svc.ClaimDaily(ctx, "user1")
	require.NoError(t, err)
}

func TestService_Purchase(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := setupService(t, store, testRewardCategories(), fakerand.Ints(0))

	// CASE 1: BEST CASE - default 100 coins buys the 100 coin xp boost
	res, err := svc.Purchase(ctx, "user1", "xp_boost")
	require.NoError(t, err)
	assert.Equal(t, 0, res.CurrencyBalance)
	profile, err := svc.GetProfile(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Currency)
	assert.Equal(t, 100, profile.XP)
	assert.Equal(t, 2, profile.Level)

	// CASE 2: insufficient funds leaves the account unchanged
	_, err = svc.Purchase(ctx, "user1", "spin_1")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	// CASE 3: unknown item
	_, err = svc.Purchase(ctx, "user2", "nope")
	assert.ErrorIs(t, err, domain.ErrShopItemNotFound)

	// CASE 4: unknown effect type is charged with a warning
	res, err = svc.Purchase(ctx, "user3", "mystery")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warning)
	assert.Equal(t, 60, res.CurrencyBalance)
}

func TestService_Spin(t *testing.T) {
	ctx := context.Background()

	t.Run("charges configured cost and stores rewards", func(t *testing.T) {
		store := memory.NewStore()
		rng := fakerand.New([]float64{0.1, 0.9}, []int{1, 0})
		svc := setupService(t, store, testRewardCategories(), rng)

		res, err := svc.Spin(ctx, "user1", 2)
		require.NoError(t, err)
		assert.Equal(t, 100, res.Cost)
		assert.Equal(t, 0, res.Currency)
		require.Len(t, res.Results, 2)
		assert.Equal(t, "blue", res.Results[0].Item.ID)
		assert.Equal(t, "vip", res.Results[1].Item.ID)

		inv, err := svc.ListInventory(ctx, "user1")
		require.NoError(t, err)
		require.Len(t, inv, 2)
		assert.Equal(t, "colors", inv[0].Key)
		assert.Equal(t, "badges", inv[1].Key)
	})

	t.Run("owned spins are used first", func(t *testing.T) {
		store := memory.NewStore()
		acc := domain.NewAccount("user1")
		acc.Spins = 1
		require.NoError(t, store.SaveAccount(ctx, acc))
		svc := setupService(t, store, testRewardCategories(), fakerand.Floats(0.1))

		res, err := svc.Spin(ctx, "user1", 3)
		require.NoError(t, err)
		assert.Equal(t, 1, res.SpinsUsed)
		assert.Equal(t, 100, res.Cost)
		assert.Equal(t, 0, res.Spins)
		assert.Equal(t, 0, res.Currency)
	})

	t.Run("empty catalog charges nothing", func(t *testing.T) {
		store := memory.NewStore()
		empty := []domain.RewardCategory{{Key: "colors", Name: "Colors", Weight: 1}}
		svc := setupService(t, store, empty, fakerand.Floats(0.5))

		_, err := svc.Spin(ctx, "user1", 1)
		assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
		assert.Equal(t, 0, store.Len(), "nothing was saved")
	})

	t.Run("insufficient funds", func(t *testing.T) {
		svc := setupService(t, memory.NewStore(), testRewardCategories(), fakerand.Floats(0.5))
		_, err := svc.Spin(ctx, "user1", 3)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("invalid count", func(t *testing.T) {
		svc := setupService(t, memory.NewStore(), testRewardCategories(), fakerand.Floats(0.5))
		for _, n := range []int{0, 4, -1} {
			_, err := svc.Spin(ctx, "user1", n)
			assert.ErrorIs(t, err, domain.ErrInvalidSpinCount)
		}
	})
}

func TestService_Preview(t *testing.T) {
	svc := setupService(t, memory.NewStore(), testRewardCategories(), fakerand.Floats(0))

	p := svc.Preview(context.Background())
	assert.Equal(t, []int{50, 100, 150}, p.SpinCosts)
	require.Len(t, p.Categories, 2)
	assert.Equal(t, "70.00%", p.Categories[0].Percentage)
}

func TestService_ClaimRole(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := setupService(t, store, testRewardCategories(), fakerand.New([]float64{0.9}, []int{0}))

	// CASE 1: role never drawn
	_, err := svc.ClaimRole(ctx, "user1", "r-vip")
	assert.ErrorIs(t, err, domain.ErrRoleNotOwned)
	assert.Equal(t, 0, store.Len(), "claims never persist")

	// CASE 2: after drawing it
	_, err = svc.Spin(ctx, "user1", 1)
	require.NoError(t, err)
	claim, err := svc.ClaimRole(ctx, "user1", "r-vip")
	require.NoError(t, err)
	assert.Equal(t, "badges", claim.CategoryKey)
}

func TestService_StoreFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("load failure", func(t *testing.T) {
		store := new(MockAccountStore)
		store.On("GetAccount", mock.Anything, "user1").Return(nil, boom)
		svc := setupService(t, store, testRewardCategories(), fakerand.Floats(0))

		_, err := svc.Purchase(ctx, "user1", "spin_1")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		store.AssertNotCalled(t, "SaveAccount", mock.Anything, mock.Anything)
	})

	t.Run("save failure", func(t *testing.T) {
		store := new(MockAccountStore)
		store.On("GetAccount", mock.Anything, "user1").Return(domain.NewAccount("user1"), nil)
		store.On("SaveAccount", mock.Anything, mock.Anything).Return(boom)
		svc := setupService(t, store, testRewardCategories(), fakerand.Floats(0))

		_, err := svc.ClaimDaily(ctx, "user1")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		store.AssertExpectations(t)
	})

	t.Run("failed save does not start a cooldown", func(t *testing.T) {
		store := new(MockAccountStore)
		store.On("GetAccount", mock.Anything, "user1").Return(domain.NewAccount("user1"), nil)
		store.On("SaveAccount", mock.Anything, mock.Anything).Return(boom).Once()
		store.On("SaveAccount", mock.Anything, mock.Anything).Return(nil)
		svc := setupService(t, store, testRewardCategories(), fakerand.Ints(0))

		_, err := svc.GrantActivity(ctx, "user1", domain.ActivityChat)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

		_, err = svc.GrantActivity(ctx, "user1", domain.ActivityChat)
		assert.NoError(t, err)
	})
}

func TestService_InvalidUserID(t *testing.T) {
	svc := setupService(t, memory.NewStore(), testRewardCategories(), fakerand.Floats(0))
	_, err := svc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)
}

func TestService_ConcurrentPurchasesNeverOverspend(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := setupService(t, store, testRewardCategories(), fakerand.Floats(0))

	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Purchase(ctx, "user1", "spin_1"); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(2), succeeded.Load())
	acc, err := store.GetAccount(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Currency)
	assert.Equal(t, 2, acc.Spins)
}

func TestService_PublishesEventsAndShutsDown(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	var received atomic.Int32
	bus.Subscribe(event.DailyClaimed, func(ctx context.Context, evt event.Event) error {
		received.Add(1)
		return nil
	})

	svc := setupServiceWithBus(t, memory.NewStore(), testRewardCategories(), fakerand.Floats(0), bus)

	_, err := svc.ClaimDaily(ctx, "user1")
	require.NoError(t, err)

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(shutdownCtx))
	assert.Equal(t, int32(1), received.Load())
}
