package blackjack

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinEconomy_Go/internal/config"
	"github.com/osse101/SpinEconomy_Go/internal/database/memory"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/testing/fakerand"
)

// fakeAccounts runs updates against an in-memory store, optionally failing saves.
type fakeAccounts struct {
	mu      sync.Mutex
	store   *memory.Store
	saveErr error
	saves   int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{store: memory.NewStore()}
}

func (f *fakeAccounts) Update(ctx context.Context, userID string, fn economy.UpdateFunc) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	acc, err := f.store.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	next, err := fn(acc.Clone())
	if err != nil {
		return nil, err
	}
	if next == nil {
		return acc, nil
	}
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saves++
	if err := f.store.SaveAccount(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (f *fakeAccounts) setCurrency(t *testing.T, userID string, currency int) {
	t.Helper()
	acc := domain.NewAccount(userID)
	acc.Currency = currency
	require.NoError(t, f.store.SaveAccount(context.Background(), acc))
}

func (f *fakeAccounts) currency(t *testing.T, userID string) int {
	t.Helper()
	acc, err := f.store.GetAccount(context.Background(), userID)
	require.NoError(t, err)
	return acc.Currency
}

func testGamesConfig() config.GamesConfig {
	return config.GamesConfig{
		BlackjackBet:           25,
		BlackjackWinPayout:     25,
		BlackjackNaturalPayout: 37,
		SessionTTL:             10 * time.Minute,
	}
}

func setupEngine(t *testing.T, accounts Accounts, bus event.Bus, ranks ...string) *engine {
	t.Helper()
	e := NewEngine(accounts, fakerand.Ints(0), bus, testGamesConfig()).(*engine)
	if len(ranks) > 0 {
		e.newDeck = func() []domain.Card { return stacked(ranks...) }
	}
	return e
}

func TestEngine_Start(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	e := setupEngine(t, accounts, nil, "10", "7", "9", "5")

	// CASE 1: BEST CASE - default balance covers the bet
	view, err := e.Start(ctx, "user1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(view.GameID, "user1_bj_"))
	assert.Equal(t, domain.StatePlayerTurn, view.State)
	assert.Len(t, view.DealerHand, 1)
	assert.Equal(t, 100, view.Balance, "bet is not pre-deducted")
	assert.Equal(t, 1, e.ActiveSessions())
	assert.Equal(t, 0, accounts.saves)

	// CASE 2: short of the bet
	accounts.setCurrency(t, "poor", 24)
	_, err = e.Start(ctx, "poor")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 1, e.ActiveSessions(), "no session created")
}

func TestEngine_SessionIDsAreUnique(t *testing.T) {
	e := setupEngine(t, newFakeAccounts(), nil)
	now := time.Unix(1700000000, 0)

	a := e.sessionID("user1", now)
	b := e.sessionID("user1", now)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "user1_bj_1700000000000_"))
}

func TestEngine_PlayToSettlement(t *testing.T) {
	tests := []struct {
		name         string
		deck         []string
		hit          bool
		startBalance int
		wantOutcome  domain.BlackjackOutcome
		wantBalance  int
	}{
		// CASE 1: BEST CASE - standard win
		{name: "win", deck: []string{"10", "9", "10", "7"}, startBalance: 100, wantOutcome: domain.OutcomePlayerWin, wantBalance: 125},
		// CASE 2: natural bonus
		{name: "natural", deck: []string{"A", "K", "10", "7"}, startBalance: 100, wantOutcome: domain.OutcomePlayerWin, wantBalance: 137},
		// CASE 3: push leaves the balance alone
		{name: "push", deck: []string{"10", "8", "10", "8"}, startBalance: 100, wantOutcome: domain.OutcomePush, wantBalance: 100},
		// CASE 4: loss costs the bet
		{name: "loss", deck: []string{"10", "6", "10", "8"}, startBalance: 100, wantOutcome: domain.OutcomeDealerWin, wantBalance: 75},
		{name: "bust on hit", deck: []string{"10", "6", "10", "8", "K"}, hit: true, startBalance: 100, wantOutcome: domain.OutcomePlayerBust, wantBalance: 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			ctx := context.Background()
			accounts := newFakeAccounts()
			accounts.setCurrency(t, "user1", tt.startBalance)
			e := setupEngine(t, accounts, nil, tt.deck...)
			start, err := e.Start(ctx, "user1")
			require.NoError(t, err)

			// ACT
			var view *domain.BlackjackView
			if tt.hit {
				view, err = e.Hit(ctx, "user1", start.GameID)
			} else {
				view, err = e.Stand(ctx, "user1", start.GameID)
			}

			// ASSERT
			require.NoError(t, err)
			assert.Equal(t, domain.StateSettled, view.State)
			assert.Equal(t, tt.wantOutcome, view.Outcome)
			assert.Equal(t, tt.wantBalance, view.Balance)
			assert.Equal(t, tt.wantBalance, accounts.currency(t, "user1"))
			assert.Equal(t, 0, e.ActiveSessions(), "settled sessions are removed")

			_, err = e.Stand(ctx, "user1", start.GameID)
			assert.ErrorIs(t, err, domain.ErrGameNotFound)
		})
	}
}

func TestEngine_HitWithoutSettling(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	e := setupEngine(t, accounts, nil, "5", "4", "10", "8", "3", "2")

	start, err := e.Start(ctx, "user1")
	require.NoError(t, err)

	view, err := e.Hit(ctx, "user1", start.GameID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePlayerTurn, view.State)
	assert.Equal(t, 12, view.PlayerValue)

	view, err = e.Hit(ctx, "user1", start.GameID)
	require.NoError(t, err)
	assert.Equal(t, 14, view.PlayerValue)
	assert.Equal(t, 0, accounts.saves, "nothing saved before settlement")
}

func TestEngine_LossClampedToBalance(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	e := setupEngine(t, accounts, nil, "10", "6", "10", "8")

	start, err := e.Start(ctx, "user1")
	require.NoError(t, err)

	// Coins spent elsewhere mid-hand
	accounts.setCurrency(t, "user1", 10)

	view, err := e.Stand(ctx, "user1", start.GameID)
	require.NoError(t, err)
	assert.Equal(t, -10, view.Payout)
	assert.Equal(t, 0, accounts.currency(t, "user1"))
}

func TestEngine_OwnershipAndMissingGames(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	e := setupEngine(t, accounts, nil, "10", "6", "10", "8")

	start, err := e.Start(ctx, "owner")
	require.NoError(t, err)

	// CASE 1: another user's game
	_, err = e.Stand(ctx, "intruder", start.GameID)
	assert.ErrorIs(t, err, domain.ErrNotYourGame)

	// CASE 2: unknown game
	_, err = e.Hit(ctx, "owner", "owner_bj_0_deadbeef")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)

	assert.Equal(t, 0, accounts.saves, "no account mutated")
	assert.Equal(t, 1, e.ActiveSessions())

	// The owner can still finish
	_, err = e.Stand(ctx, "owner", start.GameID)
	assert.NoError(t, err)
}

func TestEngine_FailedSaveKeepsRound(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	e := setupEngine(t, accounts, nil, "10", "9", "10", "7")

	start, err := e.Start(ctx, "user1")
	require.NoError(t, err)

	accounts.saveErr = domain.ErrStoreUnavailable
	_, err = e.Stand(ctx, "user1", start.GameID)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 1, e.ActiveSessions())
	assert.Equal(t, 100, accounts.currency(t, "user1"))

	accounts.saveErr = nil
	view, err := e.Stand(ctx, "user1", start.GameID)
	require.NoError(t, err)
	assert.Equal(t, 125, view.Balance)
}

func TestEngine_SweepExpired(t *testing.T) {
	ctx := context.Background()
	accounts := newFakeAccounts()
	e := setupEngine(t, accounts, nil, "10", "6", "10", "8")
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return now }

	old, err := e.Start(ctx, "user1")
	require.NoError(t, err)
	now = now.Add(5 * time.Minute)
	_, err = e.Start(ctx, "user2")
	require.NoError(t, err)

	now = now.Add(6 * time.Minute)
	assert.Equal(t, 1, e.SweepExpired(ctx))
	assert.Equal(t, 1, e.ActiveSessions())

	_, err = e.Stand(ctx, "user1", old.GameID)
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
	assert.Equal(t, 100, accounts.currency(t, "user1"), "abandoned rounds forfeit nothing")
}

func TestEngine_PublishesSettlement(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	var delta atomic.Int64
	bus.Subscribe(event.GameSettled, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.GameSettledPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		delta.Store(int64(p.Delta))
		return nil
	})
	e := setupEngine(t, newFakeAccounts(), bus, "10", "9", "10", "7")

	start, err := e.Start(ctx, "user1")
	require.NoError(t, err)
	_, err = e.Stand(ctx, "user1", start.GameID)
	require.NoError(t, err)

	require.NoError(t, e.Shutdown(ctx))
	assert.Equal(t, int64(25), delta.Load())
}
