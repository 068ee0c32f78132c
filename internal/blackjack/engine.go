package blackjack

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SpinEconomy_Go/internal/concurrency"
	"github.com/osse101/SpinEconomy_Go/internal/config"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

// Accounts is the slice of the economy service the engine settles through.
type Accounts interface {
	Update(ctx context.Context, userID string, fn economy.UpdateFunc) (*domain.Account, error)
}

// Service defines the blackjack operations
type Service interface {
	Start(ctx context.Context, userID string) (*domain.BlackjackView, error)
	Hit(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error)
	Stand(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error)
	SweepExpired(ctx context.Context) int
	ActiveSessions() int
	Shutdown(ctx context.Context) error
}

type engine struct {
	accounts  Accounts
	rng       utils.RandomSource
	bet       int
	payouts   Payouts
	ttl       time.Duration
	publisher *event.Publisher
	locks     *concurrency.LockManager
	now       func() time.Time
	newDeck   func() []domain.Card // Injectable for testing

	mu       sync.Mutex
	sessions map[string]*Game
}

// NewEngine creates a blackjack engine. bus may be nil.
func NewEngine(accounts Accounts, rng utils.RandomSource, bus event.Bus, cfg config.GamesConfig) Service {
	e := &engine{
		accounts:  accounts,
		rng:       rng,
		bet:       cfg.BlackjackBet,
		payouts:   Payouts{Win: cfg.BlackjackWinPayout, Natural: cfg.BlackjackNaturalPayout},
		ttl:       cfg.SessionTTL,
		publisher: event.NewPublisher(bus, event.DefaultPublisherConfig()),
		locks:     concurrency.NewLockManager(),
		now:       time.Now,
		sessions:  make(map[string]*Game),
	}
	e.newDeck = e.shuffledDeck
	return e
}

// Start deals a new round. The bet is not taken up front; the player only
// needs to be able to cover it.
func (e *engine) Start(ctx context.Context, userID string) (*domain.BlackjackView, error) {
	acc, err := e.accounts.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
		if acc.Currency < e.bet {
			return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, e.bet, acc.Currency)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	now := e.now()
	g := Deal(e.sessionID(userID, now), userID, e.bet, e.newDeck(), now)

	e.mu.Lock()
	e.sessions[g.ID] = g
	e.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgGameStarted, "user_id", userID, "game_id", g.ID)
	return g.View(acc.Currency), nil
}

func (e *engine) Hit(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error) {
	return e.play(ctx, userID, gameID, func(g *Game) error {
		return g.Hit(e.payouts)
	})
}

func (e *engine) Stand(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error) {
	return e.play(ctx, userID, gameID, func(g *Game) error {
		return g.Stand(e.payouts)
	})
}

// play applies a move to a copy of the round. A settling move and its balance
// change are saved together; the session map only sees the result after the
// save succeeds.
func (e *engine) play(ctx context.Context, userID, gameID string, move func(*Game) error) (*domain.BlackjackView, error) {
	unlock := e.locks.Lock(userID)
	defer unlock()

	var played *Game
	acc, err := e.accounts.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
		g, err := e.lookup(userID, gameID)
		if err != nil {
			return nil, err
		}
		next := g.Clone()
		if err := move(next); err != nil {
			return nil, err
		}
		played = next
		if !next.Settled() {
			return nil, nil
		}
		updated, applied := economy.Settle(acc, next.Delta)
		next.Delta = applied
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	e.commit(played)
	if played.Settled() {
		logger.FromContext(ctx).Info(LogMsgGameSettled,
			"user_id", userID, "game_id", played.ID, "outcome", played.Outcome, "delta", played.Delta)
		e.publisher.Publish(ctx, event.NewGameSettledEvent(userID, GameName, string(played.Outcome), played.Delta))
	}
	return played.View(acc.Currency), nil
}

func (e *engine) lookup(userID, gameID string) (*Game, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, ok := e.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGameNotFound, gameID)
	}
	if g.UserID != userID {
		return nil, domain.ErrNotYourGame
	}
	return g, nil
}

// commit stores an in-progress round or drops a settled one. A round swept
// while the move was in flight is not brought back.
func (e *engine) commit(g *Game) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if g.Settled() {
		delete(e.sessions, g.ID)
		return
	}
	if _, ok := e.sessions[g.ID]; ok {
		e.sessions[g.ID] = g
	}
}

// SweepExpired drops rounds older than the session TTL. Nothing is charged:
// the bet was never taken.
func (e *engine) SweepExpired(ctx context.Context) int {
	cutoff := e.now().Add(-e.ttl)

	e.mu.Lock()
	removed := 0
	for id, g := range e.sessions {
		if !g.StartedAt.After(cutoff) {
			delete(e.sessions, id)
			removed++
		}
	}
	e.mu.Unlock()

	if removed > 0 {
		logger.FromContext(ctx).Info(LogMsgSessionsExpired, "count", removed)
	}
	return removed
}

func (e *engine) ActiveSessions() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// Shutdown waits for in-flight event publishing
func (e *engine) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgEngineShutdown)
	return e.publisher.Shutdown(ctx)
}

func (e *engine) shuffledDeck() []domain.Card {
	deck := NewDeck()
	Shuffle(deck, e.rng)
	return deck
}

func (e *engine) sessionID(userID string, now time.Time) string {
	return fmt.Sprintf(SessionIDFormat, userID, now.UnixMilli(), uuid.NewString()[:SessionSuffixLength])
}
