package roulette

import (
	"context"
	"fmt"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

// Accounts is the slice of the economy service roulette settles through.
type Accounts interface {
	Update(ctx context.Context, userID string, fn economy.UpdateFunc) (*domain.Account, error)
}

// Service defines the roulette operations
type Service interface {
	Play(ctx context.Context, userID string, bet domain.RouletteBet, amount int) (*domain.RouletteResult, error)
	DefaultBet() int
	Shutdown(ctx context.Context) error
}

type service struct {
	accounts   Accounts
	rng        utils.RandomSource
	multiplier int
	defaultBet int
	publisher  *event.Publisher
}

// NewService creates a roulette service. bus may be nil.
func NewService(accounts Accounts, rng utils.RandomSource, bus event.Bus, multiplier, defaultBet int) Service {
	return &service{
		accounts:   accounts,
		rng:        rng,
		multiplier: multiplier,
		defaultBet: defaultBet,
		publisher:  event.NewPublisher(bus, event.DefaultPublisherConfig()),
	}
}

// Play checks the wager and the balance, then draws and settles in one
// update. Nothing is drawn for a wager the player cannot cover.
func (s *service) Play(ctx context.Context, userID string, bet domain.RouletteBet, amount int) (*domain.RouletteResult, error) {
	if err := Validate(bet, amount); err != nil {
		return nil, err
	}

	var result *domain.RouletteResult
	_, err := s.accounts.Update(ctx, userID, func(acc *domain.Account) (*domain.Account, error) {
		if acc.Currency < amount {
			return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, acc.Currency)
		}
		next, res, err := Resolve(acc, bet, amount, Spin(s.rng), s.multiplier)
		result = res
		return next, err
	})
	if err != nil {
		return nil, err
	}

	outcome := OutcomeLoss
	if result.Won {
		outcome = OutcomeWin
	}
	logger.FromContext(ctx).Info(LogMsgRoulettePlayed,
		"user_id", userID, "bet", bet, "amount", amount, "number", result.Number, "delta", result.Delta)
	s.publisher.Publish(ctx, event.NewGameSettledEvent(userID, GameName, outcome, result.Delta))
	return result, nil
}

func (s *service) DefaultBet() int {
	return s.defaultBet
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgServiceShutdown)
	return s.publisher.Shutdown(ctx)
}
