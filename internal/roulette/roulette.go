package roulette

import (
	"fmt"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

// Spin draws a pocket in [0,36].
func Spin(rng utils.RandomSource) int {
	return rng.Intn(Pockets)
}

// Color returns the pocket color of n.
func Color(n int) domain.RouletteColor {
	switch {
	case n == Zero:
		return domain.ColorGreen
	case redNumbers[n]:
		return domain.ColorRed
	default:
		return domain.ColorBlack
	}
}

// Wins reports whether bet pays on n. Zero loses every bet.
func Wins(bet domain.RouletteBet, n int) bool {
	if n == Zero {
		return false
	}
	switch bet {
	case domain.BetRed:
		return Color(n) == domain.ColorRed
	case domain.BetBlack:
		return Color(n) == domain.ColorBlack
	case domain.BetOdd:
		return n%2 == 1
	case domain.BetEven:
		return n%2 == 0
	}
	return false
}

// Validate checks a wager before anything is drawn.
func Validate(bet domain.RouletteBet, amount int) error {
	if !bet.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidBetType, bet)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return nil
}

// Resolve settles a wager against a drawn number. A win credits
// amount*multiplier, a loss debits amount.
func Resolve(acc *domain.Account, bet domain.RouletteBet, amount, number, multiplier int) (*domain.Account, *domain.RouletteResult, error) {
	if err := Validate(bet, amount); err != nil {
		return nil, nil, err
	}
	if acc.Currency < amount {
		return nil, nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, acc.Currency)
	}

	won := Wins(bet, number)
	delta := -amount
	if won {
		delta = amount * multiplier
	}
	next, applied := economy.Settle(acc, delta)

	return next, &domain.RouletteResult{
		UserID:  acc.UserID,
		BetType: bet,
		Amount:  amount,
		Number:  number,
		Color:   Color(number),
		Won:     won,
		Delta:   applied,
		Balance: next.Currency,
	}, nil
}
