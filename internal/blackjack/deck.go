package blackjack

import (
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/utils"
)

// NewDeck returns the 52 cards of a standard deck in suit then rank order.
func NewDeck() []domain.Card {
	deck := make([]domain.Card, 0, DeckSize)
	for _, suit := range domain.Suits {
		for _, rank := range domain.Ranks {
			deck = append(deck, domain.Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// Shuffle permutes the deck in place (Fisher-Yates).
func Shuffle(deck []domain.Card, rng utils.RandomSource) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// HandValue scores a hand. Aces count 11 and are demoted to 1, one at a
// time, while the total is over 21.
func HandValue(hand []domain.Card) int {
	value, aces := 0, 0
	for _, c := range hand {
		if c.IsAce() {
			aces++
		}
		value += c.Value()
	}
	for value > BustThreshold && aces > 0 {
		value -= AceDemotion
		aces--
	}
	return value
}

// IsNatural reports a two-card 21.
func IsNatural(hand []domain.Card) bool {
	return len(hand) == 2 && HandValue(hand) == BustThreshold
}
