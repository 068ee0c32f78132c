package domain

import "strconv"

// Suit of a playing card.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Suits in deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Ranks in deck order.
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is a standard playing card.
type Card struct {
	Rank string `json:"rank"`
	Suit Suit   `json:"suit"`
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// Value is the card's blackjack value with aces counted high.
func (c Card) Value() int {
	switch c.Rank {
	case "A":
		return 11
	case "J", "Q", "K":
		return 10
	}
	v, err := strconv.Atoi(c.Rank)
	if err != nil {
		return 0
	}
	return v
}

func (c Card) String() string {
	return c.Rank + string(c.Suit)
}
