package blackjack

import (
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Payouts are the fixed credits for a winning round.
type Payouts struct {
	Win     int
	Natural int
}

// Game is one blackjack round. Methods are not safe for concurrent use; the
// engine serializes access per user.
type Game struct {
	ID        string
	UserID    string
	Bet       int
	State     domain.BlackjackState
	Outcome   domain.BlackjackOutcome
	Natural   bool
	Delta     int
	Player    []domain.Card
	Dealer    []domain.Card
	StartedAt time.Time

	deck []domain.Card
}

// Deal creates a round from a shuffled deck: two cards to the player, then
// two to the dealer.
func Deal(id, userID string, bet int, deck []domain.Card, now time.Time) *Game {
	g := &Game{
		ID:        id,
		UserID:    userID,
		Bet:       bet,
		State:     domain.StateDealing,
		StartedAt: now,
		deck:      append([]domain.Card(nil), deck...),
	}
	for i := 0; i < InitialHandSize; i++ {
		g.Player = append(g.Player, g.draw())
	}
	for i := 0; i < InitialHandSize; i++ {
		g.Dealer = append(g.Dealer, g.draw())
	}
	g.State = domain.StatePlayerTurn
	return g
}

// draw pops the top card. A single deck cannot run out within one round.
func (g *Game) draw() domain.Card {
	c := g.deck[len(g.deck)-1]
	g.deck = g.deck[:len(g.deck)-1]
	return c
}

// Settled reports whether the round is over.
func (g *Game) Settled() bool {
	return g.State == domain.StateSettled
}

// Hit deals the player one card. Going over 21 settles the round as a bust.
func (g *Game) Hit(p Payouts) error {
	if g.Settled() {
		return domain.ErrGameSettled
	}
	g.Player = append(g.Player, g.draw())
	if HandValue(g.Player) > BustThreshold {
		g.settle(domain.OutcomePlayerBust, p)
	}
	return nil
}

// Stand plays out the dealer, who draws while under 17, and settles.
func (g *Game) Stand(p Payouts) error {
	if g.Settled() {
		return domain.ErrGameSettled
	}
	for HandValue(g.Dealer) < DealerStandsOn {
		g.Dealer = append(g.Dealer, g.draw())
	}

	player, dealer := HandValue(g.Player), HandValue(g.Dealer)
	switch {
	case dealer > BustThreshold:
		g.settle(domain.OutcomeDealerBust, p)
	case player > dealer:
		g.settle(domain.OutcomePlayerWin, p)
	case player < dealer:
		g.settle(domain.OutcomeDealerWin, p)
	default:
		g.settle(domain.OutcomePush, p)
	}
	return nil
}

func (g *Game) settle(outcome domain.BlackjackOutcome, p Payouts) {
	g.State = domain.StateSettled
	g.Outcome = outcome
	switch {
	case outcome.PlayerWon() && IsNatural(g.Player):
		g.Natural = true
		g.Delta = p.Natural
	case outcome.PlayerWon():
		g.Delta = p.Win
	case outcome == domain.OutcomePush:
		g.Delta = 0
	default:
		g.Delta = -g.Bet
	}
}

// Clone copies the round so a failed settlement can be discarded.
func (g *Game) Clone() *Game {
	c := *g
	c.Player = append([]domain.Card(nil), g.Player...)
	c.Dealer = append([]domain.Card(nil), g.Dealer...)
	c.deck = append([]domain.Card(nil), g.deck...)
	return &c
}

// View renders the round for a front-end. The dealer's hole card stays
// hidden until the round is settled.
func (g *Game) View(balance int) *domain.BlackjackView {
	dealer := g.Dealer
	if !g.Settled() && len(dealer) > 0 {
		dealer = dealer[:1]
	}
	dealer = append([]domain.Card(nil), dealer...)

	return &domain.BlackjackView{
		GameID:      g.ID,
		UserID:      g.UserID,
		State:       g.State,
		Bet:         g.Bet,
		PlayerHand:  append([]domain.Card(nil), g.Player...),
		PlayerValue: HandValue(g.Player),
		DealerHand:  dealer,
		DealerValue: HandValue(dealer),
		Outcome:     g.Outcome,
		Natural:     g.Natural,
		Payout:      g.Delta,
		Balance:     balance,
		StartedAt:   g.StartedAt,
	}
}
