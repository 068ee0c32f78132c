package domain

import "time"

// BlackjackState is the phase of a blackjack round.
type BlackjackState string

const (
	StateDealing    BlackjackState = "dealing"
	StatePlayerTurn BlackjackState = "player_turn"
	StateSettled    BlackjackState = "settled"
)

// BlackjackOutcome is how a settled round ended.
type BlackjackOutcome string

const (
	OutcomeNone       BlackjackOutcome = ""
	OutcomePlayerBust BlackjackOutcome = "player_bust"
	OutcomeDealerBust BlackjackOutcome = "dealer_bust"
	OutcomePlayerWin  BlackjackOutcome = "player_win"
	OutcomeDealerWin  BlackjackOutcome = "dealer_win"
	OutcomePush       BlackjackOutcome = "push"
)

// PlayerWon reports whether the outcome pays the player.
func (o BlackjackOutcome) PlayerWon() bool {
	return o == OutcomeDealerBust || o == OutcomePlayerWin
}

// BlackjackView is the externally visible state of a round.
type BlackjackView struct {
	GameID      string           `json:"game_id"`
	UserID      string           `json:"user_id"`
	State       BlackjackState   `json:"state"`
	Bet         int              `json:"bet"`
	PlayerHand  []Card           `json:"player_hand"`
	PlayerValue int              `json:"player_value"`
	DealerHand  []Card           `json:"dealer_hand"`
	DealerValue int              `json:"dealer_value"`
	Outcome     BlackjackOutcome `json:"outcome,omitempty"`
	Natural     bool             `json:"natural,omitempty"`
	Payout      int              `json:"payout"`
	Balance     int              `json:"balance"`
	StartedAt   time.Time        `json:"started_at"`
}

// RouletteBet is a supported roulette wager.
type RouletteBet string

const (
	BetRed   RouletteBet = "red"
	BetBlack RouletteBet = "black"
	BetOdd   RouletteBet = "odd"
	BetEven  RouletteBet = "even"
)

// IsValid reports whether the bet type is supported.
func (b RouletteBet) IsValid() bool {
	switch b {
	case BetRed, BetBlack, BetOdd, BetEven:
		return true
	}
	return false
}

// RouletteColor is the pocket color of a roulette number.
type RouletteColor string

const (
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
	ColorGreen RouletteColor = "green"
)

// RouletteResult is the settled outcome of one roulette bet.
type RouletteResult struct {
	UserID  string        `json:"user_id"`
	BetType RouletteBet   `json:"bet_type"`
	Amount  int           `json:"amount"`
	Number  int           `json:"number"`
	Color   RouletteColor `json:"color"`
	Won     bool          `json:"won"`
	Delta   int           `json:"delta"`
	Balance int           `json:"balance"`
}
