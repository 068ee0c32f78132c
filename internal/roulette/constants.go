package roulette

// Wheel layout
const (
	Pockets = 37
	Zero    = 0
)

// GameName labels roulette settlements in events and metrics
const GameName = "roulette"

// Outcome labels
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)

// redNumbers are the red pockets of a single-zero wheel.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// ==================== Log Messages ====================

const (
	LogMsgRoulettePlayed  = "Roulette played"
	LogMsgServiceShutdown = "Roulette service shutting down"
)
