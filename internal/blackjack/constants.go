package blackjack

// Table rules
const (
	DeckSize        = 52
	BustThreshold   = 21
	DealerStandsOn  = 17
	AceDemotion     = 10
	InitialHandSize = 2
)

// GameName labels blackjack settlements in events and metrics
const GameName = "blackjack"

// Session ID format: <userId>_bj_<unixMillis>_<suffix>
const (
	SessionIDFormat     = "%s_bj_%d_%s"
	SessionSuffixLength = 8
)

// ==================== Log Messages ====================

const (
	LogMsgGameStarted     = "Blackjack game started"
	LogMsgGameSettled     = "Blackjack game settled"
	LogMsgSessionsExpired = "Expired blackjack sessions removed"
	LogMsgEngineShutdown  = "Blackjack engine shutting down"
)
