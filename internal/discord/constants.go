package discord

import "time"

// Component custom IDs. Prefixed IDs carry a payload after the prefix.
const (
	ButtonProfile       = "profile"
	ButtonSpin          = "spin"
	ButtonShop          = "shop"
	ButtonInventory     = "inventory"
	ButtonClaimDaily    = "claim_daily"
	ButtonPlayBlackjack = "play_blackjack"
	ButtonPlayRoulette  = "play_roulette"

	SelectShop = "shop_select"

	PrefixSpin      = "spin_x"
	PrefixClaimRole = "claim_role_"
	PrefixBJHit     = "bj_hit_"
	PrefixBJStand   = "bj_stand_"
	PrefixRoulette  = "roulette_"
)

// Command names
const (
	CommandEconomy = "economy"
	CommandAddItem = "additem"
)

// Embed colors
const (
	ColorInfo    = 0x0099ff
	ColorSuccess = 0x00ff00
	ColorLoss    = 0xff0000
	ColorPush    = 0xffff00
	ColorCasino  = 0xff6b35
	ColorGold    = 0xffd700
)

// Footer constants for standardized embed footers.
const (
	FooterSpinEconomy      = "SpinEconomy"
	FooterSpinEconomyAdmin = "SpinEconomy Admin"
)

const (
	// MaxSpinButtons is the largest batch offered in the spin submenu
	MaxSpinButtons = 3

	// MaxClaimButtons caps role claim buttons on the inventory embed
	MaxClaimButtons = 5

	// MaxSelectOptions is Discord's limit for select menu options
	MaxSelectOptions = 25

	// DefaultRouletteAmount is the stake on the roulette buttons
	DefaultRouletteAmount = 25

	// DailyNotifyWindow bounds daily-ready DMs to one per user per window
	DailyNotifyWindow = 24 * time.Hour

	// DailyNotifyCacheSize bounds the users tracked for daily DMs
	DailyNotifyCacheSize = 10000

	// APIRequestTimeout bounds one API call including retries
	APIRequestTimeout = 10 * time.Second

	// APIMaxRetries is the number of retries for GETs, or for dial errors on writes
	APIMaxRetries = 3

	// APIRetryDelay is the base backoff delay
	APIRetryDelay = 500 * time.Millisecond
)

// Log messages
const (
	LogMsgBotReady              = "Bot is ready"
	LogMsgBotRunning            = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgSessionCloseFailed    = "Error closing Discord session"
	LogMsgDeferFailed           = "Failed to send deferred response"
	LogMsgEditFailed            = "Failed to edit interaction response"
	LogMsgActionFailed          = "Action failed"
	LogMsgUnknownComponent      = "Unknown component interaction"
	LogMsgActivityFailed        = "Activity grant failed"
	LogMsgDailyDMFailed         = "Failed to send daily reminder"
	LogMsgRoleGrantFailed       = "Failed to grant role"
	LogMsgRetryingRequest       = "Retrying API request"
	LogMsgRequestFailed         = "API request failed"
	LogMsgServerErrorRetry      = "Server error, will retry"
	LogMsgCheckingCommands      = "Checking Discord commands..."
	LogMsgCommandsUnchanged     = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated       = "Commands updated successfully"
	LogMsgHealthServerStarting  = "Starting Discord health server"
	LogMsgHealthServerFailed    = "Discord health server failed"
	LogMsgHealthServerStopError = "Discord health server shutdown failed"
	LogMsgHealthEncodeFailed    = "Failed to encode health response"
	LogMsgPanelSendFailed       = "Failed to send economy panel"
)
