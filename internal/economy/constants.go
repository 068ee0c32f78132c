package economy

// ==================== Log Messages ====================

// Store log messages
const (
	LogMsgLoadAccountFailed = "Failed to load account"
	LogMsgSaveAccountFailed = "Failed to save account"
)

// Service operation log messages
const (
	LogMsgActivityRewarded       = "Activity rewarded"
	LogMsgDailyClaimed           = "Daily reward claimed"
	LogMsgItemPurchased          = "Item purchased"
	LogMsgUnknownEffectPurchased = "Purchased item has an unknown effect type; price charged with no effect"
	LogMsgSpinCompleted          = "Spin completed"
	LogMsgRoleClaimIssued        = "Role claim issued"
)

// Background task log messages
const (
	LogMsgEconomyShuttingDown = "Economy service shutting down, waiting for background tasks..."
)
