package shop

// Log messages
const (
	LogMsgUnknownEffectLoaded = "Shop item with unknown effect type loaded"
	LogMsgShopItemAdded       = "Shop item added"
	LogMsgRoleItemAdded       = "Role added to reward catalog"
	LogMsgCatalogPersistFail  = "Failed to persist catalogs"
)

// Authoring targets
const (
	TargetShop    = "shop"
	TargetRewards = "rewards"
)
