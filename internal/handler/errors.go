package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidLimitError     = "limit must be a positive integer"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgUnavailableError   = "Account storage is temporarily unavailable. Please try again."

	// Account messages
	ErrMsgInvalidUserIDError     = "A user id is required"
	ErrMsgNotEnoughMoneyError    = "Not enough coins"
	ErrMsgAlreadyClaimedError    = "Daily reward already claimed. Come back later"
	ErrMsgRoleNotOwnedError      = "You don't own that role"
	ErrMsgInvalidAmountError     = "Amount must be positive"
	ErrMsgInvalidActivityError   = "Invalid activity source"
	ErrMsgInvalidSpinCountError  = "Spin count must be between 1 and 3"
	ErrMsgShopItemNotFoundError  = "Shop item not found"
	ErrMsgEmptyCatalogError      = "No rewards are available right now"
	ErrMsgDuplicateIDError       = "An item with that id already exists"
	ErrMsgUnknownEffectTypeError = "Unknown item type"
	ErrMsgUnknownCategoryError   = "Unknown reward category"
	ErrMsgMissingRoleRefError    = "Role items need a role"
	ErrMsgUnexpectedRoleRefError = "Only role items may reference a role"

	// Game messages
	ErrMsgGameNotFoundError   = "Game not found"
	ErrMsgNotYourGameError    = "This is not your game"
	ErrMsgGameSettledError    = "This game is already over"
	ErrMsgInvalidBetTypeError = "Invalid bet type"
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStoreUnreachable     = "account store unreachable"
	LogMsgReadinessFailed   = "Readiness check failed"
)

// Log messages
const (
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgRequestRejected  = "Request rejected"
	LogMsgRequestFailed    = "Request failed"
	LogMsgCatalogItemAdded = "Catalog item added"
)

// HeaderRetryAfter is set on cooldown rejections.
const HeaderRetryAfter = "Retry-After"
