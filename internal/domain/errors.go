package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgAccountNotFound   = "account not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadyClaimed    = "daily reward already claimed"
	ErrMsgRoleNotOwned      = "role not found in inventory"
	ErrMsgInvalidAmount     = "amount must be positive"
	ErrMsgInvalidActivity   = "invalid activity source"
	ErrMsgInvalidSpinCount  = "invalid spin count"
	ErrMsgOnCooldown        = "action on cooldown"
	ErrMsgInvalidUserID     = "user id is required"

	// Catalog errors
	ErrMsgDuplicateID         = "duplicate id"
	ErrMsgEmptyCatalog        = "no rewards available"
	ErrMsgUnknownEffectType   = "unknown effect type"
	ErrMsgUnknownCategory     = "unknown reward category"
	ErrMsgMissingRoleRef      = "role items require a role reference"
	ErrMsgUnexpectedRoleRef   = "only role items may reference a role"
	ErrMsgShopItemNotFound    = "shop item not found"
	ErrMsgInvalidCatalogEntry = "invalid catalog entry"

	// Game errors
	ErrMsgGameNotFound   = "game not found"
	ErrMsgNotYourGame    = "this is not your game"
	ErrMsgGameSettled    = "game already settled"
	ErrMsgInvalidBetType = "invalid bet type"

	// Storage errors
	ErrMsgStoreUnavailable = "account store unavailable, try again"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrAccountNotFound   = errors.New(ErrMsgAccountNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadyClaimed    = errors.New(ErrMsgAlreadyClaimed)
	ErrRoleNotOwned      = errors.New(ErrMsgRoleNotOwned)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrInvalidActivity   = errors.New(ErrMsgInvalidActivity)
	ErrInvalidSpinCount  = errors.New(ErrMsgInvalidSpinCount)
	ErrOnCooldown        = errors.New(ErrMsgOnCooldown)
	ErrInvalidUserID     = errors.New(ErrMsgInvalidUserID)

	// Catalog errors
	ErrDuplicateID         = errors.New(ErrMsgDuplicateID)
	ErrEmptyCatalog        = errors.New(ErrMsgEmptyCatalog)
	ErrUnknownEffectType   = errors.New(ErrMsgUnknownEffectType)
	ErrUnknownCategory     = errors.New(ErrMsgUnknownCategory)
	ErrMissingRoleRef      = errors.New(ErrMsgMissingRoleRef)
	ErrUnexpectedRoleRef   = errors.New(ErrMsgUnexpectedRoleRef)
	ErrShopItemNotFound    = errors.New(ErrMsgShopItemNotFound)
	ErrInvalidCatalogEntry = errors.New(ErrMsgInvalidCatalogEntry)

	// Game errors
	ErrGameNotFound   = errors.New(ErrMsgGameNotFound)
	ErrNotYourGame    = errors.New(ErrMsgNotYourGame)
	ErrGameSettled    = errors.New(ErrMsgGameSettled)
	ErrInvalidBetType = errors.New(ErrMsgInvalidBetType)

	// Storage errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
)
