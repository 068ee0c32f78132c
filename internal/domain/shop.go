package domain

import "strings"

// EffectType determines what a shop purchase grants.
type EffectType string

const (
	EffectSpins    EffectType = "spins"
	EffectXP       EffectType = "xp"
	EffectCurrency EffectType = "currency"

	// RoleEffectPrefix marks authoring-time items that add a role to a reward category.
	RoleEffectPrefix = "role_"

	DefaultShopEmoji = "🎁"
)

// IsPlain reports whether the effect resolves entirely on the account.
func (t EffectType) IsPlain() bool {
	switch t {
	case EffectSpins, EffectXP, EffectCurrency:
		return true
	}
	return false
}

// IsRole reports whether the type targets a reward category.
func (t EffectType) IsRole() bool {
	return strings.HasPrefix(string(t), RoleEffectPrefix) && len(t) > len(RoleEffectPrefix)
}

// RoleCategory returns the reward category key of a role type.
func (t EffectType) RoleCategory() string {
	if !t.IsRole() {
		return ""
	}
	return strings.TrimPrefix(string(t), RoleEffectPrefix)
}

// ShopItem is a purchasable item.
type ShopItem struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Name        string     `json:"name" yaml:"name" validate:"required"`
	Description string     `json:"description" yaml:"description"`
	Price       int        `json:"price" yaml:"price" validate:"gt=0"`
	Type        EffectType `json:"type" yaml:"type" validate:"required"`
	Quantity    int        `json:"quantity" yaml:"quantity" validate:"gte=0"`
	Emoji       string     `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	RoleID      string     `json:"role_id,omitempty" yaml:"role_id,omitempty"`
}

// PurchaseResult summarizes an applied purchase.
type PurchaseResult struct {
	Item            ShopItem `json:"item"`
	Price           int      `json:"price"`
	CurrencyBalance int      `json:"currency"`
	Warning         string   `json:"warning,omitempty"`
}
