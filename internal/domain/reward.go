package domain

// RewardItem is a discrete reward (usually a chat role) that a spin can grant.
type RewardItem struct {
	ID     string `json:"id" yaml:"id" validate:"required"`
	Name   string `json:"name" yaml:"name" validate:"required"`
	RoleID string `json:"role_id" yaml:"role_id"`
	Emoji  string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// RewardCategory groups reward items under one rarity and draw weight.
type RewardCategory struct {
	Key    string       `json:"key" yaml:"key" validate:"required"`
	Name   string       `json:"name" yaml:"name" validate:"required"`
	Rarity string       `json:"rarity" yaml:"rarity"`
	Weight float64      `json:"weight" yaml:"weight" validate:"gt=0"`
	Items  []RewardItem `json:"items" yaml:"items" validate:"dive"`
}

// RewardResult is the outcome of a single spin.
type RewardResult struct {
	CategoryKey  string     `json:"category"`
	CategoryName string     `json:"category_name"`
	Rarity       string     `json:"rarity"`
	Item         RewardItem `json:"item"`
}

// CategoryPreview describes one category's odds for display.
type CategoryPreview struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Rarity      string  `json:"rarity"`
	ItemCount   int     `json:"item_count"`
	Probability float64 `json:"probability"`
	Percentage  string  `json:"percentage"`
}

// InventoryCategory is one category's slice of an account's inventory.
type InventoryCategory struct {
	Key    string       `json:"key"`
	Name   string       `json:"name"`
	Rarity string       `json:"rarity,omitempty"`
	Items  []RewardItem `json:"items"`
}

// RoleClaim is the capability handed to the chat platform to grant a role out-of-band.
type RoleClaim struct {
	UserID      string     `json:"user_id"`
	RoleID      string     `json:"role_id"`
	CategoryKey string     `json:"category"`
	Item        RewardItem `json:"item"`
}
