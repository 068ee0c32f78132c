package domain

import "time"

// Account defaults and progression constants
const (
	DefaultStartingCurrency = 100
	DailyClaimWindow        = 24 * time.Hour
	XPPerLevel              = 100
)

// Account is the per-user economy state.
type Account struct {
	UserID           string                  `json:"user_id"`
	Username         string                  `json:"username,omitempty"`
	Currency         int                     `json:"currency"`
	XP               int                     `json:"xp"`
	Spins            int                     `json:"spins"`
	LastDailyClaimAt *time.Time              `json:"last_daily_claim_at,omitempty"`
	Inventory        map[string][]RewardItem `json:"inventory"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// NewAccount returns an account with the default starting balance.
func NewAccount(userID string) *Account {
	now := time.Now()
	return &Account{
		UserID:    userID,
		Currency:  DefaultStartingCurrency,
		Inventory: make(map[string][]RewardItem),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy so ledger operations never alias the caller's inventory.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.LastDailyClaimAt != nil {
		t := *a.LastDailyClaimAt
		c.LastDailyClaimAt = &t
	}
	c.Inventory = make(map[string][]RewardItem, len(a.Inventory))
	for key, items := range a.Inventory {
		c.Inventory[key] = append([]RewardItem(nil), items...)
	}
	return &c
}

// Level derives the display level from XP.
func (a *Account) Level() int {
	return a.XP/XPPerLevel + 1
}

// XPToNextLevel returns the XP still needed for the next level.
func (a *Account) XPToNextLevel() int {
	return XPPerLevel - a.XP%XPPerLevel
}

// InventoryCount returns the total number of owned reward items.
func (a *Account) InventoryCount() int {
	total := 0
	for _, items := range a.Inventory {
		total += len(items)
	}
	return total
}

// Profile is the read-only view rendered by front-ends.
type Profile struct {
	UserID         string     `json:"user_id"`
	Username       string     `json:"username,omitempty"`
	Currency       int        `json:"currency"`
	XP             int        `json:"xp"`
	Level          int        `json:"level"`
	XPToNextLevel  int        `json:"xp_to_next_level"`
	Spins          int        `json:"spins"`
	InventoryCount int        `json:"inventory_count"`
	LastDailyClaim *time.Time `json:"last_daily_claim_at,omitempty"`
}

// Profile projects the account into its display form.
func (a *Account) Profile() Profile {
	return Profile{
		UserID:         a.UserID,
		Username:       a.Username,
		Currency:       a.Currency,
		XP:             a.XP,
		Level:          a.Level(),
		XPToNextLevel:  a.XPToNextLevel(),
		Spins:          a.Spins,
		InventoryCount: a.InventoryCount(),
		LastDailyClaim: a.LastDailyClaimAt,
	}
}

// ActivitySource identifies what kind of chat activity earned a reward.
type ActivitySource string

const (
	ActivityChat  ActivitySource = "chat"
	ActivityVoice ActivitySource = "voice"
)

// IsValid reports whether the source is one the economy rewards.
func (s ActivitySource) IsValid() bool {
	return s == ActivityChat || s == ActivityVoice
}
