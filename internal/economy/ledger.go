package economy

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// The ledger functions below never mutate their input. Each returns either a
// complete new account or an error, so callers can persist the result as a
// single unit.

// ActivityResult reports an activity payout.
type ActivityResult struct {
	Source     domain.ActivitySource `json:"source"`
	Amount     int                   `json:"amount"`
	Currency   int                   `json:"currency"`
	DailyReady bool                  `json:"daily_ready"`
}

// DailyResult reports a successful daily claim.
type DailyResult struct {
	Reward      int       `json:"reward"`
	XP          int       `json:"xp"`
	Currency    int       `json:"currency"`
	TotalXP     int       `json:"total_xp"`
	Level       int       `json:"level"`
	ClaimedAt   time.Time `json:"claimed_at"`
	NextClaimAt time.Time `json:"next_claim_at"`
}

// DailyStatus tells a front-end whether the daily reward can be claimed.
type DailyStatus struct {
	Ready            bool       `json:"ready"`
	NextClaimAt      *time.Time `json:"next_claim_at,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

// SpinResult reports an applied spin batch.
type SpinResult struct {
	Results   []domain.RewardResult `json:"results"`
	Cost      int                   `json:"cost"`
	SpinsUsed int                   `json:"spins_used"`
	Currency  int                   `json:"currency"`
	Spins     int                   `json:"spins"`
}

// GrantActivityReward credits a positive amount.
func GrantActivityReward(acc *domain.Account, amount int) (*domain.Account, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	next := acc.Clone()
	next.Currency += amount
	return next, nil
}

// DailyStatusAt reports claim readiness at now.
func DailyStatusAt(acc *domain.Account, now time.Time) DailyStatus {
	if acc.LastDailyClaimAt == nil {
		return DailyStatus{Ready: true}
	}
	next := acc.LastDailyClaimAt.Add(domain.DailyClaimWindow)
	if !now.Before(next) {
		return DailyStatus{Ready: true}
	}
	return DailyStatus{
		NextClaimAt:      &next,
		RemainingSeconds: int64(next.Sub(now).Seconds()),
	}
}

// ClaimDaily grants the daily reward once per DailyClaimWindow.
func ClaimDaily(acc *domain.Account, now time.Time, reward, xp int) (*domain.Account, *DailyResult, error) {
	if status := DailyStatusAt(acc, now); !status.Ready {
		return nil, nil, fmt.Errorf("%w: next claim at %s", domain.ErrAlreadyClaimed, status.NextClaimAt.Format(time.RFC3339))
	}

	next := acc.Clone()
	next.Currency += reward
	next.XP += xp
	claimedAt := now
	next.LastDailyClaimAt = &claimedAt

	return next, &DailyResult{
		Reward:      reward,
		XP:          xp,
		Currency:    next.Currency,
		TotalXP:     next.XP,
		Level:       next.Level(),
		ClaimedAt:   claimedAt,
		NextClaimAt: claimedAt.Add(domain.DailyClaimWindow),
	}, nil
}

// Purchase deducts the price and applies the item's effect. An effect type the
// ledger does not recognise still costs the price; the result carries a warning.
func Purchase(acc *domain.Account, item domain.ShopItem) (*domain.Account, *domain.PurchaseResult, error) {
	if item.Price <= 0 {
		return nil, nil, fmt.Errorf("%w: price %d", domain.ErrInvalidAmount, item.Price)
	}
	if acc.Currency < item.Price {
		return nil, nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, item.Price, acc.Currency)
	}

	next := acc.Clone()
	next.Currency -= item.Price

	result := &domain.PurchaseResult{Item: item, Price: item.Price}
	switch item.Type {
	case domain.EffectSpins:
		next.Spins += item.Quantity
	case domain.EffectXP:
		next.XP += item.Quantity
	case domain.EffectCurrency:
		next.Currency += item.Quantity
	default:
		result.Warning = fmt.Sprintf("%s: %s", domain.ErrMsgUnknownEffectType, item.Type)
	}
	result.CurrencyBalance = next.Currency

	return next, result, nil
}

// SpinCharge splits a batch of n spins between owned spins and currency.
// Owned spins are used first; the remaining draws pay their share of cost.
func SpinCharge(cost, n, owned int) (free, charge int) {
	if n <= 0 {
		return 0, 0
	}
	free = min(owned, n)
	if free < 0 {
		free = 0
	}
	paid := n - free
	return free, cost * paid / n
}

// SpendSpins removes n owned spins.
func SpendSpins(acc *domain.Account, n int) (*domain.Account, error) {
	if n < 0 || n > acc.Spins {
		return nil, fmt.Errorf("%w: %d spins requested, %d owned", domain.ErrInvalidSpinCount, n, acc.Spins)
	}
	next := acc.Clone()
	next.Spins -= n
	return next, nil
}

// ApplySpinResults charges totalCost and appends each result to the
// inventory in draw order.
func ApplySpinResults(acc *domain.Account, results []domain.RewardResult, totalCost int) (*domain.Account, error) {
	if totalCost < 0 {
		return nil, fmt.Errorf("%w: cost %d", domain.ErrInvalidAmount, totalCost)
	}
	if acc.Currency < totalCost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, totalCost, acc.Currency)
	}

	next := acc.Clone()
	next.Currency -= totalCost
	for _, r := range results {
		next.Inventory[r.CategoryKey] = append(next.Inventory[r.CategoryKey], r.Item)
	}
	return next, nil
}

// ResolveRoleClaim finds an owned reward that grants roleID. It never mutates.
func ResolveRoleClaim(acc *domain.Account, roleID string) (*domain.RoleClaim, error) {
	if roleID != "" {
		keys := make([]string, 0, len(acc.Inventory))
		for key := range acc.Inventory {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			for _, item := range acc.Inventory[key] {
				if item.RoleID == roleID {
					return &domain.RoleClaim{
						UserID:      acc.UserID,
						RoleID:      roleID,
						CategoryKey: key,
						Item:        item,
					}, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrRoleNotOwned, roleID)
}

// ListInventory projects the inventory in catalog category order. Categories
// no longer in the catalog follow, sorted by key.
func ListInventory(acc *domain.Account, categories []domain.RewardCategory) []domain.InventoryCategory {
	out := make([]domain.InventoryCategory, 0, len(acc.Inventory))
	known := make(map[string]bool, len(categories))

	for _, cat := range categories {
		known[cat.Key] = true
		items := acc.Inventory[cat.Key]
		if len(items) == 0 {
			continue
		}
		out = append(out, domain.InventoryCategory{
			Key:    cat.Key,
			Name:   cat.Name,
			Rarity: cat.Rarity,
			Items:  append([]domain.RewardItem(nil), items...),
		})
	}

	var orphans []string
	for key, items := range acc.Inventory {
		if !known[key] && len(items) > 0 {
			orphans = append(orphans, key)
		}
	}
	sort.Strings(orphans)
	for _, key := range orphans {
		out = append(out, domain.InventoryCategory{
			Key:   key,
			Name:  key,
			Items: append([]domain.RewardItem(nil), acc.Inventory[key]...),
		})
	}
	return out
}

// Settle applies a game payout. Debits are capped at the current balance so
// currency never goes negative; the applied delta is returned.
func Settle(acc *domain.Account, delta int) (*domain.Account, int) {
	next := acc.Clone()
	if delta < 0 && -delta > next.Currency {
		delta = -next.Currency
	}
	next.Currency += delta
	return next, delta
}
