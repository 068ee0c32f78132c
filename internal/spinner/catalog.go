package spinner

import (
	"fmt"
	"sync"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Catalog is the live, mutable reward catalog. Draws never read it directly;
// callers take a Snapshot first.
type Catalog struct {
	mu         sync.RWMutex
	categories []domain.RewardCategory
}

// NewCatalog validates and wraps the given categories. Category keys and item
// IDs must be unique and weights positive.
func NewCatalog(categories []domain.RewardCategory) (*Catalog, error) {
	seenKeys := make(map[string]bool, len(categories))
	seenItems := make(map[string]bool)
	for _, cat := range categories {
		if cat.Key == "" {
			return nil, fmt.Errorf("%w: category key is required", domain.ErrInvalidCatalogEntry)
		}
		if seenKeys[cat.Key] {
			return nil, fmt.Errorf("%w: category %s", domain.ErrDuplicateID, cat.Key)
		}
		seenKeys[cat.Key] = true
		if cat.Weight <= 0 {
			return nil, fmt.Errorf("%w: category %s has non-positive weight", domain.ErrInvalidCatalogEntry, cat.Key)
		}
		for _, item := range cat.Items {
			if seenItems[item.ID] {
				return nil, fmt.Errorf("%w: reward item %s", domain.ErrDuplicateID, item.ID)
			}
			seenItems[item.ID] = true
		}
	}
	return &Catalog{categories: copyCategories(categories)}, nil
}

// Snapshot returns an immutable copy to draw from.
func (c *Catalog) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return NewSnapshot(c.categories)
}

// Categories returns a copy of all categories in declaration order.
func (c *Catalog) Categories() []domain.RewardCategory {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyCategories(c.categories)
}

// Category looks up a category by key.
func (c *Catalog) Category(key string) (domain.RewardCategory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cat := range c.categories {
		if cat.Key == key {
			cat.Items = append([]domain.RewardItem(nil), cat.Items...)
			return cat, true
		}
	}
	return domain.RewardCategory{}, false
}

// HasCategory reports whether a category key exists.
func (c *Catalog) HasCategory(key string) bool {
	_, ok := c.Category(key)
	return ok
}

// AddRewardItem appends an item to a category. Duplicate item IDs anywhere in
// the catalog are rejected and leave the catalog unchanged.
func (c *Catalog) AddRewardItem(categoryKey string, item domain.RewardItem) error {
	if item.ID == "" || item.Name == "" {
		return fmt.Errorf("%w: reward item needs an id and a name", domain.ErrInvalidCatalogEntry)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	target := -1
	for i, cat := range c.categories {
		if cat.Key == categoryKey {
			target = i
		}
		for _, existing := range cat.Items {
			if existing.ID == item.ID {
				return fmt.Errorf("%w: reward item %s", domain.ErrDuplicateID, item.ID)
			}
		}
	}
	if target < 0 {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCategory, categoryKey)
	}

	c.categories[target].Items = append(c.categories[target].Items, item)
	return nil
}

// RemoveRewardItem drops an item from a category. Snapshots already taken keep
// their own copy.
func (c *Catalog) RemoveRewardItem(categoryKey, itemID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cat := range c.categories {
		if cat.Key != categoryKey {
			continue
		}
		for j, item := range cat.Items {
			if item.ID == itemID {
				c.categories[i].Items = append(cat.Items[:j:j], cat.Items[j+1:]...)
				return true
			}
		}
	}
	return false
}
