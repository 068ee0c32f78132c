package shop

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

// Catalog holds the purchasable items in display order.
type Catalog struct {
	mu    sync.RWMutex
	items []domain.ShopItem
}

// NewCatalog builds a catalog from stored items. Items with an effect type the
// ledger does not understand are kept so that existing listings stay
// purchasable, but they are logged.
func NewCatalog(items []domain.ShopItem) (*Catalog, error) {
	seen := make(map[string]bool, len(items))
	out := make([]domain.ShopItem, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			return nil, fmt.Errorf("%w: shop item %s", domain.ErrDuplicateID, item.ID)
		}
		seen[item.ID] = true
		if err := validateStored(item); err != nil {
			return nil, err
		}
		if !item.Type.IsPlain() {
			slog.Warn(LogMsgUnknownEffectLoaded, "item_id", item.ID, "type", item.Type)
		}
		out = append(out, withDefaults(item))
	}
	return &Catalog{items: out}, nil
}

// Get looks up an item by ID.
func (c *Catalog) Get(id string) (domain.ShopItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.ShopItem{}, fmt.Errorf("%w: %s", domain.ErrShopItemNotFound, id)
}

// List returns a copy of all items in display order.
func (c *Catalog) List() []domain.ShopItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.ShopItem(nil), c.items...)
}

// AddItem appends a plain effect item. Role items never live in the shop; see Admin.
func (c *Catalog) AddItem(item domain.ShopItem) error {
	if err := validateNew(item); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.items {
		if existing.ID == item.ID {
			return fmt.Errorf("%w: shop item %s", domain.ErrDuplicateID, item.ID)
		}
	}
	c.items = append(c.items, withDefaults(item))
	return nil
}

// RemoveItem drops an item by ID. It reports whether anything was removed.
func (c *Catalog) RemoveItem(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether an ID is taken.
func (c *Catalog) Has(id string) bool {
	_, err := c.Get(id)
	return err == nil
}

func validateStored(item domain.ShopItem) error {
	if item.ID == "" || item.Name == "" {
		return fmt.Errorf("%w: shop item needs an id and a name", domain.ErrInvalidCatalogEntry)
	}
	if item.Price <= 0 {
		return fmt.Errorf("%w: shop item %s has non-positive price", domain.ErrInvalidCatalogEntry, item.ID)
	}
	if item.Type.IsRole() {
		return fmt.Errorf("%w: role item %s belongs in the reward catalog", domain.ErrInvalidCatalogEntry, item.ID)
	}
	if item.RoleID != "" {
		return fmt.Errorf("%w: %s", domain.ErrUnexpectedRoleRef, item.ID)
	}
	return nil
}

func validateNew(item domain.ShopItem) error {
	if err := validateStored(item); err != nil {
		return err
	}
	if !item.Type.IsPlain() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownEffectType, item.Type)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: shop item %s needs a positive quantity", domain.ErrInvalidCatalogEntry, item.ID)
	}
	return nil
}

func withDefaults(item domain.ShopItem) domain.ShopItem {
	if item.Emoji == "" {
		item.Emoji = DefaultEmoji(item.Type)
	}
	return item
}

// DefaultEmoji picks the display emoji for an item type.
func DefaultEmoji(t domain.EffectType) string {
	switch t {
	case domain.EffectSpins:
		return "🎲"
	case domain.EffectXP:
		return "⭐"
	case domain.EffectCurrency:
		return "💰"
	}
	return domain.DefaultShopEmoji
}
