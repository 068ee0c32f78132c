package shop

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/event"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/spinner"
)

// Persister writes both catalogs after an authoring change.
type Persister interface {
	Save(ctx context.Context, shop []domain.ShopItem, rewards []domain.RewardCategory) error
}

// AddItemRequest is an admin request to create a catalog entry.
type AddItemRequest struct {
	ID          string            `json:"id" validate:"required,max=64"`
	Name        string            `json:"name" validate:"required,max=100"`
	Description string            `json:"description" validate:"max=500"`
	Price       int               `json:"price" validate:"min=1"`
	Type        domain.EffectType `json:"type" validate:"required"`
	Quantity    int               `json:"quantity" validate:"min=1"`
	Emoji       string            `json:"emoji,omitempty"`
	RoleID      string            `json:"role_id,omitempty"`
}

// AddItemResult reports where the new entry landed.
type AddItemResult struct {
	Target     string             `json:"target"`
	Category   string             `json:"category,omitempty"`
	ShopItem   *domain.ShopItem   `json:"shop_item,omitempty"`
	RewardItem *domain.RewardItem `json:"reward_item,omitempty"`
}

// Admin is the catalog-authoring surface. Role types are routed into the
// reward catalog; everything else goes to the shop.
type Admin struct {
	mu        sync.Mutex
	shop      *Catalog
	rewards   *spinner.Catalog
	persister Persister
	publisher *event.Publisher
}

// NewAdmin wires the two catalogs together. persister and bus may be nil.
func NewAdmin(shop *Catalog, rewards *spinner.Catalog, persister Persister, bus event.Bus) *Admin {
	return &Admin{
		shop:      shop,
		rewards:   rewards,
		persister: persister,
		publisher: event.NewPublisher(bus, event.DefaultPublisherConfig()),
	}
}

// AddItem creates a shop item or a reward item depending on the request type.
// When the catalogs cannot be saved the new entry is taken back out, so the
// live catalogs always match the file.
func (a *Admin) AddItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	if req.Emoji == "" {
		req.Emoji = domain.DefaultShopEmoji
	}

	var result *AddItemResult
	if req.Type.IsRole() {
		res, err := a.addRoleItem(req)
		if err != nil {
			return nil, err
		}
		result = res
		log.Info(LogMsgRoleItemAdded, "item_id", req.ID, "category", res.Category, "role_id", req.RoleID)
	} else {
		res, err := a.addShopItem(req)
		if err != nil {
			return nil, err
		}
		result = res
		log.Info(LogMsgShopItemAdded, "item_id", req.ID, "type", req.Type, "price", req.Price)
	}

	if a.persister != nil {
		if err := a.persister.Save(ctx, a.shop.List(), a.rewards.Categories()); err != nil {
			log.Error(LogMsgCatalogPersistFail, "item_id", req.ID, "error", err)
			a.rollback(result, req.ID)
			return nil, fmt.Errorf("%w: catalogs were not saved: %v", domain.ErrStoreUnavailable, err)
		}
	}

	a.publisher.Publish(ctx, event.NewCatalogItemAddedEvent(req.ID, result.Target, result.Category))
	return result, nil
}

// Shutdown waits for in-flight event publishing
func (a *Admin) Shutdown(ctx context.Context) error {
	return a.publisher.Shutdown(ctx)
}

func (a *Admin) rollback(result *AddItemResult, id string) {
	if result.Target == TargetRewards {
		a.rewards.RemoveRewardItem(result.Category, id)
		return
	}
	a.shop.RemoveItem(id)
}

func (a *Admin) addRoleItem(req AddItemRequest) (*AddItemResult, error) {
	if req.RoleID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingRoleRef, req.ID)
	}
	category := req.Type.RoleCategory()
	if !a.rewards.HasCategory(category) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}
	if a.shop.Has(req.ID) {
		return nil, fmt.Errorf("%w: %s is already a shop item", domain.ErrDuplicateID, req.ID)
	}

	item := domain.RewardItem{
		ID:     req.ID,
		Name:   req.Name,
		RoleID: req.RoleID,
		Emoji:  req.Emoji,
	}
	if err := a.rewards.AddRewardItem(category, item); err != nil {
		return nil, err
	}
	return &AddItemResult{Target: TargetRewards, Category: category, RewardItem: &item}, nil
}

func (a *Admin) addShopItem(req AddItemRequest) (*AddItemResult, error) {
	if req.RoleID != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnexpectedRoleRef, req.ID)
	}
	if _, ok := a.findRewardItem(req.ID); ok {
		return nil, fmt.Errorf("%w: %s is already a reward item", domain.ErrDuplicateID, req.ID)
	}

	item := domain.ShopItem{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		Quantity:    req.Quantity,
		Emoji:       req.Emoji,
	}
	if err := a.shop.AddItem(item); err != nil {
		return nil, err
	}
	return &AddItemResult{Target: TargetShop, ShopItem: &item}, nil
}

func (a *Admin) findRewardItem(id string) (domain.RewardItem, bool) {
	for _, cat := range a.rewards.Categories() {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return domain.RewardItem{}, false
}
