package handler

import (
	"context"
	"net/http"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
)

// ShopLister lists purchasable items
type ShopLister interface {
	List() []domain.ShopItem
}

// CatalogAdmin authors shop and reward items
type CatalogAdmin interface {
	AddItem(ctx context.Context, req shop.AddItemRequest) (*shop.AddItemResult, error)
}

// RewardPreviewer reports spinner odds
type RewardPreviewer interface {
	Preview(ctx context.Context) *economy.Preview
}

// AddCatalogItemRequest creates a shop item, or a reward item for role_<category> types
type AddCatalogItemRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Price       int    `json:"price" validate:"min=1"`
	Type        string `json:"type" validate:"required,effect_type"`
	Quantity    int    `json:"quantity" validate:"min=1"`
	Emoji       string `json:"emoji,omitempty" validate:"max=64"`
	RoleID      string `json:"role_id,omitempty" validate:"max=64"`
}

// ShopResponse lists the shop in display order
type ShopResponse struct {
	Items []domain.ShopItem `json:"items"`
}

// CatalogHandler serves catalog reads and the authoring endpoint
type CatalogHandler struct {
	shop    ShopLister
	preview RewardPreviewer
	admin   CatalogAdmin
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(shop ShopLister, preview RewardPreviewer, admin CatalogAdmin) *CatalogHandler {
	return &CatalogHandler{shop: shop, preview: preview, admin: admin}
}

// HandleGetRewardPreview returns per-category odds and spin prices
// @Summary Spinner odds
// @Tags catalog
// @Produce json
// @Success 200 {object} economy.Preview
// @Router /catalog/rewards [get]
func (h *CatalogHandler) HandleGetRewardPreview(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.preview.Preview(r.Context()))
}

// HandleListShop returns the shop items
// @Summary List shop
// @Tags catalog
// @Produce json
// @Success 200 {object} ShopResponse
// @Router /catalog/shop [get]
func (h *CatalogHandler) HandleListShop(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ShopResponse{Items: h.shop.List()})
}

// HandleAddCatalogItem adds an item to the shop or to a reward category
// @Summary Add catalog item
// @Description role_<category> types become spinner rewards; other types are sold in the shop
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AddCatalogItemRequest true "Item definition"
// @Success 201 {object} shop.AddItemResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/catalog/items [post]
func (h *CatalogHandler) HandleAddCatalogItem(w http.ResponseWriter, r *http.Request) {
	var req AddCatalogItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Add catalog item"); err != nil {
		return
	}

	result, err := h.admin.AddItem(r.Context(), shop.AddItemRequest{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        domain.EffectType(req.Type),
		Quantity:    req.Quantity,
		Emoji:       req.Emoji,
		RoleID:      req.RoleID,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgCatalogItemAdded, "id", req.ID, "type", req.Type, "target", result.Target)
	respondJSON(w, http.StatusCreated, result)
}
