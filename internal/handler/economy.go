package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
)

// ActivityRequest grants a chat or voice activity reward
type ActivityRequest struct {
	Source string `json:"source" validate:"required,activity_source"`
}

// PurchaseRequest buys one shop item
type PurchaseRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// SpinRequest draws a batch of rewards
type SpinRequest struct {
	Count int `json:"count" validate:"min=1,max=3"`
}

// InventoryResponse lists an account's rewards grouped by category
type InventoryResponse struct {
	UserID     string                     `json:"user_id"`
	Categories []domain.InventoryCategory `json:"categories"`
}

// EconomyHandler serves the account-facing economy endpoints
type EconomyHandler struct {
	svc economy.Service
}

// NewEconomyHandler creates a new EconomyHandler
func NewEconomyHandler(svc economy.Service) *EconomyHandler {
	return &EconomyHandler{svc: svc}
}

// HandleGetProfile returns an account's balances and level
// @Summary Get profile
// @Description Returns currency, xp, level and spins. Unknown users get a default account.
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 503 {object} ErrorResponse
// @Router /accounts/{userID} [get]
func (h *EconomyHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// HandleGetInventory lists the rewards an account has drawn
// @Summary Get inventory
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} InventoryResponse
// @Failure 503 {object} ErrorResponse
// @Router /accounts/{userID}/inventory [get]
func (h *EconomyHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	categories, err := h.svc.ListInventory(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, InventoryResponse{UserID: userID, Categories: categories})
}

// HandleGrantActivity credits a random activity reward, subject to cooldown
// @Summary Grant activity reward
// @Tags accounts
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body ActivityRequest true "Activity source"
// @Success 200 {object} economy.ActivityResult
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /accounts/{userID}/activity [post]
func (h *EconomyHandler) HandleGrantActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	var req ActivityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant activity"); err != nil {
		return
	}

	source := domain.ActivitySource(strings.ToLower(req.Source))
	result, err := h.svc.GrantActivity(r.Context(), userID, source)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleClaimDaily credits the daily reward once per 24 hours
// @Summary Claim daily reward
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} economy.DailyResult
// @Failure 409 {object} ErrorResponse
// @Router /accounts/{userID}/daily [post]
func (h *EconomyHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	result, err := h.svc.ClaimDaily(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleDailyStatus reports whether the daily reward is ready
// @Summary Daily reward status
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} economy.DailyStatus
// @Router /accounts/{userID}/daily [get]
func (h *EconomyHandler) HandleDailyStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	status, err := h.svc.DailyStatus(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandlePurchase buys a shop item
// @Summary Purchase shop item
// @Tags accounts
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body PurchaseRequest true "Item to buy"
// @Success 200 {object} domain.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{userID}/purchase [post]
func (h *EconomyHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
		return
	}

	result, err := h.svc.Purchase(r.Context(), userID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleSpin draws a batch of one to three rewards
// @Summary Spin for rewards
// @Tags accounts
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body SpinRequest true "Batch size"
// @Success 200 {object} economy.SpinResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /accounts/{userID}/spin [post]
func (h *EconomyHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	result, err := h.svc.Spin(r.Context(), userID, req.Count)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleClaimRole issues a role claim for a reward the account owns. The
// account itself is not changed; the caller grants the role.
// @Summary Claim owned role
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Param roleID path string true "Role ID"
// @Success 200 {object} domain.RoleClaim
// @Failure 404 {object} ErrorResponse
// @Router /accounts/{userID}/roles/{roleID}/claim [post]
func (h *EconomyHandler) HandleClaimRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}
	roleID, ok := GetPathParam(r, w, "roleID")
	if !ok {
		return
	}

	claim, err := h.svc.ClaimRole(r.Context(), userID, roleID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, claim)
}
