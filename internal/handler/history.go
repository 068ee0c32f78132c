package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/osse101/SpinEconomy_Go/internal/eventlog"
)

// HistoryReader reads an account's audit trail
type HistoryReader interface {
	History(ctx context.Context, userID string, limit int) ([]eventlog.Event, error)
}

// HistoryResponse lists an account's newest events first
type HistoryResponse struct {
	UserID string           `json:"user_id"`
	Events []eventlog.Event `json:"events"`
}

// HistoryHandler serves the account history endpoint
type HistoryHandler struct {
	reader HistoryReader
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(reader HistoryReader) *HistoryHandler {
	return &HistoryHandler{reader: reader}
}

// HandleGetHistory returns the account's recent economy events
// @Summary Account history
// @Description Purchases, spins, daily claims, activity rewards and game results, newest first.
// @Tags accounts
// @Produce json
// @Param userID path string true "User ID"
// @Param limit query int false "Maximum events (1-100, default 20)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /accounts/{userID}/history [get]
func (h *HistoryHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetPathParam(r, w, "userID")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimitError)
			return
		}
		limit = n
	}

	events, err := h.reader.History(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if events == nil {
		events = []eventlog.Event{}
	}

	respondJSON(w, http.StatusOK, HistoryResponse{UserID: userID, Events: events})
}
