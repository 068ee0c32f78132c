package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/SpinEconomy_Go/internal/blackjack"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/roulette"
)

// BlackjackRequest identifies the acting player
type BlackjackRequest struct {
	UserID string `json:"user_id" validate:"required,max=64"`
}

// RouletteRequest places one roulette bet. Omitting amount stakes the configured default bet.
type RouletteRequest struct {
	UserID  string `json:"user_id" validate:"required,max=64"`
	BetType string `json:"bet_type" validate:"required,bet_type"`
	Amount  *int   `json:"amount,omitempty"`
}

// GamesHandler serves the blackjack and roulette endpoints
type GamesHandler struct {
	blackjack blackjack.Service
	roulette  roulette.Service
}

// NewGamesHandler creates a new GamesHandler
func NewGamesHandler(bj blackjack.Service, rl roulette.Service) *GamesHandler {
	return &GamesHandler{blackjack: bj, roulette: rl}
}

// HandleStartBlackjack deals a new round
// @Summary Start blackjack
// @Description The bet is not deducted up front; the player must be able to cover it
// @Tags games
// @Accept json
// @Produce json
// @Param request body BlackjackRequest true "Player"
// @Success 201 {object} domain.BlackjackView
// @Failure 400 {object} ErrorResponse
// @Router /games/blackjack [post]
func (h *GamesHandler) HandleStartBlackjack(w http.ResponseWriter, r *http.Request) {
	var req BlackjackRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start blackjack"); err != nil {
		return
	}

	view, err := h.blackjack.Start(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// HandleBlackjackHit draws a card for the player
// @Summary Blackjack hit
// @Tags games
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID"
// @Param request body BlackjackRequest true "Player"
// @Success 200 {object} domain.BlackjackView
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/blackjack/{gameID}/hit [post]
func (h *GamesHandler) HandleBlackjackHit(w http.ResponseWriter, r *http.Request) {
	h.handleBlackjackMove(w, r, "Blackjack hit", h.blackjack.Hit)
}

// HandleBlackjackStand plays out the dealer and settles the round
// @Summary Blackjack stand
// @Tags games
// @Accept json
// @Produce json
// @Param gameID path string true "Game ID"
// @Param request body BlackjackRequest true "Player"
// @Success 200 {object} domain.BlackjackView
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/blackjack/{gameID}/stand [post]
func (h *GamesHandler) HandleBlackjackStand(w http.ResponseWriter, r *http.Request) {
	h.handleBlackjackMove(w, r, "Blackjack stand", h.blackjack.Stand)
}

func (h *GamesHandler) handleBlackjackMove(
	w http.ResponseWriter,
	r *http.Request,
	actionName string,
	move func(ctx context.Context, userID, gameID string) (*domain.BlackjackView, error),
) {
	gameID, ok := GetPathParam(r, w, "gameID")
	if !ok {
		return
	}

	var req BlackjackRequest
	if err := DecodeAndValidateRequest(r, w, &req, actionName); err != nil {
		return
	}

	view, err := move(r.Context(), req.UserID, gameID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandlePlayRoulette spins the wheel for one bet
// @Summary Play roulette
// @Description Zero loses every bet. A win credits amount times the multiplier; a loss debits the amount.
// @Description Omit amount to stake the configured default bet. An explicit amount of zero or less is rejected.
// @Tags games
// @Accept json
// @Produce json
// @Param request body RouletteRequest true "Bet"
// @Success 200 {object} domain.RouletteResult
// @Failure 400 {object} ErrorResponse
// @Router /games/roulette [post]
func (h *GamesHandler) HandlePlayRoulette(w http.ResponseWriter, r *http.Request) {
	var req RouletteRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Play roulette"); err != nil {
		return
	}

	amount := h.roulette.DefaultBet()
	if req.Amount != nil {
		amount = *req.Amount
	}

	result, err := h.roulette.Play(r.Context(), req.UserID, domain.RouletteBet(strings.ToLower(req.BetType)), amount)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
