package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/osse101/SpinEconomy_Go/internal/cooldown"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing the header so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps a service error onto a status and a user-facing
// message and logs it at a level matching its severity.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(cd.Remaining.Seconds()))))
	}

	if status >= http.StatusInternalServerError {
		log.Error(LogMsgRequestFailed, "path", r.URL.Path, "status", status, "error", err)
	} else {
		log.Debug(LogMsgRequestRejected, "path", r.URL.Path, "status", status, "error", err)
	}
	respondError(w, status, message)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cd cooldown.ErrOnCooldown
	if errors.As(err, &cd) {
		return http.StatusTooManyRequests, cd.Error()
	}

	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrInvalidUserID):
		return http.StatusBadRequest, ErrMsgInvalidUserIDError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrRoleNotOwned):
		return http.StatusNotFound, ErrMsgRoleNotOwnedError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidActivity):
		return http.StatusBadRequest, ErrMsgInvalidActivityError
	case errors.Is(err, domain.ErrInvalidSpinCount):
		return http.StatusBadRequest, ErrMsgInvalidSpinCountError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, domain.ErrMsgOnCooldown
	case errors.Is(err, domain.ErrShopItemNotFound):
		return http.StatusNotFound, ErrMsgShopItemNotFoundError
	case errors.Is(err, domain.ErrEmptyCatalog):
		return http.StatusConflict, ErrMsgEmptyCatalogError
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict, ErrMsgDuplicateIDError
	case errors.Is(err, domain.ErrUnknownEffectType):
		return http.StatusBadRequest, ErrMsgUnknownEffectTypeError
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest, ErrMsgUnknownCategoryError
	case errors.Is(err, domain.ErrMissingRoleRef):
		return http.StatusBadRequest, ErrMsgMissingRoleRefError
	case errors.Is(err, domain.ErrUnexpectedRoleRef):
		return http.StatusBadRequest, ErrMsgUnexpectedRoleRefError
	case errors.Is(err, domain.ErrInvalidCatalogEntry):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrGameNotFound):
		return http.StatusNotFound, ErrMsgGameNotFoundError
	case errors.Is(err, domain.ErrNotYourGame):
		return http.StatusForbidden, ErrMsgNotYourGameError
	case errors.Is(err, domain.ErrGameSettled):
		return http.StatusConflict, ErrMsgGameSettledError
	case errors.Is(err, domain.ErrInvalidBetType):
		return http.StatusBadRequest, ErrMsgInvalidBetTypeError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
