package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinEconomy_Go/internal/cooldown"
	"github.com/osse101/SpinEconomy_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{"wrapped insufficient funds", fmt.Errorf("%w: need 50, have 10", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughMoneyError},
		{"already claimed", domain.ErrAlreadyClaimed, http.StatusConflict, ErrMsgAlreadyClaimedError},
		{"duplicate id", domain.ErrDuplicateID, http.StatusConflict, ErrMsgDuplicateIDError},
		{"game not found", domain.ErrGameNotFound, http.StatusNotFound, ErrMsgGameNotFoundError},
		{"not your game", domain.ErrNotYourGame, http.StatusForbidden, ErrMsgNotYourGameError},
		{"empty catalog", domain.ErrEmptyCatalog, http.StatusConflict, ErrMsgEmptyCatalogError},
		{"role not owned", domain.ErrRoleNotOwned, http.StatusNotFound, ErrMsgRoleNotOwnedError},
		{"unknown shop item", domain.ErrShopItemNotFound, http.StatusNotFound, ErrMsgShopItemNotFoundError},
		{"invalid bet", domain.ErrInvalidBetType, http.StatusBadRequest, ErrMsgInvalidBetTypeError},
		{"missing role", domain.ErrMissingRoleRef, http.StatusBadRequest, ErrMsgMissingRoleRefError},
		{"store unavailable", fmt.Errorf("%w: dial tcp", domain.ErrStoreUnavailable), http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"unmapped error", errors.New("kaboom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"nil error", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondServiceError_Cooldown(t *testing.T) {
	err := cooldown.ErrOnCooldown{Action: "activity_chat", Remaining: 1500 * time.Millisecond}

	req := httptest.NewRequest("POST", "/api/v1/accounts/u1/activity", nil)
	w := httptest.NewRecorder()

	respondServiceError(w, req, err)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get(HeaderRetryAfter))
	assert.Equal(t, err.Error(), decodeError(t, w))
}
