package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/economy"
)

func TestAPIClient_GetProfile(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("GET /api/v1/accounts/user-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		WriteJSON(w, domain.Profile{Currency: 1250, Level: 3, Spins: 2})
	})

	profile, err := ctx.APIClient.GetProfile(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, 1250, profile.Currency)
	assert.Equal(t, 3, profile.Level)
	assert.Equal(t, 2, profile.Spins)
}

func TestAPIClient_ErrorHandling(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []int
		wantAttempts int32
		wantErr      bool
		wantStatus   int
		wantMessage  string
	}{
		// CASE 1: BEST CASE
		{
			name:         "success on first try",
			statuses:     []int{http.StatusOK},
			wantAttempts: 1,
		},
		// CASE 2: client errors are not retried
		{
			name:         "4xx returns APIError immediately",
			statuses:     []int{http.StatusBadRequest},
			wantAttempts: 1,
			wantErr:      true,
			wantStatus:   http.StatusBadRequest,
			wantMessage:  "not enough money",
		},
		// CASE 3: transient server error recovers
		{
			name:         "5xx then success",
			statuses:     []int{http.StatusServiceUnavailable, http.StatusOK},
			wantAttempts: 2,
		},
		// CASE 4: WORST CASE
		{
			name:         "5xx until retries are exhausted",
			statuses:     []int{http.StatusInternalServerError},
			wantAttempts: APIMaxRetries + 1,
			wantErr:      true,
			wantStatus:   http.StatusInternalServerError,
			wantMessage:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			ctx := SetupTestContext(t)
			var attempts atomic.Int32
			ctx.Mux.HandleFunc("GET /api/v1/catalog/shop", func(w http.ResponseWriter, r *http.Request) {
				n := int(attempts.Add(1)) - 1
				status := tt.statuses[len(tt.statuses)-1]
				if n < len(tt.statuses) {
					status = tt.statuses[n]
				}
				switch {
				case status == http.StatusOK:
					WriteJSON(w, []domain.ShopItem{{ID: "spin-pack", Price: 100}})
				case status >= http.StatusInternalServerError:
					WriteError(w, status, "boom")
				default:
					WriteError(w, status, "not enough money")
				}
			})

			// ACT
			items, err := ctx.APIClient.ListShop(context.Background())

			// ASSERT
			assert.Equal(t, tt.wantAttempts, attempts.Load())
			if !tt.wantErr {
				require.NoError(t, err)
				require.Len(t, items, 1)
				assert.Equal(t, "spin-pack", items[0].ID)
				return
			}
			require.Error(t, err)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestAPIClient_WritesAreNotReplayed(t *testing.T) {
	tests := []struct {
		name   string
		handle func(w http.ResponseWriter)
	}{
		// CASE 1: server error after the bet may have been applied
		{
			name: "5xx",
			handle: func(w http.ResponseWriter) {
				WriteError(w, http.StatusInternalServerError, "boom")
			},
		},
		// CASE 2: WORST CASE, the bet settles and the connection drops before the answer
		{
			name: "connection dropped after settling",
			handle: func(w http.ResponseWriter) {
				hj, ok := w.(http.Hijacker)
				if !ok {
					return
				}
				conn, _, err := hj.Hijack()
				if err == nil {
					_ = conn.Close()
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			ctx := SetupTestContext(t)
			var settlements atomic.Int32
			ctx.Mux.HandleFunc("POST /api/v1/games/roulette", func(w http.ResponseWriter, r *http.Request) {
				settlements.Add(1)
				tt.handle(w)
			})

			// ACT
			result, err := ctx.APIClient.PlayRoulette(context.Background(), testUserID, domain.BetRed, 25)

			// ASSERT
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, int32(1), settlements.Load())
		})
	}
}

func TestAPIClient_WriteRetriedWhenNeverConnected(t *testing.T) {
	ctx := SetupTestContext(t)
	down := httptest.NewServer(http.NotFoundHandler())
	ctx.APIClient.BaseURL = down.URL
	down.Close()

	_, err := ctx.APIClient.ClaimDaily(context.Background(), testUserID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.True(t, isDialError(err))
}

func TestAPIClient_ContextCancelledDuringBackoff(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.APIClient.retryDelay = APIRetryDelay

	reqCtx, cancel := context.WithCancel(context.Background())
	ctx.Mux.HandleFunc("GET /api/v1/catalog/shop", func(w http.ResponseWriter, r *http.Request) {
		cancel()
		WriteError(w, http.StatusBadGateway, "upstream")
	})

	_, err := ctx.APIClient.ListShop(reqCtx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAPIClient_RequestBodies(t *testing.T) {
	ctx := SetupTestContext(t)

	ctx.Mux.HandleFunc("POST /api/v1/accounts/user-1/spin", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["count"])
		WriteJSON(w, economy.SpinResult{Cost: 120, Currency: 80})
	})
	ctx.Mux.HandleFunc("POST /api/v1/games/roulette", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID  string             `json:"user_id"`
			BetType domain.RouletteBet `json:"bet_type"`
			Amount  int                `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, testUserID, body.UserID)
		assert.Equal(t, domain.BetOdd, body.BetType)
		assert.Equal(t, 25, body.Amount)
		WriteJSON(w, domain.RouletteResult{UserID: testUserID, BetType: domain.BetOdd, Amount: 25, Number: 7, Won: true, Delta: 50})
	})
	ctx.Mux.HandleFunc("POST /api/v1/accounts/user-1/roles/role-9/claim", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, domain.RoleClaim{UserID: testUserID, RoleID: "role-9", CategoryKey: "colors"})
	})

	spin, err := ctx.APIClient.Spin(context.Background(), testUserID, 3)
	require.NoError(t, err)
	assert.Equal(t, 120, spin.Cost)

	roulette, err := ctx.APIClient.PlayRoulette(context.Background(), testUserID, domain.BetOdd, 25)
	require.NoError(t, err)
	assert.True(t, roulette.Won)
	assert.Equal(t, 50, roulette.Delta)

	claim, err := ctx.APIClient.ClaimRole(context.Background(), testUserID, "role-9")
	require.NoError(t, err)
	assert.Equal(t, "colors", claim.CategoryKey)
}

func TestAPIClient_Healthz(t *testing.T) {
	ctx := SetupTestContext(t)

	assert.False(t, ctx.APIClient.Healthz(context.Background()))

	ctx.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, ctx.APIClient.Healthz(context.Background()))
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "API error: cooldown", (&APIError{StatusCode: 429, Message: "cooldown"}).Error())
	assert.Equal(t, "API returned status: 502", (&APIError{StatusCode: 502}).Error())
}
