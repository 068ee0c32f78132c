package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/osse101/SpinEconomy_Go/internal/domain"
	"github.com/osse101/SpinEconomy_Go/internal/handler"
)

type stubShop struct {
	items []domain.ShopItem
}

func (s stubShop) List() []domain.ShopItem { return s.items }

type stubHealth struct {
	err error
}

func (s stubHealth) Ping(context.Context) error { return s.err }

func newTestRouter(health stubHealth) http.Handler {
	return NewRouter(
		Config{APIKey: testAPIKey},
		Services{
			Shop:   stubShop{items: []domain.ShopItem{{ID: "spin_pack", Name: "Spin Pack", Price: 40}}},
			Health: health,
		},
	)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		health         stubHealth
		expectedStatus int
	}{
		// CASE 1: BEST CASE
		{"liveness", "/healthz", stubHealth{}, http.StatusOK},
		{"readiness with reachable store", "/readyz", stubHealth{}, http.StatusOK},
		// CASE 2: store down
		{"readiness with unreachable store", "/readyz", stubHealth{err: errors.New("conn refused")}, http.StatusServiceUnavailable},
		// CASE 3: scrape endpoint
		{"metrics", "/metrics", stubHealth{}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			router := newTestRouter(tt.health)
			rec := httptest.NewRecorder()

			// ACT
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			// ASSERT
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
			assert.Empty(t, rec.Header().Get(HeaderRequestID), "probe paths are not request-logged")
		})
	}
}

func TestRouter_ProtectedEndpoints(t *testing.T) {
	router := newTestRouter(stubHealth{})

	t.Run("rejects missing key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/shop", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("serves shop with key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/shop", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.ShopResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "spin_pack", resp.Items[0].ID)
		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("echoes caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/shop", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_RateLimit(t *testing.T) {
	router := NewRouter(Config{APIKey: testAPIKey, MaxRequestsPerIP: 1}, Services{Shop: stubShop{}})

	var codes []int
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/shop", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	// ARRANGE
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/shop", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set(HeaderAuthorization, "Bearer hunter2")

	// ACT
	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	// ASSERT
	out := buf.String()
	assert.Contains(t, out, LogMsgRequestCompleted)
	assert.Contains(t, out, RedactedValue)
	assert.NotContains(t, out, testAPIKey)
	assert.NotContains(t, out, "hunter2")
}

func TestRouter_APIRoutesAreDocumented(t *testing.T) {
	// ARRANGE
	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes, ok := newTestRouter(stubHealth{}).(chi.Routes)
	require.True(t, ok)

	// ACT
	var apiRoutes int
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if !strings.HasPrefix(route, doc.BasePath+"/") {
			return nil
		}
		apiRoutes++
		path := strings.TrimSuffix(strings.TrimPrefix(route, doc.BasePath), "/")

		// ASSERT
		ops, found := doc.Paths[path]
		if assert.True(t, found, "route %s missing from the API doc", path) {
			assert.Contains(t, ops, strings.ToLower(method), "route %s %s missing from the API doc", method, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 16, apiRoutes)
}
