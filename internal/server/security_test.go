package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-secret-key"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		apiKey         string
		expectedStatus int
	}{
		// CASE 1: BEST CASE
		{"valid key", "/api/v1/catalog/shop", testAPIKey, http.StatusOK},
		// CASE 2: missing key
		{"missing key", "/api/v1/catalog/shop", "", http.StatusUnauthorized},
		// CASE 3: wrong key
		{"wrong key", "/api/v1/catalog/shop", "nope", http.StatusUnauthorized},
		// CASE 4: key prefix must not match
		{"prefix of key", "/api/v1/catalog/shop", testAPIKey[:4], http.StatusUnauthorized},
		// CASE 5: public paths need no key
		{"healthz is public", "/healthz", "", http.StatusOK},
		{"readyz is public", "/readyz", "", http.StatusOK},
		{"metrics is public", "/metrics", "", http.StatusOK},
		{"swagger is public", "/swagger/index.html", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			limiter := NewRateLimiter(time.Minute, 100)
			h := AuthMiddleware(testAPIKey, nil, limiter)(okHandler())
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set(HeaderAPIKey, tt.apiKey)
			}
			rec := httptest.NewRecorder()

			// ACT
			h.ServeHTTP(rec, req)

			// ASSERT
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), ErrMsgUnauthorized)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 100)
	h := AuthMiddleware(testAPIKey, nil, limiter)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/shop", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Equal(t, 3, limiter.failedAuth["10.0.0.9"])
}

func TestRateLimiter_Allow(t *testing.T) {
	// ARRANGE
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(time.Minute, 2)
	limiter.now = func() time.Time { return now }
	limiter.windowStart = now

	// ACT / ASSERT
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.True(t, limiter.Allow("1.1.1.1"))
	assert.False(t, limiter.Allow("1.1.1.1"), "third request in window should be rejected")
	assert.True(t, limiter.Allow("2.2.2.2"), "other IPs have their own budget")

	// Window rolls over
	now = now.Add(time.Minute + time.Second)
	assert.True(t, limiter.Allow("1.1.1.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 1)
	h := RateLimitMiddleware(nil, limiter)(okHandler())

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), ErrMsgTooManyRequests)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		// CASE 1: BEST CASE
		{"remote addr only", "192.168.1.5:1234", "", nil, "192.168.1.5"},
		// CASE 2: untrusted proxy header is ignored
		{"spoofed forwarded header", "192.168.1.5:1234", "6.6.6.6", nil, "192.168.1.5"},
		// CASE 3: trusted proxy
		{"trusted proxy", "10.0.0.1:80", "203.0.113.7", []string{"10.0.0.1"}, "203.0.113.7"},
		// CASE 4: rightmost hop wins
		{"forwarded chain", "10.0.0.1:80", "6.6.6.6, 203.0.113.7", []string{"10.0.0.1"}, "203.0.113.7"},
		// CASE 5: trusted proxy without header
		{"trusted proxy no header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		// CASE 6: malformed remote addr
		{"no port", "192.168.1.5", "", nil, "192.168.1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(strings.Repeat("x", 64)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Error(t, readErr)
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
