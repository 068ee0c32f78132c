package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/SpinEconomy_Go/internal/logger"
)

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware validates the X-API-Key header on everything except public paths
func AuthMiddleware(apiKey string, trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison prevents timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				limiter.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				writeJSONError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiter counts requests and failed logins per IP over a fixed window
type RateLimiter struct {
	mu            sync.Mutex
	window        time.Duration
	maxRequests   int
	failedAlertAt int
	failedAuth    map[string]int
	requests      map[string]int
	windowStart   time.Time
	now           func() time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per IP per window
func NewRateLimiter(window time.Duration, maxRequests int) *RateLimiter {
	return &RateLimiter{
		window:        window,
		maxRequests:   maxRequests,
		failedAlertAt: DefaultFailedAuthAlertAt,
		failedAuth:    make(map[string]int),
		requests:      make(map[string]int),
		windowStart:   time.Now(),
		now:           time.Now,
	}
}

// RecordFailedAuth records a failed authentication attempt
func (l *RateLimiter) RecordFailedAuth(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollWindow()
	l.failedAuth[ip]++

	if l.failedAuth[ip] >= l.failedAlertAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", l.failedAuth[ip])
	}
}

// Allow records a request and reports whether ip is still under its limit
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollWindow()
	l.requests[ip]++

	if l.requests[ip] > l.maxRequests {
		if l.requests[ip]%HighRateLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", l.requests[ip])
		}
		return false
	}
	return true
}

// rollWindow starts a new counting window once the current one has passed.
// Caller must hold the mutex.
func (l *RateLimiter) rollWindow() {
	now := l.now()
	if now.Sub(l.windowStart) > l.window {
		l.requests = make(map[string]int)
		l.failedAuth = make(map[string]int)
		l.windowStart = now
	}
}

// RateLimitMiddleware rejects clients over their per-window request budget
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(extractIP(r, trustedProxies)) {
				writeJSONError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)

			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
}
