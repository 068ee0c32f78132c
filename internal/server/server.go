package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SpinEconomy_Go/internal/blackjack"
	_ "github.com/osse101/SpinEconomy_Go/internal/docs" // registers the swagger spec
	"github.com/osse101/SpinEconomy_Go/internal/economy"
	"github.com/osse101/SpinEconomy_Go/internal/handler"
	"github.com/osse101/SpinEconomy_Go/internal/logger"
	"github.com/osse101/SpinEconomy_Go/internal/metrics"
	"github.com/osse101/SpinEconomy_Go/internal/repository"
	"github.com/osse101/SpinEconomy_Go/internal/roulette"
)

// Config holds the listener and security settings
type Config struct {
	Host           string
	Port           int
	APIKey         string
	TrustedProxies []string

	// Zero values fall back to DefaultRateWindow and DefaultMaxRequestsPerIP
	RateWindow       time.Duration
	MaxRequestsPerIP int
}

// Services holds everything the routes dispatch to. Health may be nil.
type Services struct {
	Economy   economy.Service
	Blackjack blackjack.Service
	Roulette  roulette.Service
	Shop      handler.ShopLister
	Admin     handler.CatalogAdmin
	History   handler.HistoryReader
	Health    repository.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
//
// @title SpinEconomy API
// @version 1.0
// @description Currency, spins, shop and casino games for a chat community.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func NewRouter(cfg Config, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	window := cfg.RateWindow
	if window <= 0 {
		window = DefaultRateWindow
	}
	maxRequests := cfg.MaxRequestsPerIP
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequestsPerIP
	}
	limiter := NewRateLimiter(window, maxRequests)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, limiter))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(DefaultMaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Health))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	economyHandler := handler.NewEconomyHandler(svc.Economy)
	catalogHandler := handler.NewCatalogHandler(svc.Shop, svc.Economy, svc.Admin)
	gamesHandler := handler.NewGamesHandler(svc.Blackjack, svc.Roulette)
	historyHandler := handler.NewHistoryHandler(svc.History)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts/{userID}", func(r chi.Router) {
			r.Get("/", economyHandler.HandleGetProfile)
			r.Get("/inventory", economyHandler.HandleGetInventory)
			r.Get("/history", historyHandler.HandleGetHistory)
			r.Post("/activity", economyHandler.HandleGrantActivity)
			r.Post("/daily", economyHandler.HandleClaimDaily)
			r.Get("/daily", economyHandler.HandleDailyStatus)
			r.Post("/purchase", economyHandler.HandlePurchase)
			r.Post("/spin", economyHandler.HandleSpin)
			r.Post("/roles/{roleID}/claim", economyHandler.HandleClaimRole)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/rewards", catalogHandler.HandleGetRewardPreview)
			r.Get("/shop", catalogHandler.HandleListShop)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/catalog/items", catalogHandler.HandleAddCatalogItem)
		})

		r.Route("/games", func(r chi.Router) {
			r.Post("/blackjack", gamesHandler.HandleStartBlackjack)
			r.Post("/blackjack/{gameID}/hit", gamesHandler.HandleBlackjackHit)
			r.Post("/blackjack/{gameID}/stand", gamesHandler.HandleBlackjackStand)
			r.Post("/roulette", gamesHandler.HandlePlayRoulette)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

// loggingMiddleware stamps a request id on the context and the response and
// logs start and completion. Probe and scrape paths are not logged.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
