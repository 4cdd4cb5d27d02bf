package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/adapter/http/middleware"
	"github.com/iho/gowallet/internal/infrastructure/auth"
	"github.com/iho/gowallet/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	UserHandler     *handler.UserHandler
	WalletHandler   *handler.WalletHandler
	EntryHandler    *handler.EntryHandler
	TransferHandler *handler.TransferHandler
	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler

	Logger           zerolog.Logger
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration

	// JWTManager is optional; without it the API is open.
	JWTManager *auth.JWTManager

	// RateLimit is requests per second per client IP; zero disables limiting.
	RateLimit      float64
	RateLimitBurst int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst).Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	if cfg.AuthHandler != nil {
		r.Post("/api/v1/auth/login", cfg.AuthHandler.Login)
	}

	// Role gates only apply when auth is on; an open API skips them.
	identity := func(next http.Handler) http.Handler { return next }
	requireMutate, requireUserAdmin := identity, identity
	if cfg.JWTManager != nil {
		requireMutate = middleware.RequireMutate
		requireUserAdmin = middleware.RequireUserAdmin
	}

	r.Route("/api/v1/users", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Use(middleware.Auth(cfg.JWTManager))
		}

		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.With(requireUserAdmin).Post("/", cfg.UserHandler.Create)
		r.Get("/", cfg.UserHandler.List)
		r.Get("/{userID}", cfg.UserHandler.Get)
		r.With(requireUserAdmin).Delete("/{userID}", cfg.UserHandler.Delete)

		r.Route("/{userID}/wallets", func(r chi.Router) {
			r.With(requireMutate).Post("/", cfg.WalletHandler.Create)
			r.Get("/", cfg.WalletHandler.List)
			r.Get("/{walletID}", cfg.WalletHandler.Get)

			r.With(requireMutate).Post("/{walletID}/deposit", cfg.EntryHandler.Deposit)
			r.With(requireMutate).Post("/{walletID}/withdraw", cfg.EntryHandler.Withdraw)
			r.With(requireMutate).Post("/{walletID}/transfer", cfg.TransferHandler.Create)

			r.Get("/{walletID}/entries", cfg.EntryHandler.List)
			r.Get("/{walletID}/entries/summary", cfg.EntryHandler.Summary)
			r.Get("/{walletID}/entries/export", cfg.EntryHandler.Export)
		})
	})

	return r
}
