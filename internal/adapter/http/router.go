package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/matchedbet/internal/adapter/http/handler"
	"github.com/iho/matchedbet/internal/adapter/http/middleware"
	"github.com/iho/matchedbet/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	BookmakerHandler   *handler.BookmakerHandler
	OfferHandler       *handler.OfferHandler
	MatchHandler       *handler.MatchHandler
	BetHandler         *handler.BetHandler
	AccumulatorHandler *handler.AccumulatorHandler
	BalanceHandler     *handler.BalanceHandler
	SettlementHandler  *handler.SettlementHandler
	DashboardHandler   *handler.DashboardHandler
	HealthHandler      *handler.HealthHandler

	Logger           zerolog.Logger
	Metrics          middleware.HTTPObserver
	MetricsHandler   http.Handler
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Get("/", cfg.DashboardHandler.Index)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.Route("/bookmakers", func(r chi.Router) {
			r.Post("/", cfg.BookmakerHandler.Create)
			r.Get("/", cfg.BookmakerHandler.List)
			r.Get("/{id}", cfg.BookmakerHandler.Get)
			r.Put("/{id}", cfg.BookmakerHandler.Update)
			r.Delete("/{id}", cfg.BookmakerHandler.Delete)
			r.Get("/{id}/tree", cfg.BookmakerHandler.Tree)
			r.Get("/{id}/offers", cfg.OfferHandler.ListByBookmaker)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Post("/", cfg.OfferHandler.Create)
			r.Get("/{id}", cfg.OfferHandler.Get)
			r.Put("/{id}", cfg.OfferHandler.Update)
			r.Delete("/{id}", cfg.OfferHandler.Delete)
			r.Get("/{id}/bets", cfg.BetHandler.ListByOffer)
			r.Get("/{id}/accumulators", cfg.AccumulatorHandler.ListByOffer)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", cfg.MatchHandler.Create)
			r.Get("/", cfg.MatchHandler.List)
			r.Get("/{id}", cfg.MatchHandler.Get)
			r.Put("/{id}", cfg.MatchHandler.Update)
			r.Put("/{id}/outcome", cfg.MatchHandler.SetOutcome)
		})

		r.Route("/bets", func(r chi.Router) {
			r.Post("/", cfg.BetHandler.Create)
			r.Get("/{id}", cfg.BetHandler.Get)
			r.Put("/{id}", cfg.BetHandler.Update)
			r.Post("/{id}/settle", cfg.SettlementHandler.SettleBet)
		})

		r.Route("/accumulators", func(r chi.Router) {
			r.Post("/", cfg.AccumulatorHandler.Create)
			r.Get("/{id}", cfg.AccumulatorHandler.Get)
			r.Post("/{id}/settle", cfg.SettlementHandler.SettleAccumulator)
		})

		r.Route("/balances", func(r chi.Router) {
			r.Get("/", cfg.BalanceHandler.Get)
			r.Post("/increments", cfg.BalanceHandler.Increment)
		})
	})

	r.NotFound(handler.RedirectHome)

	return r
}
