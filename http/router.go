package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"miles-advisor/repository"
	"miles-advisor/service"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Suite    *service.Suite
	Cache    repository.CacheRepository
	CacheTTL time.Duration
	Limiter  *RateLimiter
	Logger   zerolog.Logger
	Version  string
}

// NewRouter creates and configures a chi router with all middleware and routes.
// Cache and Limiter are optional.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(RequestID)
	r.Use(AccessLog(deps.Logger.With().Str("component", "http").Logger()))
	r.Use(Recovery(deps.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found", GetRequestID(r.Context()))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed", GetRequestID(r.Context()))
	})

	var cache *service.ResultCache
	if deps.Cache != nil {
		cache = service.NewResultCache(deps.Cache, deps.CacheTTL, deps.Suite.Valuation, deps.Logger)
	}

	info := NewInfoHandler(deps.Cache, deps.Suite.Valuation, deps.Version)
	eval := NewEvaluationHandler(deps.Suite, cache, deps.Logger)

	r.Get("/health", info.Health)

	r.Route("/v1", func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(RateLimitMiddleware(deps.Limiter))
		}

		r.Get("/valuation", info.Valuation)

		r.Post("/accelerator", eval.Accelerator)
		r.Post("/upgrade", eval.Upgrade)
		r.Post("/ticket-purchase", eval.TicketPurchase)
		r.Post("/buy-miles", eval.BuyMiles)
		r.Post("/relative-upgrade", eval.RelativeUpgrade)
		r.Post("/status-progress", eval.StatusProgress)
		r.Post("/personal-value", eval.PersonalValue)
		r.Post("/status-run", eval.StatusRun)
	})

	return r
}
