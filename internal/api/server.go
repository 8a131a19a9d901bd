package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/futurehoops/internal/api/handler"
	"github.com/albapepper/futurehoops/internal/cache"
	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/projection"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(store *gamelog.Store, engine *projection.Engine, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(store, engine, appCache, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", h.GetPlayer)
				r.Get("/gamelogs", h.GetGameLogs)
				r.Get("/averages", h.GetAverages)
				r.Get("/projection", h.GetProjection)
				r.Get("/forecast", h.GetForecast)
			})
		})

		r.Get("/gamelogs/snapshot", h.GetSnapshot)
	})

	return r
}
