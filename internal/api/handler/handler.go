// Package handler provides HTTP handlers for all API endpoints.
// Roster and game log reads come straight from the immutable store and are
// cached with ETags; projections and forecasts are recomputed per request.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/futurehoops/internal/api/respond"
	"github.com/albapepper/futurehoops/internal/cache"
	"github.com/albapepper/futurehoops/internal/config"
	"github.com/albapepper/futurehoops/internal/gamelog"
	"github.com/albapepper/futurehoops/internal/projection"
)

// Version is reported by the root endpoint.
const Version = "1.0.0"

// maxQueryWindow caps window and horizon query parameters.
const maxQueryWindow = 82

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store  *gamelog.Store
	engine *projection.Engine
	cache  *cache.Cache
	cfg    *config.Config
}

// New creates a Handler with shared dependencies.
func New(store *gamelog.Store, engine *projection.Engine, c *cache.Cache, cfg *config.Config) *Handler {
	return &Handler{
		store:  store,
		engine: engine,
		cache:  c,
		cfg:    cfg,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and the data source in use.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]interface{}{
		"name":        "Future Hoops API",
		"version":     Version,
		"status":      "running",
		"docs":        "/docs",
		"data_source": h.cfg.DataSource,
		"players":     len(h.store.Players()),
		"game_logs":   h.store.Len(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys, hits).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.Object(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// playerID parses the {playerID} path parameter, writing a 400 on failure.
func playerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "INVALID_ID", "Player ID must be an integer")
		return 0, false
	}
	return id, true
}

// intQuery parses an optional positive integer query parameter. Absent
// means 0, which the engine replaces with its configured default.
func intQuery(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxQueryWindow {
		respond.Error(w, http.StatusBadRequest, "INVALID_"+strings.ToUpper(name),
			fmt.Sprintf("%s must be an integer between 1 and %d", name, maxQueryWindow))
		return 0, false
	}
	return n, true
}

// writeEngineError maps store and engine errors to HTTP responses.
func writeEngineError(w http.ResponseWriter, id int, err error) {
	switch {
	case errors.Is(err, gamelog.ErrUnknownPlayer):
		respond.Error(w, http.StatusNotFound, "UNKNOWN_PLAYER", fmt.Sprintf("Player %d not found", id))
	case errors.Is(err, projection.ErrInsufficientData):
		respond.Error(w, http.StatusUnprocessableEntity, "INSUFFICIENT_DATA",
			fmt.Sprintf("No game data available for player %d", id))
	default:
		respond.ErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Projection failed", err.Error())
	}
}
