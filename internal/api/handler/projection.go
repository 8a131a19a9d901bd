package handler

import (
	"net/http"

	"github.com/albapepper/futurehoops/internal/api/respond"
)

// GetProjection returns a freshly computed current-game projection.
// @Summary Get current-game projection
// @Description Jittered trailing-window means for points, rebounds, assists, steals and blocks, plus a display confidence score. Recomputed on every request.
// @Tags projections
// @Produce json
// @Param playerID path int true "Player ID"
// @Param window query int false "Trailing games (default 5)"
// @Success 200 {object} projection.Projection
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Router /players/{playerID}/projection [get]
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	window, ok := intQuery(w, r, "window")
	if !ok {
		return
	}

	p, err := h.engine.Project(id, window)
	if err != nil {
		writeEngineError(w, id, err)
		return
	}
	respond.Fresh(w, p)
}

// GetForecast returns the historical series plus projected future games.
// @Summary Get upcoming games forecast
// @Description Historical points/rebounds/assists with a short forward projection on consecutive days after the last game. Recomputed on every request.
// @Tags projections
// @Produce json
// @Param playerID path int true "Player ID"
// @Param horizon query int false "Future games (default 3)"
// @Success 200 {object} projection.Forecast
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Router /players/{playerID}/forecast [get]
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	horizon, ok := intQuery(w, r, "horizon")
	if !ok {
		return
	}

	fc, err := h.engine.Forecast(id, horizon)
	if err != nil {
		writeEngineError(w, id, err)
		return
	}
	respond.Fresh(w, fc)
}

// GetAverages returns unperturbed trailing-window averages.
// @Summary Get recent averages
// @Description Mean points, rebounds, assists, steals, blocks and field-goal percentage over the last games.
// @Tags projections
// @Produce json
// @Param playerID path int true "Player ID"
// @Param window query int false "Trailing games (default 5)"
// @Success 200 {object} projection.Averages
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Router /players/{playerID}/averages [get]
func (h *Handler) GetAverages(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	window, ok := intQuery(w, r, "window")
	if !ok {
		return
	}

	a, err := h.engine.Averages(id, window)
	if err != nil {
		writeEngineError(w, id, err)
		return
	}
	respond.Fresh(w, a)
}
