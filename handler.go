package suncalc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/subtlepseudonym/suncalc/solar"
)

type observationResponse struct {
	Observation
	RiseSet *RiseSet `json:"rise_set,omitempty"`
}

// ObservationHandler serves the observation for the date given by the
// day, month and year query parameters, defaulting to now. The epoch
// parameter overrides the Almanac's epoch.
func (a *Almanac) ObservationHandler(w http.ResponseWriter, r *http.Request) {
	now := a.clock()
	date := solar.DateFromTime(now)
	epoch := a.Epoch

	q := r.URL.Query()
	if q.Has("day") {
		day, err := strconv.ParseFloat(q.Get("day"), 64)
		if err != nil {
			a.writeError(w, http.StatusBadRequest, fmt.Errorf("parse day param %q: %w", q.Get("day"), err))
			return
		}
		date.Day = day
	}
	if q.Has("month") {
		date.Month = q.Get("month")
	}
	if q.Has("year") {
		year, err := strconv.Atoi(q.Get("year"))
		if err != nil {
			a.writeError(w, http.StatusBadRequest, fmt.Errorf("parse year param %q: %w", q.Get("year"), err))
			return
		}
		date.Year = year
	}
	if q.Has("epoch") {
		e, err := strconv.Atoi(q.Get("epoch"))
		if err != nil {
			a.writeError(w, http.StatusBadRequest, fmt.Errorf("parse epoch param %q: %w", q.Get("epoch"), err))
			return
		}
		epoch = e
	}

	obs, err := Observe(date, epoch, a.Solver)
	a.Metrics.Record(obs, err)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, solar.ErrKeplerNonConvergence) {
			status = http.StatusUnprocessableEntity
		}
		a.writeError(w, status, err)
		return
	}

	res := observationResponse{Observation: obs}
	if a.Location != nil && !q.Has("day") && !q.Has("month") && !q.Has("year") {
		rs := GetRiseSet(*a.Location, now)
		res.RiseSet = &rs
	}

	a.writeJSON(w, http.StatusOK, res)
}

// ElementsHandler serves the orbital elements for the epoch in the
// request path
func (a *Almanac) ElementsHandler(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "epoch")
	epoch, err := strconv.Atoi(param)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, fmt.Errorf("parse epoch %q: %w", param, err))
		return
	}
	if err := solar.ValidateYear(epoch); err != nil {
		a.writeError(w, http.StatusBadRequest, err)
		return
	}

	a.writeJSON(w, http.StatusOK, solar.ElementsAt(epoch))
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status": "ok"}`))
}

func (a *Almanac) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error().Err(err).Msg("encode response")
	}
}

func (a *Almanac) writeError(w http.ResponseWriter, status int, err error) {
	a.log.Warn().Err(err).Int("status", status).Msg("request failed")
	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}
