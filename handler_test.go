package suncalc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/suncalc/solar"
)

func newTestRouter(a *Almanac) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", HealthHandler)
	r.Get("/observation", a.ObservationHandler)
	r.Get("/elements/{epoch}", a.ElementsHandler)
	return r
}

func newTestAlmanac(now time.Time) *Almanac {
	a := NewAlmanac(1990, solar.Solver{}, zerolog.Nop())
	a.now = func() time.Time { return now }
	a.Metrics = NewMetrics(nil)
	return a
}

func TestObservationHandler(t *testing.T) {
	a := newTestAlmanac(time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC))
	router := newTestRouter(a)

	t.Run("explicit date", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/observation?day=27&month=Jul&year=1988&epoch=1990", nil)
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var res observationResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, -522.0, res.DaysSinceEpoch)
		assert.InDelta(t, 124.1877, res.EclipticLongitude, 1e-4)
		assert.Nil(t, res.RiseSet)
	})

	t.Run("defaults to now", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/observation", nil)
		router.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var res observationResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.Equal(t, solar.CalendarDate{Day: 21.5, Month: "Jun", Year: 2024}, res.Date)
		assert.Equal(t, 1990, res.Epoch)
	})

	t.Run("bad params", func(t *testing.T) {
		for _, query := range []string{
			"day=x", "year=1988.5", "epoch=abc", "month=July", "day=-1",
			"day=NaN", "day=Inf", "day=-Inf",
			"year=9000000000000000000", "epoch=-9223372036854775808",
		} {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/observation?"+query, nil)
			router.ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code, query)

			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		}
	})
}

func TestObservationHandlerNonConvergence(t *testing.T) {
	a := newTestAlmanac(time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC))
	a.Solver = solar.Solver{Tolerance: 1e-300, MaxIterations: 1}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/observation?day=27&month=Jul&year=1988", nil)
	newTestRouter(a).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "did not converge")
}

func TestObservationHandlerRiseSet(t *testing.T) {
	a := newTestAlmanac(time.Date(2024, time.June, 21, 12, 0, 0, 0, time.UTC))
	a.Location = &Location{Latitude: 51.5, Longitude: -0.13}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/observation", nil)
	newTestRouter(a).ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var res observationResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.NotNil(t, res.RiseSet)
	assert.True(t, res.RiseSet.Sunrise.Before(res.RiseSet.Sunset))
}

func TestElementsHandler(t *testing.T) {
	router := newTestRouter(newTestAlmanac(time.Now()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/elements/1990", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var el solar.OrbitalElements
	require.NoError(t, json.NewDecoder(w.Body).Decode(&el))
	assert.Equal(t, solar.ElementsAt(1990), el)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/elements/nineteen", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/elements/9000000000000000000", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "year out of range")
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
