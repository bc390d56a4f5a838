package suncalc

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/subtlepseudonym/suncalc/solar"
)

// Almanac observes the Sun against a fixed epoch and logs the result
// on a schedule. When a Location is set, the reference sunrise and
// sunset for that day are logged alongside.
type Almanac struct {
	Epoch    int
	Solver   solar.Solver
	Location *Location
	Metrics  *Metrics

	log zerolog.Logger
	now func() time.Time
}

func NewAlmanac(epoch int, solver solar.Solver, logger zerolog.Logger) *Almanac {
	return &Almanac{
		Epoch:  epoch,
		Solver: solver,
		log:    logger,
		now:    time.Now,
	}
}

// Observe runs Observe with the Almanac's epoch and solver and records
// the outcome in its metrics
func (a *Almanac) Observe(date solar.CalendarDate) (Observation, error) {
	obs, err := Observe(date, a.Epoch, a.Solver)
	a.Metrics.Record(obs, err)
	return obs, err
}

// Run logs the observation for the current time
//
// This implements robfig/cron.Job
func (a *Almanac) Run() {
	now := a.clock()

	obs, err := a.Observe(solar.DateFromTime(now))
	if err != nil {
		a.log.Error().Err(err).Time("time", now).Msg("observe")
		return
	}

	event := a.log.Info().
		Str("date", obs.Date.String()).
		Int("epoch", obs.Epoch).
		Float64("julian_date", obs.JulianDate).
		Float64("days_since_epoch", obs.DaysSinceEpoch).
		Float64("mean_anomaly", obs.MeanAnomaly).
		Float64("eccentric_anomaly", obs.Kepler.EccentricAnomaly).
		Int("iterations", obs.Kepler.Iterations).
		Float64("ecliptic_longitude", obs.EclipticLongitude)

	if a.Location != nil {
		rs := GetRiseSet(*a.Location, now)
		if rs.Polar() {
			event = event.Bool("polar", true)
		} else {
			event = event.Time("sunrise", rs.Sunrise).Time("sunset", rs.Sunset)
		}
	}

	event.Msg("observation")
}

func (a *Almanac) clock() time.Time {
	if a.now == nil {
		return time.Now()
	}
	return a.now()
}

// Next returns the following midnight UTC
//
// This implements robfig/cron.Schedule
func (a *Almanac) Next(now time.Time) time.Time {
	u := now.UTC()
	return time.Date(u.Year(), u.Month(), u.Day()+1, 0, 0, 0, 0, time.UTC)
}
