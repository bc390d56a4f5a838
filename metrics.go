package suncalc

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/subtlepseudonym/suncalc/solar"
)

// Metrics tracks solver behaviour across observations
type Metrics struct {
	Iterations prometheus.Histogram
	Failures   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "suncalc",
			Name:      "kepler_iterations",
			Help:      "Newton-Raphson iterations taken to solve Kepler's equation.",
			Buckets:   prometheus.LinearBuckets(0, 1, 10),
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "suncalc",
			Name:      "observation_failures_total",
			Help:      "Observations that returned an error, by reason.",
		}, []string{"reason"}),
	}

	if reg != nil {
		reg.MustRegister(m.Iterations, m.Failures)
	}
	return m
}

// Record updates m with the outcome of one observation. A nil m is a
// no-op.
func (m *Metrics) Record(obs Observation, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Failures.WithLabelValues(failureReason(err)).Inc()
		return
	}
	m.Iterations.Observe(float64(obs.Kepler.Iterations))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, solar.ErrUnknownMonth):
		return "unknown_month"
	case errors.Is(err, solar.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, solar.ErrYearOutOfRange):
		return "year_out_of_range"
	case errors.Is(err, solar.ErrInvalidEccentricity):
		return "invalid_eccentricity"
	case errors.Is(err, solar.ErrKeplerNonConvergence):
		return "non_convergence"
	default:
		return "other"
	}
}
