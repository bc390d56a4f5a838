package suncalc

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/suncalc/solar"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	obs, err := Observe(solar.CalendarDate{Day: 27, Month: "Jul", Year: 1988}, 1990, solar.Solver{})
	require.NoError(t, err)
	m.Record(obs, nil)

	_, err = Observe(solar.CalendarDate{Day: 27, Month: "Jly", Year: 1988}, 1990, solar.Solver{})
	m.Record(Observation{}, err)
	m.Record(Observation{}, err)
	m.Record(Observation{}, fmt.Errorf("solve kepler: %w", &solar.NonConvergenceError{Iterations: 50}))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Failures.WithLabelValues("unknown_month")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Failures.WithLabelValues("non_convergence")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Iterations))

	n, err := testutil.GatherAndCount(reg, "suncalc_kepler_iterations", "suncalc_observation_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Record(Observation{}, nil) })
}

func TestFailureReason(t *testing.T) {
	assert.Equal(t, "invalid_date", failureReason(solar.ErrInvalidDate))
	assert.Equal(t, "invalid_eccentricity", failureReason(solar.ErrInvalidEccentricity))
	assert.Equal(t, "year_out_of_range", failureReason(fmt.Errorf("epoch: %w", solar.ErrYearOutOfRange)))
	assert.Equal(t, "other", failureReason(fmt.Errorf("boom")))
}
