package solar

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMonth is returned for a month name that is not one of
	// the twelve three letter abbreviations (Jan, Feb, ...)
	ErrUnknownMonth = errors.New("unknown month")

	// ErrInvalidDate is returned when a CalendarDate's day is negative
	// or not finite
	ErrInvalidDate = errors.New("invalid date")

	// ErrYearOutOfRange is returned for a year or epoch outside
	// [MinYear, MaxYear]
	ErrYearOutOfRange = errors.New("year out of range")

	// ErrInvalidEccentricity is returned when the eccentricity supplied to
	// the Kepler solver is outside [0, 1)
	ErrInvalidEccentricity = errors.New("eccentricity must be in [0, 1)")

	// ErrKeplerNonConvergence is returned when the Kepler solver exhausts
	// its iteration limit. The returned error is a *NonConvergenceError.
	ErrKeplerNonConvergence = errors.New("kepler equation did not converge")
)

// NonConvergenceError carries the solver state at the point it gave up
type NonConvergenceError struct {
	Estimate   float64 // last eccentric anomaly estimate, radians
	Iterations int
	Residual   float64 // |E - e*sin(E) - M| at Estimate
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations: estimate %g, residual %g", ErrKeplerNonConvergence, e.Iterations, e.Estimate, e.Residual)
}

func (e *NonConvergenceError) Unwrap() error {
	return ErrKeplerNonConvergence
}
