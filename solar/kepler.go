package solar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// DefaultTolerance is the default convergence tolerance of the
	// Kepler solver, in radians
	DefaultTolerance = 1e-9

	// DefaultMaxIterations is the default iteration limit of the
	// Kepler solver
	DefaultMaxIterations = 50
)

// Solver solves Kepler's equation, M = E - e*sin(E), for the eccentric
// anomaly E by Newton-Raphson iteration starting from E = M. The zero
// value uses DefaultTolerance and DefaultMaxIterations.
//
// https://en.wikipedia.org/wiki/Kepler%27s_equation#Numerical_approximation_of_inverse_problem
type Solver struct {
	// Tolerance is the largest step between successive estimates
	// that is accepted as converged, in radians
	Tolerance float64 `json:"tolerance"`

	MaxIterations int `json:"max_iterations"`
}

// Solution is a converged eccentric anomaly
type Solution struct {
	EccentricAnomaly float64 `json:"eccentric_anomaly"` // radians
	Iterations       int     `json:"iterations"`
	Residual         float64 `json:"residual"`
}

// SolveKepler solves Kepler's equation with the default Solver
func SolveKepler(meanAnomaly, eccentricity float64) (float64, error) {
	sol, err := Solver{}.Solve(meanAnomaly, eccentricity)
	if err != nil {
		return 0, err
	}
	return sol.EccentricAnomaly, nil
}

// Solve returns the eccentric anomaly for meanAnomaly (radians) on an
// orbit of the given eccentricity.
//
// Eccentricity outside [0, 1) returns ErrInvalidEccentricity. Failing
// to converge within MaxIterations returns a *NonConvergenceError; an
// unconverged estimate is never returned as a Solution.
func (s Solver) Solve(meanAnomaly, eccentricity float64) (Solution, error) {
	if !(eccentricity >= 0 && eccentricity < 1) {
		return Solution{}, fmt.Errorf("%w: got %g", ErrInvalidEccentricity, eccentricity)
	}

	// circular orbit, E = M exactly
	if eccentricity == 0 {
		return Solution{EccentricAnomaly: meanAnomaly}, nil
	}

	tolerance := s.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	maxIterations := s.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	e := meanAnomaly
	for i := 1; i <= maxIterations; i++ {
		next := e - keplerResidual(e, eccentricity, meanAnomaly)/(1-eccentricity*math.Cos(e))
		if scalar.EqualWithinAbs(next, e, tolerance) {
			return Solution{
				EccentricAnomaly: next,
				Iterations:       i,
				Residual:         math.Abs(keplerResidual(next, eccentricity, meanAnomaly)),
			}, nil
		}
		e = next
	}

	return Solution{}, &NonConvergenceError{
		Estimate:   e,
		Iterations: maxIterations,
		Residual:   math.Abs(keplerResidual(e, eccentricity, meanAnomaly)),
	}
}

func keplerResidual(e, eccentricity, meanAnomaly float64) float64 {
	return e - eccentricity*math.Sin(e) - meanAnomaly
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly, both
// in radians. The result is within [0, 2π).
func TrueAnomaly(eccentricAnomaly, eccentricity float64) float64 {
	if eccentricity == 0 {
		return NormalizeRadians(eccentricAnomaly)
	}

	sinE, cosE := math.Sincos(eccentricAnomaly)
	y := math.Sqrt(1-eccentricity*eccentricity) * sinE
	x := cosE - eccentricity

	return NormalizeRadians(math.Atan2(y, x))
}
