package solar

import (
	"math"
)

// EquationOfCenter is the angular difference between the position of
// the actual sun (on an elliptical orbit) and the mean sun (on a
// circular one), in radians within [-π, π).
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfCenter(trueAnomaly, meanAnomaly float64) float64 {
	d := NormalizeRadians(trueAnomaly - meanAnomaly)
	if d >= math.Pi {
		d -= twoPi
	}
	return d
}

// ApproximateEquationOfCenter is the first order series for the
// equation of center, 2e*sin(M), in radians. It is accurate to about
// e² and is useful as a check on the Kepler solution.
func ApproximateEquationOfCenter(meanAnomaly, eccentricity float64) float64 {
	return 2 * eccentricity * math.Sin(meanAnomaly)
}

// EclipticLongitude calculates the sun's geocentric ecliptic longitude
// in degrees within [0, 360), from its true anomaly in radians and the
// longitude at perigee in degrees
func EclipticLongitude(trueAnomaly, longitudeAtPerigee float64) float64 {
	return NormalizeDegrees(Degrees(trueAnomaly) + longitudeAtPerigee)
}
