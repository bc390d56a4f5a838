package solar

import (
	"math"
)

const (
	// TropicalYear is the length of the tropical year in days
	TropicalYear = 365.242191

	degreesPerTurn = 360.0
	twoPi          = 2 * math.Pi
)

// MeanSolarAnomaly calculates the Sun's mean anomaly, in radians within
// [0, 2π), daysSinceEpoch days after the start of epoch
func MeanSolarAnomaly(epoch int, daysSinceEpoch float64) float64 {
	n := NormalizeDegrees(degreesPerTurn / TropicalYear * daysSinceEpoch)
	m := NormalizeDegrees(n + MeanEclipticLongitude(epoch) - LongitudeAtPerigee(epoch))
	return NormalizeRadians(Radians(m))
}

// NormalizeDegrees reduces an angle into [0, 360). Non-finite values are
// returned unchanged.
func NormalizeDegrees(deg float64) float64 {
	return normalize(deg, degreesPerTurn)
}

// NormalizeRadians reduces an angle into [0, 2π). Non-finite values are
// returned unchanged.
func NormalizeRadians(rad float64) float64 {
	return normalize(rad, twoPi)
}

func normalize(angle, turn float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return angle
	}

	r := math.Mod(angle, turn)
	if r < 0 {
		r += turn
	}
	// -tiny + turn rounds to turn
	if r >= turn {
		r = 0
	}
	return r
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
