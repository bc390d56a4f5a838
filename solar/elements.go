package solar

const (
	// JulianDate1900 is the Julian date of 1900 January 0.5, the
	// reference instant of the orbital element polynomials
	JulianDate1900 = 2415020.0

	daysPerJulianCentury = 36525
)

// OrbitalElements describes the Sun's apparent orbit at an epoch
type OrbitalElements struct {
	Epoch int `json:"epoch"`

	// MeanEclipticLongitude is the mean ecliptic longitude at the epoch,
	// in degrees, within [0, 360)
	MeanEclipticLongitude float64 `json:"mean_ecliptic_longitude"`

	// LongitudeAtPerigee is in degrees and is not normalized
	LongitudeAtPerigee float64 `json:"longitude_at_perigee"`

	Eccentricity float64 `json:"eccentricity"`
}

// ElementsAt computes all orbital elements for epoch
func ElementsAt(epoch int) OrbitalElements {
	return OrbitalElements{
		Epoch:                 epoch,
		MeanEclipticLongitude: MeanEclipticLongitude(epoch),
		LongitudeAtPerigee:    LongitudeAtPerigee(epoch),
		Eccentricity:          Eccentricity(epoch),
	}
}

// CenturiesSince1900 is the number of Julian centuries from
// 1900 January 0.5 to January 0.0 of epoch
func CenturiesSince1900(epoch int) float64 {
	return (JulianDate(1, 0, epoch) - JulianDate1900) / daysPerJulianCentury
}

// MeanEclipticLongitude calculates the Sun's mean ecliptic longitude
// at epoch, in degrees within [0, 360)
func MeanEclipticLongitude(epoch int) float64 {
	t := CenturiesSince1900(epoch)
	return NormalizeDegrees(279.6966678 + 36000.76892*t + 0.0003025*t*t)
}

// LongitudeAtPerigee calculates the Sun's ecliptic longitude at
// perigee for epoch, in degrees
func LongitudeAtPerigee(epoch int) float64 {
	t := CenturiesSince1900(epoch)
	return 281.2208444 + 1.719175*t + 0.000452778*t*t
}

// Eccentricity calculates the eccentricity of the Sun's apparent
// orbit (the Earth's orbit, really) at epoch
func Eccentricity(epoch int) float64 {
	t := CenturiesSince1900(epoch)
	return 0.01675104 - 0.0000418*t - 0.000000126*t*t
}
