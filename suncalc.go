package suncalc

import (
	"fmt"

	"github.com/subtlepseudonym/suncalc/solar"
)

// Observation is every intermediate quantity on the way from a calendar
// date to the Sun's ecliptic longitude. Angles named *Anomaly are in
// radians, longitudes in degrees.
type Observation struct {
	Date           solar.CalendarDate    `json:"date"`
	Epoch          int                   `json:"epoch"`
	JulianDate     float64               `json:"julian_date"`
	DayOfYear      float64               `json:"day_of_year"`
	DaysSinceEpoch float64               `json:"days_since_epoch"`
	Elements       solar.OrbitalElements `json:"elements"`

	MeanAnomaly       float64        `json:"mean_anomaly"`
	Kepler            solar.Solution `json:"kepler"`
	TrueAnomaly       float64        `json:"true_anomaly"`
	EquationOfCenter  float64        `json:"equation_of_center"`
	EclipticLongitude float64        `json:"ecliptic_longitude"`
}

// Observe computes the Sun's position on date against the orbital
// elements of epoch
func Observe(date solar.CalendarDate, epoch int, solver solar.Solver) (Observation, error) {
	if err := date.Validate(); err != nil {
		return Observation{}, fmt.Errorf("observe %s: %w", date, err)
	}
	if err := solar.ValidateYear(epoch); err != nil {
		return Observation{}, fmt.Errorf("epoch: %w", err)
	}

	jd, err := date.JulianDate()
	if err != nil {
		return Observation{}, fmt.Errorf("julian date: %w", err)
	}

	dayNumber, err := date.DayOfYear()
	if err != nil {
		return Observation{}, fmt.Errorf("day of year: %w", err)
	}

	days := solar.DaysBetween(epoch, date.Year, dayNumber)
	elements := solar.ElementsAt(epoch)
	meanAnomaly := solar.MeanSolarAnomaly(epoch, days)

	sol, err := solver.Solve(meanAnomaly, elements.Eccentricity)
	if err != nil {
		return Observation{}, fmt.Errorf("solve kepler: %w", err)
	}

	trueAnomaly := solar.TrueAnomaly(sol.EccentricAnomaly, elements.Eccentricity)

	return Observation{
		Date:              date,
		Epoch:             epoch,
		JulianDate:        jd,
		DayOfYear:         dayNumber,
		DaysSinceEpoch:    days,
		Elements:          elements,
		MeanAnomaly:       meanAnomaly,
		Kepler:            sol,
		TrueAnomaly:       trueAnomaly,
		EquationOfCenter:  solar.EquationOfCenter(trueAnomaly, meanAnomaly),
		EclipticLongitude: solar.EclipticLongitude(trueAnomaly, elements.LongitudeAtPerigee),
	}, nil
}
