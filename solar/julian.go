package solar

import (
	"math"
)

const (
	// GregorianStartYear is the first year to which the Gregorian
	// century correction is applied
	GregorianStartYear = 1582

	// julianDateOffset is the Julian date of the calendar's day zero
	julianDateOffset = 1720994.5
)

// JulianDate returns the Julian date at the start of day of the given
// month number and year. Fractional days carry the time of day, and
// years before 1 AD are negative.
//
// Years from 1582 on are treated as Gregorian, earlier years as Julian.
// January and February count as months 13 and 14 of the previous year.
//
// Month is not validated; see JulianDateOf.
func JulianDate(month int, day float64, year int) float64 {
	if month == 1 || month == 2 {
		year--
		month += 12
	}

	var b float64
	if year >= GregorianStartYear {
		a := year / 100
		b = float64(2 - a + a/4)
	}

	c := math.Trunc(365.25 * float64(year))
	if year < 0 {
		c = math.Trunc(365.25*float64(year) - 0.75)
	}

	d := math.Trunc(30.6001 * float64(month+1))

	return b + c + d + day + julianDateOffset
}

// JulianDateOf is JulianDate for a three letter month abbreviation
func JulianDateOf(month string, day float64, year int) (float64, error) {
	n, err := MonthNumber(month)
	if err != nil {
		return 0, err
	}
	return JulianDate(n, day, year), nil
}
