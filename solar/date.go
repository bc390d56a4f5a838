package solar

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinYear and MaxYear bound the years and epochs accepted by
	// ValidateYear. DaysBetween walks every year between its arguments.
	MinYear = -1_000_000
	MaxYear = 1_000_000

	hoursPerDay = 24
)

var monthAbbreviations = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// CalendarDate is a date on the calendar used throughout this package.
// Day may be fractional (27.5 is noon on the 27th) and Year is negative
// for BC dates.
type CalendarDate struct {
	Day   float64 `json:"day"`
	Month string  `json:"month"`
	Year  int     `json:"year"`
}

// DateFromTime returns the CalendarDate of t in UTC, with the time of
// day expressed as a fraction of Day
func DateFromTime(t time.Time) CalendarDate {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	fraction := u.Sub(midnight).Hours() / hoursPerDay

	return CalendarDate{
		Day:   float64(u.Day()) + fraction,
		Month: monthAbbreviations[u.Month()-1],
		Year:  u.Year(),
	}
}

// Validate checks that the month is known, the day is finite and not
// negative, and the year is within [MinYear, MaxYear]
func (d CalendarDate) Validate() error {
	if _, err := MonthNumber(d.Month); err != nil {
		return err
	}
	if !(d.Day >= 0) || math.IsInf(d.Day, 0) {
		return fmt.Errorf("%w: day %g", ErrInvalidDate, d.Day)
	}
	return ValidateYear(d.Year)
}

// ValidateYear checks that year is within [MinYear, MaxYear]
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, MinYear, MaxYear)
	}
	return nil
}

// DayOfYear is the DayOfYear of d
func (d CalendarDate) DayOfYear() (float64, error) {
	month, err := MonthNumber(d.Month)
	if err != nil {
		return 0, err
	}
	return DayOfYear(d.Day, month, d.Year), nil
}

// JulianDate is the JulianDate of d
func (d CalendarDate) JulianDate() (float64, error) {
	return JulianDateOf(d.Month, d.Day, d.Year)
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%g %s %d", d.Day, d.Month, d.Year)
}
