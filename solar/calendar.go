package solar

import (
	"fmt"
)

const (
	daysPerYear     = 365
	daysPerLeapYear = 366
)

var monthNumbers = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// daysBeforeMonth is the number of days elapsed in a year before
// the first of each month, indexed by month number - 1
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
var daysBeforeMonthLeap = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}

// MonthNumber returns the month number (Jan=1 ... Dec=12) for a
// three letter month abbreviation
func MonthNumber(abbreviation string) (int, error) {
	n, ok := monthNumbers[abbreviation]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, abbreviation)
	}
	return n, nil
}

// IsLeapYear reports whether year is divisible by 4.
//
// Century years are not excluded. Day counts throughout this package
// are consistent with this rule, not with the Gregorian one.
func IsLeapYear(year int) bool {
	return year%4 == 0
}

// DayOfYear returns the number of days from the start of the year up
// to and including day of the given month, so that 1 Jan is day 1.
// Fractional days are carried through.
//
// Month must be in 1..12; DayOfYear panics otherwise. See
// CalendarDate.DayOfYear for a version that takes the month name.
func DayOfYear(day float64, month, year int) float64 {
	table := daysBeforeMonth
	if IsLeapYear(year) {
		table = daysBeforeMonthLeap
	}
	return float64(table[month-1]) + day
}

// DaysBetween counts days from 1 Jan of epoch to the dayOfYear'th day
// of year. The count is negative when year precedes epoch.
//
// The count walks one year at a time, so callers taking years from
// outside should check them with ValidateYear first.
func DaysBetween(epoch, year int, dayOfYear float64) float64 {
	var days int
	if epoch < year {
		for y := epoch; y < year; y++ {
			days += yearLength(y)
		}
	} else {
		for y := epoch - 1; y >= year; y-- {
			days -= yearLength(y)
		}
	}
	return float64(days) + dayOfYear
}

func yearLength(year int) int {
	if IsLeapYear(year) {
		return daysPerLeapYear
	}
	return daysPerYear
}
