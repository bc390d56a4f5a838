package suncalc

import (
	"time"

	sunrise "github.com/nathan-osman/go-sunrise"
	"github.com/rs/zerolog/log"
)

const (
	// number of following days searched for a sunset before giving up,
	// covers polar day
	searchLimit = 190
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RiseSet is the sunrise and sunset for a location on one day, in UTC
type RiseSet struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

// Polar reports whether the sun neither rises nor sets on that day
func (r RiseSet) Polar() bool {
	return r.Sunrise.IsZero() && r.Sunset.IsZero()
}

// GetRiseSet returns the sunrise and sunset at location on the day
// containing date, in mean solar time at the location's longitude.
// West of Greenwich that day's sunset falls on the following UTC day.
func GetRiseSet(location Location, date time.Time) RiseSet {
	d := solarLocal(location, date)
	rise, set := sunrise.SunriseSunset(location.Latitude, location.Longitude, d.Year(), d.Month(), d.Day())
	return RiseSet{Sunrise: rise, Sunset: set}
}

// solarLocal shifts t by 4 minutes per degree of longitude and returns
// it as a UTC wall clock
func solarLocal(location Location, t time.Time) time.Time {
	offset := time.Duration(location.Longitude / 15 * float64(time.Hour))
	return t.UTC().Add(offset)
}

// SunsetSchedule fires at Offset from each sunset at Location
//
// This implements robfig/cron.Schedule
type SunsetSchedule struct {
	Location Location      `json:"location"`
	Offset   time.Duration `json:"offset"`
}

// Next returns the first sunset plus Offset after now. The search starts
// at the previous day so a positive Offset past local midnight is not
// skipped. Days without a sunset are skipped; if none is found within
// searchLimit days the zero time is returned, which cron treats as
// never.
func (s SunsetSchedule) Next(now time.Time) time.Time {
	for i := -1; i <= searchLimit; i++ {
		rs := GetRiseSet(s.Location, now.AddDate(0, 0, i))
		if rs.Sunset.IsZero() {
			continue
		}

		next := rs.Sunset.Add(s.Offset)
		if next.After(now) {
			return next
		}
	}

	log.Error().Time("from", now).Int("days", searchLimit).Msg("no sunset found")
	return time.Time{}
}
