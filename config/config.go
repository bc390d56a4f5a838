package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/suncalc"
	"github.com/subtlepseudonym/suncalc/solar"
)

const (
	DefaultListenAddr = ":9000"
	DefaultLogLevel   = "info"

	// SunsetPrefix marks a schedule relative to sunset, optionally
	// followed by an offset duration, e.g. "@sunset -1h"
	SunsetPrefix = "@sunset"
)

// Config is the suncalc daemon configuration
type Config struct {
	Epoch    int                 `json:"epoch"`
	Date     *solar.CalendarDate `json:"date,omitempty"`
	Schedule string              `json:"schedule"`
	Listen   string              `json:"listen"`
	Location *suncalc.Location   `json:"location,omitempty"`
	Solver   solar.Solver        `json:"solver"`
	Log      Log                 `json:"log"`

	Constants Constants `json:"constants"`
}

type Log struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Pretty bool   `json:"pretty"` // console output instead of JSON
}

// Constants are physical constants of the Sun's orbit at the epoch.
// They are logged at startup but not used to compute observations.
type Constants struct {
	Eccentricity       float64 `json:"eccentricity"`
	LongitudeAtPerigee float64 `json:"longitude_at_perigee"` // degrees
	SemiMajorAxis      float64 `json:"semi_major_axis"`      // km
	AngularDiameter    float64 `json:"angular_diameter"`     // degrees, at SemiMajorAxis
}

// Epoch1990 holds the orbital constants of epoch 1990.0
var Epoch1990 = Constants{
	Eccentricity:       0.016713,
	LongitudeAtPerigee: 282.768422,
	SemiMajorAxis:      149598500.0,
	AngularDiameter:    0.533128,
}

// Open decodes the config file at filename and fills in defaults
func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	config := Config{
		Epoch:     1990,
		Listen:    DefaultListenAddr,
		Log:       Log{Level: DefaultLogLevel},
		Constants: Epoch1990,
	}
	err = json.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

// Load loads a .env file if one exists, opens filename and applies
// environment overrides
func Load(filename string) (*Config, error) {
	_ = godotenv.Load()

	config, err := Open(filename)
	if err != nil {
		return nil, err
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SUNCALC_EPOCH"); v != "" {
		epoch, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SUNCALC_EPOCH %q: %w", v, err)
		}
		c.Epoch = epoch
	}
	if v := os.Getenv("SUNCALC_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("SUNCALC_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

func (c *Config) Validate() error {
	if err := solar.ValidateYear(c.Epoch); err != nil {
		return fmt.Errorf("epoch: %w", err)
	}

	if c.Date != nil {
		if err := c.Date.Validate(); err != nil {
			return fmt.Errorf("date: %w", err)
		}
	}

	if c.Solver.Tolerance < 0 {
		return fmt.Errorf("solver tolerance must not be negative, got %g", c.Solver.Tolerance)
	}
	if c.Solver.MaxIterations < 0 {
		return fmt.Errorf("solver max_iterations must not be negative, got %d", c.Solver.MaxIterations)
	}

	if c.Location != nil {
		if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
			return fmt.Errorf("latitude out of range: %g", c.Location.Latitude)
		}
		if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
			return fmt.Errorf("longitude out of range: %g", c.Location.Longitude)
		}
	}

	if _, err := c.ParseSchedule(); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}

// ParseSchedule returns the schedule the daemon's almanac runs on. An
// empty schedule returns nil, leaving the almanac's own daily schedule.
func (c *Config) ParseSchedule() (cron.Schedule, error) {
	if c.Schedule == "" {
		return nil, nil
	}

	if strings.HasPrefix(c.Schedule, SunsetPrefix) {
		if c.Location == nil {
			return nil, fmt.Errorf("schedule %q requires a location", c.Schedule)
		}

		s := strings.Fields(c.Schedule)
		var schedule suncalc.SunsetSchedule
		schedule.Location = *c.Location
		if len(s) > 1 {
			offset, err := time.ParseDuration(s[1])
			if err != nil {
				return nil, fmt.Errorf("parse sunset offset: %w", err)
			}
			schedule.Offset = offset
		}
		return schedule, nil
	}

	schedule, err := cron.ParseStandard(c.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	return schedule, nil
}
