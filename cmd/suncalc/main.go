package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/subtlepseudonym/suncalc"
	"github.com/subtlepseudonym/suncalc/config"
)

const (
	defaultConfigFile = "secrets/suncalc.cfg"
	requestTimeout    = 10 * time.Second
)

func newLogger(cfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func main() {
	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatal().Err(err).Msg("load tz location")
		}
		time.Local = loc
	}

	configFile := os.Getenv("SUNCALC_CONFIG")
	if configFile == "" {
		configFile = defaultConfigFile
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", configFile).Msg("read config file failed")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	logger := newLogger(cfg.Log)
	log.Logger = logger

	logger.Info().
		Int("epoch", cfg.Epoch).
		Float64("eccentricity", cfg.Constants.Eccentricity).
		Float64("longitude_at_perigee", cfg.Constants.LongitudeAtPerigee).
		Float64("semi_major_axis", cfg.Constants.SemiMajorAxis).
		Float64("angular_diameter", cfg.Constants.AngularDiameter).
		Msg("orbital constants")

	registry := prometheus.NewRegistry()
	almanac := suncalc.NewAlmanac(cfg.Epoch, cfg.Solver, logger)
	almanac.Location = cfg.Location
	almanac.Metrics = suncalc.NewMetrics(registry)

	if cfg.Date != nil {
		obs, err := almanac.Observe(*cfg.Date)
		if err != nil {
			logger.Fatal().Err(err).Str("date", cfg.Date.String()).Msg("observe")
		}
		logger.Info().
			Str("date", obs.Date.String()).
			Float64("julian_date", obs.JulianDate).
			Float64("days_since_epoch", obs.DaysSinceEpoch).
			Float64("mean_anomaly", obs.MeanAnomaly).
			Float64("eccentric_anomaly", obs.Kepler.EccentricAnomaly).
			Float64("ecliptic_longitude", obs.EclipticLongitude).
			Msg("observation")
	}

	schedule, err := cfg.ParseSchedule()
	if err != nil {
		logger.Fatal().Err(err).Msg("parse schedule")
	}
	if schedule == nil {
		schedule = almanac
	}

	almanacCron := cron.New(cron.WithLocation(time.UTC))
	almanacCron.Schedule(schedule, almanac)
	logger.Info().Time("next", schedule.Next(time.Now())).Msg("almanac scheduled")

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", suncalc.HealthHandler)
	r.Get("/observation", almanac.ObservationHandler)
	r.Get("/elements/{epoch}", almanac.ElementsHandler)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := http.Server{
		Addr:    cfg.Listen,
		Handler: r,
	}
	logger.Info().Str("addr", srv.Addr).Msg("listening")

	almanacCron.Start()
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("serve")
	}
}
