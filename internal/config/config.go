package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const epochLayout = "2006-01-02"

type Config struct {
	Port               string `env:"PORT" envDefault:"3000"`
	PublicURL          string `env:"PUBLIC_URL" envDefault:"http://localhost:3000"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string `env:"LOG_FORMAT" envDefault:"text"`
	DefaultLocale      string `env:"DEFAULT_LOCALE" envDefault:"en-US"`
	UpcomingWeeks      int    `env:"UPCOMING_WEEKS" envDefault:"5"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET"`

	// RotationEpoch (YYYY-MM-DD) makes week numbers count from a fixed date
	// instead of restarting every January 1st.
	RotationEpoch string `env:"ROTATION_EPOCH"`

	epoch time.Time
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the configuration from the environment without touching .env
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}

	if c.UpcomingWeeks <= 0 {
		return fmt.Errorf("UPCOMING_WEEKS must be positive, got %d", c.UpcomingWeeks)
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("DEFAULT_LOCALE must be a valid language tag: %w", err)
	}

	if c.RotationEpoch != "" {
		epoch, err := time.ParseInLocation(epochLayout, c.RotationEpoch, time.Local)
		if err != nil {
			return fmt.Errorf("ROTATION_EPOCH must use the YYYY-MM-DD format: %w", err)
		}
		c.epoch = epoch
	}

	return nil
}

// Epoch returns the configured rotation epoch, or the zero time when week
// numbers are relative to the current year.
func (c *Config) Epoch() time.Time {
	return c.epoch
}

// SlackEnabled reports whether the slash command endpoint should be served
func (c *Config) SlackEnabled() bool {
	return c.SlackSigningSecret != ""
}
