// Package config loads the operating defaults for the waypoint CLI
// (walking speed, Naismith coefficient, dwell time, day window) from an
// optional config file and the environment, layered with viper so a
// flag beats an env var beats a config file beats a built-in default.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI's default solve parameters. Any field can be
// overridden per-invocation by a cobra flag.
type Config struct {
	SpeedKmh      float64 `mapstructure:"SPEED_KMH"`
	NaismithCoeff float64 `mapstructure:"NAISMITH_COEFF"`
	DwellMinutes  float64 `mapstructure:"DWELL_MINUTES"`
	StartMinute   float64 `mapstructure:"START_MINUTE"`
	EndMinute     float64 `mapstructure:"END_MINUTE"`
	LogLevel      string  `mapstructure:"LOG_LEVEL"`
}

// Load reads waypoint.yaml from the current directory (if present),
// env vars prefixed WAYPOINT_, and falls back to built-in defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("waypoint")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("WAYPOINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SPEED_KMH", 4.0)
	v.SetDefault("NAISMITH_COEFF", 10.0)
	v.SetDefault("DWELL_MINUTES", 0.0)
	v.SetDefault("START_MINUTE", 480.0)
	v.SetDefault("END_MINUTE", 1080.0)
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	cfg := &Config{
		SpeedKmh:      v.GetFloat64("SPEED_KMH"),
		NaismithCoeff: v.GetFloat64("NAISMITH_COEFF"),
		DwellMinutes:  v.GetFloat64("DWELL_MINUTES"),
		StartMinute:   v.GetFloat64("START_MINUTE"),
		EndMinute:     v.GetFloat64("END_MINUTE"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}
	return cfg, nil
}
