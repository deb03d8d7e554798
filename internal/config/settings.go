package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds tunable engine and CLI behavior loaded from an optional
// settings file. Requests themselves never carry these; they bound what any
// request may ask for.
type Settings struct {
	MaxSchedulePeriods int           `mapstructure:"max_schedule_periods"`
	DefaultFrequency   string        `mapstructure:"default_frequency"`
	Logging            LoggingConfig `mapstructure:"logging"`
	Output             OutputConfig  `mapstructure:"output"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// OutputConfig holds output format configuration options.
type OutputConfig struct {
	Format string `mapstructure:"format"` // json, csv, table
}

// LoadSettings reads settings from the given file, falling back to defaults
// for anything unset. An empty path returns pure defaults. Environment
// variables prefixed LOANCALC_ override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("max_schedule_periods", 1200)
	v.SetDefault("default_frequency", "monthly")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", "json")

	v.SetEnvPrefix("loancalc")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
