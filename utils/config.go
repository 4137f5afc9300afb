package utils

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/sheikhrachel/go-life/boards"
)

// Config holds the configuration for the simulation
type Config struct {
	CreateBoard    bool          `mapstructure:"create_board"`
	BoardSource    string        `mapstructure:"board_json"`
	Interval       time.Duration `mapstructure:"interval"`
	MaxGenerations int           `mapstructure:"max_generations"`
	StopWhenStable bool          `mapstructure:"stop_when_stable"`
	StableAfter    int           `mapstructure:"stable_after"`
	AliveGlyph     string        `mapstructure:"alive_glyph"`
	DeadGlyph      string        `mapstructure:"dead_glyph"`
	Color          bool          `mapstructure:"color"`
	TUI            bool          `mapstructure:"tui"`
	ServeAddr      string        `mapstructure:"serve"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardSource:    boards.DefaultBoard,
		Interval:       100 * time.Millisecond,
		MaxGenerations: 0, // run until interrupted
		StableAfter:    3,
		AliveGlyph:     "▣",
		DeadGlyph:      ".",
	}
}

// LoadConfig loads configuration from a yaml, json or toml file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	vp := viper.New()
	vp.SetConfigFile(filename)
	if err := vp.ReadInConfig(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err := vp.Unmarshal(&config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Interval < 0:
		return errors.Errorf("interval must not be negative, got %v", c.Interval)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StableAfter < 1:
		return errors.Errorf("stable_after must be at least 1, got %d", c.StableAfter)
	}
	return nil
}
