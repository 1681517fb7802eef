// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package config loads the settings of the quat command.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Angle units.
const (
	Radians = "rad"
	Degrees = "deg"
)

// Config is the configuration of the quat command.
type Config struct {
	// Precision is the number of significant digits used
	// when printing results. -1 prints the shortest exact
	// representation.
	Precision int `yaml:"precision" mapstructure:"precision"`

	// AngleUnit is the unit of angles given on the
	// command line: "rad" or "deg".
	AngleUnit string `yaml:"angle_unit" mapstructure:"angle_unit"`

	// Epsilon is the tolerance of the equal command.
	Epsilon float64 `yaml:"epsilon" mapstructure:"epsilon"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Precision: -1,
		AngleUnit: Radians,
		Epsilon:   1e-5,
		LogLevel:  "warn",
	}
}

// Load reads the configuration from file, or, if file is
// empty, from quat.yaml in $HOME/.quat or in the working
// directory. QUAT_* environment variables override the
// file. A missing file yields the defaults.
func Load(file string) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("precision", def.Precision)
	v.SetDefault("angle_unit", def.AngleUnit)
	v.SetDefault("epsilon", def.Epsilon)
	v.SetDefault("log_level", def.LogLevel)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("quat")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".quat"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("QUAT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: unmarshaling config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that c holds usable values.
func (c *Config) Validate() error {
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("config: precision %d out of [-1, 17]", c.Precision)
	}
	switch c.AngleUnit {
	case Radians, Degrees:
	default:
		return fmt.Errorf("config: unknown angle unit %q", c.AngleUnit)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) {
		return fmt.Errorf("config: invalid epsilon %v", c.Epsilon)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by c.LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: %w", err)
	}
	return l, nil
}

// Radians converts an angle given in c.AngleUnit to radians.
func (c *Config) Radians(a float64) float64 {
	if c.AngleUnit == Degrees {
		return a * math.Pi / 180
	}
	return a
}

// Angle converts an angle in radians to c.AngleUnit.
func (c *Config) Angle(rad float64) float64 {
	if c.AngleUnit == Degrees {
		return rad * 180 / math.Pi
	}
	return rad
}
