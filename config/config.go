// SPDX-License-Identifier: MIT

// Package config loads bookgraph configuration in three layers: built-in
// defaults, an optional YAML file, then BOOKGRAPH_* environment variables.
//
// Environment keys use a double underscore between sections:
//
//	BOOKGRAPH_LOG__LEVEL=debug
//	BOOKGRAPH_AFFINITY__MIN_COMMON_BOOKS=2
//	BOOKGRAPH_RECOMMEND__WEIGHTS__CONTENT=0.5
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/bookgraph/affinity"
	"github.com/katalvlaran/bookgraph/logging"
	"github.com/katalvlaran/bookgraph/recommend"
	"github.com/katalvlaran/bookgraph/table"
)

// EnvPrefix marks the environment variables read by Load.
const EnvPrefix = "BOOKGRAPH_"

// ErrInvalid is returned when the merged configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// LogConfig mirrors logging.Config without the writer.
type LogConfig struct {
	Level     string `koanf:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic disabled"`
	Format    string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller    bool   `koanf:"caller"`
	Timestamp bool   `koanf:"timestamp"`
}

// Logging converts to a logging.Config writing to the default output.
func (c LogConfig) Logging() logging.Config {
	return logging.Config{Level: c.Level, Format: c.Format, Caller: c.Caller, Timestamp: c.Timestamp}
}

// TableConfig sizes the hash tables of the catalog and graph.
type TableConfig struct {
	Buckets       int     `koanf:"buckets" validate:"gte=1,lte=1048576"`
	MaxLoadFactor float64 `koanf:"max_load_factor" validate:"gte=0"`
}

// Options returns the table options the configuration describes.
func (c TableConfig) Options() []table.Option {
	opts := []table.Option{table.WithBuckets(c.Buckets)}
	if c.MaxLoadFactor > 0 {
		opts = append(opts, table.WithMaxLoadFactor(c.MaxLoadFactor))
	}
	return opts
}

// MetricsConfig controls metric export from the command.
type MetricsConfig struct {
	// Textfile, when set, receives the Prometheus text exposition on exit.
	Textfile string `koanf:"textfile"`
}

// Config is the complete bookgraph configuration.
type Config struct {
	Log       LogConfig        `koanf:"log"`
	Affinity  affinity.Config  `koanf:"affinity"`
	Recommend recommend.Config `koanf:"recommend"`
	Table     TableConfig      `koanf:"table"`
	Metrics   MetricsConfig    `koanf:"metrics"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info", Format: logging.FormatConsole, Timestamp: true},
		Affinity:  affinity.DefaultConfig(),
		Recommend: recommend.DefaultConfig(),
		Table:     TableConfig{Buckets: table.DefaultBuckets},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the environment, then validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps BOOKGRAPH_AFFINITY__MIN_COMMON_BOOKS to affinity.min_common_books.
func envKey(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
