// SPDX-License-Identifier: MIT

// Package config resolves neuronet settings from defaults, a YAML file,
// NEURONET_* environment variables and command-line flags, in increasing
// order of precedence.
//
// Keys are dotted paths ("input.file", "query.default_depth"); the matching
// environment variable upper-cases the path and replaces dots with
// underscores (NEURONET_INPUT_FILE, NEURONET_QUERY_DEFAULT_DEPTH).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/neuronet/ingest"
	"github.com/katalvlaran/neuronet/logging"
	"github.com/katalvlaran/neuronet/telemetry"
)

// ErrInvalidConfig is returned when a resolved configuration fails validation
// or a config file cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "NEURONET"

	// DefaultFileName is looked up in the home directory when no explicit
	// config file is given.
	DefaultFileName = ".neuronet.yaml"
)

// Config is the full set of tunables.
type Config struct {
	Input     InputConfig      `mapstructure:"input" yaml:"input"`
	Graph     GraphConfig      `mapstructure:"graph" yaml:"graph"`
	Query     QueryConfig      `mapstructure:"query" yaml:"query"`
	Log       logging.Config   `mapstructure:"log" yaml:"log"`
	Telemetry telemetry.Config `mapstructure:"telemetry" yaml:"telemetry"`
}

// InputConfig controls edge-list ingestion.
type InputConfig struct {
	File            string   `mapstructure:"file" yaml:"file"`
	CommentPrefixes []string `mapstructure:"comment_prefixes" yaml:"comment_prefixes"`
	ExtraColumns    bool     `mapstructure:"extra_columns" yaml:"extra_columns"`
	MaxLineBytes    int      `mapstructure:"max_line_bytes" yaml:"max_line_bytes"`
}

// GraphConfig controls adjacency construction.
type GraphConfig struct {
	Dedup           bool `mapstructure:"dedup" yaml:"dedup"`
	SortedNeighbors bool `mapstructure:"sorted_neighbors" yaml:"sorted_neighbors"`
}

// QueryConfig holds query defaults.
type QueryConfig struct {
	DefaultDepth   int `mapstructure:"default_depth" yaml:"default_depth"`
	BFSConcurrency int `mapstructure:"bfs_concurrency" yaml:"bfs_concurrency"`
	NeighborLimit  int `mapstructure:"neighbor_limit" yaml:"neighbor_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			CommentPrefixes: []string{"#", "%"},
			MaxLineBytes:    ingest.DefaultMaxLineBytes,
		},
		Query: QueryConfig{
			DefaultDepth:  1,
			NeighborLimit: 10,
		},
		Log:       logging.DefaultConfig(),
		Telemetry: telemetry.DefaultConfig(),
	}
}

// NewViper returns a viper instance with env overrides enabled and the config
// file read. An explicit cfgFile must exist; the home-directory default is
// optional.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return v, nil
		}
		cfgFile = filepath.Join(home, DefaultFileName)
		if _, err := os.Stat(cfgFile); err != nil {
			return v, nil
		}
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrInvalidConfig, cfgFile, err)
	}
	return v, nil
}

// SetDefaults registers every key of Default() on v so that env variables
// and Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("input.file", d.Input.File)
	v.SetDefault("input.comment_prefixes", d.Input.CommentPrefixes)
	v.SetDefault("input.extra_columns", d.Input.ExtraColumns)
	v.SetDefault("input.max_line_bytes", d.Input.MaxLineBytes)
	v.SetDefault("graph.dedup", d.Graph.Dedup)
	v.SetDefault("graph.sorted_neighbors", d.Graph.SortedNeighbors)
	v.SetDefault("query.default_depth", d.Query.DefaultDepth)
	v.SetDefault("query.bfs_concurrency", d.Query.BFSConcurrency)
	v.SetDefault("query.neighbor_limit", d.Query.NeighborLimit)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
	v.SetDefault("telemetry.trace_exporter", d.Telemetry.TraceExporter)
	v.SetDefault("telemetry.metric_exporter", d.Telemetry.MetricExporter)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	var errs []error
	if c.Input.MaxLineBytes < 64 {
		errs = append(errs, fmt.Errorf("input.max_line_bytes must be >= 64 (got %d)", c.Input.MaxLineBytes))
	}
	if c.Query.DefaultDepth < 1 {
		errs = append(errs, fmt.Errorf("query.default_depth must be >= 1 (got %d)", c.Query.DefaultDepth))
	}
	if c.Query.BFSConcurrency < 0 {
		errs = append(errs, fmt.Errorf("query.bfs_concurrency must be >= 0 (got %d)", c.Query.BFSConcurrency))
	}
	if c.Query.NeighborLimit < 0 {
		errs = append(errs, fmt.Errorf("query.neighbor_limit must be >= 0 (got %d)", c.Query.NeighborLimit))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// WriteYAML writes c as YAML.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
