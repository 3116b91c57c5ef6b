// SPDX-License-Identifier: MIT

// Package logging builds the slog loggers used across neuronet.
//
// Libraries accept a *slog.Logger and default to Discard; only the CLI
// constructs a real handler, from a Config:
//
//	log, err := logging.New(logging.Config{Level: "debug", Format: "json"}, os.Stderr)
//
// Levels are debug, info, warn and error. Formats are text and json.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrInvalidLevel is returned for an unknown level name.
	ErrInvalidLevel = errors.New("logging: invalid level")

	// ErrInvalidFormat is returned for an unknown handler format.
	ErrInvalidFormat = errors.New("logging: invalid format")
)

// Handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the level and handler format.
type Config struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig logs info and above as text.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatText}
}

// Validate checks both fields.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
// "warning" is accepted as an alias for warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// New returns a logger writing to w according to cfg.
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.ToLower(cfg.Format) == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
