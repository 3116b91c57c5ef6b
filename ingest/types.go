// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/neuronet/core"
)

// ErrIO is returned when the edge source cannot be opened or read.
var ErrIO = errors.New("ingest: i/o error")

const (
	// DefaultMaxLineBytes bounds a single input line.
	DefaultMaxLineBytes = 1 << 20

	// cancelCheckEvery is the line interval between context checks.
	cancelCheckEvery = 4096
)

// Result is the outcome of one read.
type Result struct {
	Edges    []core.Edge
	Lines    int // physical lines read
	Skipped  int // malformed lines
	Comments int // comment lines
}

// Option configures a read.
type Option func(*options)

type options struct {
	ctx          context.Context
	log          *slog.Logger
	prefixes     []string
	extraColumns bool
	maxLineBytes int
}

func defaultOptions() options {
	return options{
		ctx:          context.Background(),
		log:          slog.New(slog.DiscardHandler),
		prefixes:     []string{"#", "%"},
		maxLineBytes: DefaultMaxLineBytes,
	}
}

// WithContext makes the read abort once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger receiving per-line diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCommentPrefixes replaces the default comment prefixes.
// An empty call disables comment detection.
func WithCommentPrefixes(prefixes ...string) Option {
	return func(o *options) {
		o.prefixes = o.prefixes[:0:0]
		for _, p := range prefixes {
			if p != "" {
				o.prefixes = append(o.prefixes, p)
			}
		}
	}
}

// WithExtraColumns accepts lines with more than two tokens and ignores the
// trailing ones.
func WithExtraColumns() Option {
	return func(o *options) { o.extraColumns = true }
}

// WithMaxLineBytes sets the longest accepted line, terminator included.
// Longer lines are skipped as malformed. Values < 64 are ignored.
func WithMaxLineBytes(n int) Option {
	return func(o *options) {
		if n >= 64 {
			o.maxLineBytes = n
		}
	}
}
