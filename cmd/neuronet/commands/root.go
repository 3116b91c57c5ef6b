// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/neuronet/config"
	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/engine"
	"github.com/katalvlaran/neuronet/ingest"
	"github.com/katalvlaran/neuronet/logging"
	"github.com/katalvlaran/neuronet/telemetry"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	// errNoInput is returned by graph commands run without an input file.
	errNoInput = errors.New("no input file: pass --file or set input.file")

	errInvalidNodeID = errors.New("invalid node id")
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     config.Config
	log     *slog.Logger
	tel     *telemetry.Provider
	eng     *engine.Engine
}

// Execute runs the root command against os.Args and returns the exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCmd builds a fresh command tree; each call is independent.
func NewRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	root := &cobra.Command{
		Use:   "neuronet",
		Short: "Sparse directed-graph engine for massive edge lists",
		Long: `neuronet - compact adjacency for millions of edges

Load a "source target" edge list once, then ask for degrees, neighbors,
the most connected nodes, or a bounded breadth-first subgraph.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/"+config.DefaultFileName+")")
	pf.StringP("file", "f", "", "edge list to load (plain or .gz)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text, json")
	pf.String("telemetry", "", "trace exporter: none, stdout")
	pf.Bool("dedup", false, "collapse repeated edges")
	pf.Bool("extra-columns", false, "accept and ignore columns after source and target")

	root.AddCommand(
		newStatsCmd(a),
		newDegreeCmd(a),
		newNeighborsCmd(a),
		newCriticalCmd(a),
		newBFSCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
	)
	return root
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"file":          "input.file",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"telemetry":     "telemetry.trace_exporter",
	"dedup":         "graph.dedup",
	"extra-columns": "input.extra_columns",
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(a.cfgFile)
	if err != nil {
		return err
	}
	if err := bindChanged(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.v, a.cfg = v, cfg

	a.log, err = logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.tel, err = telemetry.Init(contextOf(cmd), cfg.Telemetry, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.eng = engine.New(
		engine.WithLogger(a.log),
		engine.WithIngestOptions(a.ingestOptions()...),
		engine.WithBuildOptions(a.buildOptions()...),
		engine.WithBFSConcurrency(cfg.Query.BFSConcurrency),
		engine.WithTracerProvider(a.tel.TracerProvider()),
		engine.WithMeterProvider(a.tel.MeterProvider()),
	)
	return nil
}

// bindChanged binds only explicitly set flags, so unset ones never shadow
// file and env values.
func bindChanged(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

func (a *app) teardown(ctx context.Context) error {
	if a.tel == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return a.tel.Shutdown(ctx)
}

func (a *app) ingestOptions() []ingest.Option {
	in := a.cfg.Input
	opts := []ingest.Option{
		ingest.WithCommentPrefixes(in.CommentPrefixes...),
		ingest.WithMaxLineBytes(in.MaxLineBytes),
	}
	if in.ExtraColumns {
		opts = append(opts, ingest.WithExtraColumns())
	}
	return opts
}

func (a *app) buildOptions() []core.BuildOption {
	var opts []core.BuildOption
	if a.cfg.Graph.Dedup {
		opts = append(opts, core.WithDedup())
	}
	if a.cfg.Graph.SortedNeighbors {
		opts = append(opts, core.WithSortedNeighbors())
	}
	return opts
}

// load reads the configured input into the engine.
func (a *app) load(cmd *cobra.Command) error {
	if a.cfg.Input.File == "" {
		return errNoInput
	}
	_, err := a.eng.Load(contextOf(cmd), a.cfg.Input.File)
	return err
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parseNodeID parses a non-negative base-10 node identifier.
func parseNodeID(s string) (core.NodeID, error) {
	v, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w %q: want a non-negative integer", errInvalidNodeID, s)
	}
	return core.NodeID(v), nil
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
