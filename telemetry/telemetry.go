// SPDX-License-Identifier: MIT

// Package telemetry wires the global OpenTelemetry tracer and meter
// providers that package engine reports through.
//
// Metrics are collected into a private Prometheus registry (exporter
// "prometheus") so the CLI can print them in text exposition format, or
// written periodically as JSON (exporter "stdout"). Traces go to stdout as
// JSON (exporter "stdout") or nowhere ("none").
//
//	p, err := telemetry.Init(ctx, telemetry.DefaultConfig(), os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer p.Shutdown(context.Background())
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

var (
	// ErrUnknownExporter is returned for an exporter name outside the
	// supported set.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")

	// ErrNilContext is returned when Init receives a nil context.
	ErrNilContext = errors.New("telemetry: nil context")

	// ErrNoRegistry is returned by WriteMetrics when metrics are not
	// collected into a Prometheus registry.
	ErrNoRegistry = errors.New("telemetry: prometheus exporter not enabled")
)

// Exporter names.
const (
	ExporterNone       = "none"
	ExporterStdout     = "stdout"
	ExporterPrometheus = "prometheus"
)

// Config controls telemetry behavior.
type Config struct {
	// ServiceName identifies this process in traces and metrics.
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`

	// TraceExporter selects the trace exporter: "stdout" or "none".
	TraceExporter string `mapstructure:"trace_exporter" yaml:"trace_exporter"`

	// MetricExporter selects the metric exporter: "prometheus", "stdout" or "none".
	MetricExporter string `mapstructure:"metric_exporter" yaml:"metric_exporter"`
}

// DefaultConfig collects metrics in memory and drops traces.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "neuronet",
		TraceExporter:  ExporterNone,
		MetricExporter: ExporterPrometheus,
	}
}

// Validate checks the exporter names.
func (c Config) Validate() error {
	switch c.TraceExporter {
	case ExporterNone, ExporterStdout:
	default:
		return fmt.Errorf("%w: trace exporter %q", ErrUnknownExporter, c.TraceExporter)
	}
	switch c.MetricExporter {
	case ExporterNone, ExporterStdout, ExporterPrometheus:
	default:
		return fmt.Errorf("%w: metric exporter %q", ErrUnknownExporter, c.MetricExporter)
	}
	return nil
}

// Provider owns the installed providers.
type Provider struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	registry       *prometheus.Registry
	shutdownFuncs  []func(context.Context) error
}

// Init installs global tracer and meter providers according to cfg.
// Stdout exporters write to w (os.Stdout when nil).
// Call Shutdown on exit to flush pending spans and metrics.
func Init(ctx context.Context, cfg Config, w io.Writer) (*Provider, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stdout
	}

	p := &Provider{
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
	}
	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
	)

	// --- TRACES ---
	if cfg.TraceExporter != ExporterNone {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
		)
		otel.SetTracerProvider(tp)
		p.tracerProvider = tp
		p.shutdownFuncs = append(p.shutdownFuncs, tp.Shutdown)
	}

	// --- METRICS ---
	if cfg.MetricExporter != ExporterNone {
		mp, err := p.initMeter(cfg, res, w)
		if err != nil {
			return nil, err
		}
		otel.SetMeterProvider(mp)
		p.meterProvider = mp
		p.shutdownFuncs = append(p.shutdownFuncs, mp.Shutdown)
	}

	return p, nil
}

func (p *Provider) initMeter(cfg Config, res *resource.Resource, w io.Writer) (*sdkmetric.MeterProvider, error) {
	switch cfg.MetricExporter {
	case ExporterPrometheus:
		p.registry = prometheus.NewRegistry()
		exporter, err := promexporter.New(promexporter.WithRegisterer(p.registry))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create prometheus exporter: %w", err)
		}
		return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter), sdkmetric.WithResource(res)), nil

	case ExporterStdout:
		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("telemetry: create stdout metric exporter: %w", err)
		}
		return sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
			sdkmetric.WithResource(res),
		), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.MetricExporter)
	}
}

// TracerProvider returns the provider installed by Init, or a no-op
// provider when traces are disabled. The otel global delegate binds only to
// the first provider installed in a process, so pass this one explicitly.
func (p *Provider) TracerProvider() trace.TracerProvider { return p.tracerProvider }

// MeterProvider returns the provider installed by Init, or a no-op provider
// when metrics are disabled.
func (p *Provider) MeterProvider() metric.MeterProvider { return p.meterProvider }

// Registry returns the Prometheus registry, or nil when the prometheus
// exporter is not in use.
func (p *Provider) Registry() *prometheus.Registry { return p.registry }

// WriteMetrics gathers the registry and writes it in the Prometheus text
// exposition format.
func (p *Provider) WriteMetrics(w io.Writer) error {
	if p.registry == nil {
		return ErrNoRegistry
	}
	families, err := p.registry.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Shutdown flushes and stops every installed provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdownFuncs {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
