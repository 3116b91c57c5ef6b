// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// instrumentationName scopes the engine's tracer and meter.
const instrumentationName = "neuronet.engine"

// instruments holds the tracer and metric instruments of one Engine.
// They are bound to the providers the Engine was constructed with, so an
// Engine built after a provider swap reports to the new provider.
type instruments struct {
	tracer trace.Tracer

	loadLatency  metric.Float64Histogram
	loadTotal    metric.Int64Counter
	linesSkipped metric.Int64Counter
	nodesLoaded  metric.Int64Gauge
	edgesLoaded  metric.Int64Gauge
	queryLatency metric.Float64Histogram
	bfsVisited   metric.Int64Histogram
}

// newInstruments creates every instrument from mp and the tracer from tp.
func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (*instruments, error) {
	meter := mp.Meter(instrumentationName)
	in := &instruments{tracer: tp.Tracer(instrumentationName)}
	var err error

	in.loadLatency, err = meter.Float64Histogram(
		"neuronet_load_duration_seconds",
		metric.WithDescription("Duration of graph load operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	in.loadTotal, err = meter.Int64Counter(
		"neuronet_load_total",
		metric.WithDescription("Total number of graph load operations"),
	)
	if err != nil {
		return nil, err
	}

	in.linesSkipped, err = meter.Int64Counter(
		"neuronet_lines_skipped_total",
		metric.WithDescription("Malformed input lines skipped during loads"),
	)
	if err != nil {
		return nil, err
	}

	in.nodesLoaded, err = meter.Int64Gauge(
		"neuronet_graph_nodes",
		metric.WithDescription("Node count of the current snapshot"),
	)
	if err != nil {
		return nil, err
	}

	in.edgesLoaded, err = meter.Int64Gauge(
		"neuronet_graph_edges",
		metric.WithDescription("Edge count of the current snapshot"),
	)
	if err != nil {
		return nil, err
	}

	in.queryLatency, err = meter.Float64Histogram(
		"neuronet_query_duration_seconds",
		metric.WithDescription("Duration of graph query operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	in.bfsVisited, err = meter.Int64Histogram(
		"neuronet_bfs_visited_nodes",
		metric.WithDescription("Nodes discovered per BFS"),
	)
	if err != nil {
		return nil, err
	}

	return in, nil
}

// noopInstruments never fails; used when the configured providers reject
// an instrument.
func noopInstruments() *instruments {
	in, _ := newInstruments(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	return in
}

// recordLoad records metrics for a load operation.
func (in *instruments) recordLoad(ctx context.Context, duration time.Duration, rep *LoadReport, success bool) {
	attrs := metric.WithAttributes(attribute.Bool("success", success))
	in.loadLatency.Record(ctx, duration.Seconds(), attrs)
	in.loadTotal.Add(ctx, 1, attrs)

	if success && rep != nil {
		in.linesSkipped.Add(ctx, int64(rep.Skipped))
		in.nodesLoaded.Record(ctx, int64(rep.Stats.NodeCount))
		in.edgesLoaded.Record(ctx, int64(rep.Stats.EdgeCount))
	}
}

// recordQuery records metrics for a query operation.
func (in *instruments) recordQuery(ctx context.Context, queryType string, duration time.Duration, err error) {
	in.queryLatency.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("query_type", queryType),
			attribute.Bool("success", err == nil),
		),
	)
}

// recordBFS records the size of one traversal.
func (in *instruments) recordBFS(ctx context.Context, maxDepth, visited int) {
	in.bfsVisited.Record(ctx, int64(visited), metric.WithAttributes(attribute.Int("max_depth", maxDepth)))
}

// startLoadSpan creates a span for a load operation.
func (in *instruments) startLoadSpan(ctx context.Context, source string) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, "Engine.Load",
		trace.WithAttributes(attribute.String("graph.source", source)),
	)
}

// setLoadSpanResult sets the result attributes on a load span.
func setLoadSpanResult(span trace.Span, rep *LoadReport) {
	span.SetAttributes(
		attribute.Int("graph.node_count", rep.Stats.NodeCount),
		attribute.Int("graph.edge_count", rep.Stats.EdgeCount),
		attribute.Int("graph.lines_skipped", rep.Skipped),
		attribute.Int64("graph.estimated_bytes", rep.Stats.EstimatedMemoryBytes),
	)
}

// startQuerySpan creates a span for a query operation.
func (in *instruments) startQuerySpan(ctx context.Context, queryType string, node int64) (context.Context, trace.Span) {
	return in.tracer.Start(ctx, "Engine."+queryType,
		trace.WithAttributes(
			attribute.String("graph.query_type", queryType),
			attribute.Int64("graph.node_id", node),
		),
	)
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
