package engine_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/neuronet/bfs"
	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/engine"
	"github.com/katalvlaran/neuronet/ingest"
)

func writeEdges(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestEngine_NotLoaded rejects every query before the first load.
func TestEngine_NotLoaded(t *testing.T) {
	e := engine.New()
	ctx := context.Background()

	_, err := e.Degree(1)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.InDegree(1)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.Neighbors(1)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.MaxDegreeNode()
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.TopK(3)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.Statistics()
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.BFS(ctx, 1, 1)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.BFSMany(ctx, []core.NodeID{1}, 1)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	_, err = e.LastLoad()
	assert.ErrorIs(t, err, engine.ErrNotLoaded)
	assert.False(t, e.Loaded())
}

// TestEngine_LoadTriangle walks the basic load and query flow.
func TestEngine_LoadTriangle(t *testing.T) {
	e := engine.New()
	path := writeEdges(t, "1 2\n2 3\n1 3\n")

	st, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, st.NodeCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, int64(212), st.EstimatedMemoryBytes)

	for id, want := range map[core.NodeID]int{1: 2, 2: 1, 3: 0} {
		d, err := e.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, want, d, "degree(%d)", id)
	}
	in, err := e.InDegree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	top, err := e.MaxDegreeNode()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(1), top)

	nbrs, err := e.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3}, nbrs)

	_, err = e.Degree(99)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	res, err := e.BFS(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3}, res.Nodes)
	assert.Equal(t, []core.Edge{{From: 1, To: 2}, {From: 1, To: 3}}, res.Edges)

	_, err = e.BFS(context.Background(), 1, 0)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	rep, err := e.LastLoad()
	require.NoError(t, err)
	assert.Equal(t, path, rep.Source)
	assert.Equal(t, 3, rep.Lines)
	assert.Equal(t, st, rep.Stats)
}

// TestEngine_FailedLoadKeepsSnapshot leaves the previous graph in place.
func TestEngine_FailedLoadKeepsSnapshot(t *testing.T) {
	e := engine.New()
	ctx := context.Background()
	_, err := e.LoadReader(ctx, "first", strings.NewReader("1 2\n"))
	require.NoError(t, err)
	before, err := e.Snapshot()
	require.NoError(t, err)

	_, err = e.Load(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ingest.ErrIO)

	_, err = e.LoadReader(ctx, "empty", strings.NewReader("# nothing\n"))
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	after, err := e.Snapshot()
	require.NoError(t, err)
	assert.Same(t, before, after)
	rep, _ := e.LastLoad()
	assert.Equal(t, "first", rep.Source)
}

// TestEngine_ReloadReplaces swaps the snapshot wholesale.
func TestEngine_ReloadReplaces(t *testing.T) {
	e := engine.New()
	ctx := context.Background()
	_, err := e.LoadReader(ctx, "a", strings.NewReader("1 2\n2 3\n"))
	require.NoError(t, err)

	st, err := e.LoadReader(ctx, "b", strings.NewReader("10 20\nbad\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, st.NodeCount)

	_, err = e.Degree(1)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	d, err := e.Degree(10)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	rep, _ := e.LastLoad()
	assert.Equal(t, 1, rep.Skipped)
}

// TestEngine_Options passes ingest and build options through.
func TestEngine_Options(t *testing.T) {
	e := engine.New(
		engine.WithIngestOptions(ingest.WithExtraColumns()),
		engine.WithBuildOptions(core.WithDedup()),
	)
	_, err := e.LoadReader(context.Background(), "ts", strings.NewReader("1 2 100\n1 2 200\n1 3 300\n"))
	require.NoError(t, err)
	d, err := e.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

// TestEngine_LoadEdges builds from memory and rejects an empty slice.
func TestEngine_LoadEdges(t *testing.T) {
	e := engine.New()
	_, err := e.LoadEdges(context.Background(), "mem", nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	st, err := e.LoadEdges(context.Background(), "mem", []core.Edge{{From: 0, To: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, st.NodeCount)
}

// TestEngine_BFSMany aligns results with starts.
func TestEngine_BFSMany(t *testing.T) {
	e := engine.New(engine.WithBFSConcurrency(2))
	_, err := e.LoadReader(context.Background(), "g", strings.NewReader("1 2\n2 3\n3 4\n5 1\n"))
	require.NoError(t, err)

	res, err := e.BFSMany(context.Background(), []core.NodeID{1, 5, 4, 77}, 2)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, []core.NodeID{1, 2, 3}, res[0].Nodes)
	assert.Equal(t, []core.NodeID{5, 1, 2}, res[1].Nodes)
	assert.Equal(t, []core.NodeID{4}, res[2].Nodes)
	assert.Empty(t, res[3].Nodes)

	_, err = e.BFSMany(context.Background(), []core.NodeID{1}, 0)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.BFSMany(ctx, []core.NodeID{1, 5}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEngine_ConcurrentQueriesDuringReload never observes a partial graph.
func TestEngine_ConcurrentQueriesDuringReload(t *testing.T) {
	e := engine.New()
	ctx := context.Background()
	small := "1 2\n"
	large := "1 2\n1 3\n1 4\n"
	_, err := e.LoadReader(ctx, "small", strings.NewReader(small))
	require.NoError(t, err)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				s, err := e.Snapshot()
				if !assert.NoError(t, err) {
					return
				}
				d, err := s.Degree.Degree(1)
				assert.NoError(t, err)
				// degree and edge count come from the same generation
				assert.Equal(t, s.Stats.EdgeCount, d)
			}
		}()
	}
	for i := 0; i < 50; i++ {
		src := small
		if i%2 == 0 {
			src = large
		}
		_, err := e.LoadReader(ctx, "swap", strings.NewReader(src))
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()
}

// TestEngine_Logs reports load progress through the configured logger.
func TestEngine_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := engine.New(engine.WithLogger(log))
	_, err := e.LoadReader(context.Background(), "logged", strings.NewReader("1 2\nxx\n"))
	require.NoError(t, err)
	_, err = e.BFS(context.Background(), 1, 1)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"graph loaded"`)
	assert.Contains(t, out, `"skipped":1`)
	assert.Contains(t, out, `"msg":"skipping malformed line"`)
	assert.Contains(t, out, `"msg":"bfs complete"`)
}

// TestEngine_LoadSkipsOverlongLine counts a huge line as malformed.
func TestEngine_LoadSkipsOverlongLine(t *testing.T) {
	e := engine.New()
	path := writeEdges(t, "1 2\n"+strings.Repeat("x", 2<<20)+"\n2 3\n")

	st, err := e.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, st.NodeCount)
	assert.Equal(t, 2, st.EdgeCount)

	rep, err := e.LastLoad()
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
	assert.Equal(t, 3, rep.Lines)
}

// findMetric returns the named metric from one collection, if present.
func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

// TestEngine_ProvidersPerEngine reports each engine to its own providers.
func TestEngine_ProvidersPerEngine(t *testing.T) {
	ctx := context.Background()
	for _, edges := range []string{"1 2\n2 3\n1 3\n", "5 6\n"} {
		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		spans := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

		e := engine.New(engine.WithMeterProvider(mp), engine.WithTracerProvider(tp))
		st, err := e.LoadReader(ctx, "mem", strings.NewReader(edges))
		require.NoError(t, err)
		_, err = e.BFS(ctx, 1, 1)
		require.NoError(t, err)

		var rm metricdata.ResourceMetrics
		require.NoError(t, reader.Collect(ctx, &rm))

		m, ok := findMetric(rm, "neuronet_graph_nodes")
		require.True(t, ok, "graph nodes gauge missing")
		gauge, ok := m.Data.(metricdata.Gauge[int64])
		require.True(t, ok)
		require.Len(t, gauge.DataPoints, 1)
		assert.Equal(t, int64(st.NodeCount), gauge.DataPoints[0].Value)

		_, ok = findMetric(rm, "neuronet_load_total")
		assert.True(t, ok, "load counter missing")

		var names []string
		for _, sp := range spans.Ended() {
			names = append(names, sp.Name())
		}
		assert.Contains(t, names, "Engine.Load")
		assert.Contains(t, names, "Engine.BFS")

		require.NoError(t, mp.Shutdown(ctx))
		require.NoError(t, tp.Shutdown(ctx))
	}
}
