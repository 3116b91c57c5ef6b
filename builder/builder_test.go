// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, order and error sentinels.
package builder_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuronet/builder"
	"github.com/katalvlaran/neuronet/core"
	"github.com/katalvlaran/neuronet/degree"
	"github.com/katalvlaran/neuronet/ingest"
)

func e(u, v core.NodeID) core.Edge { return core.Edge{From: u, To: v} }

// TestConstructors_Shapes runs table-driven checks on each topology.
func TestConstructors_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		opts   []builder.BuilderOption
		wantV  int
		wantE  int
		prefix []core.Edge // leading edges in emission order
	}{
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			prefix: []core.Edge{e(0, 1), e(1, 2), e(2, 3)}},
		{name: "Cycle(3)", ctor: builder.Cycle(3), wantV: 3, wantE: 3,
			prefix: []core.Edge{e(0, 1), e(1, 2), e(2, 0)}},
		{name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			prefix: []core.Edge{e(0, 1), e(0, 2), e(0, 3), e(0, 4)}},
		{name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			prefix: []core.Edge{e(1, 2), e(2, 3), e(3, 4), e(4, 1), e(0, 1)}},
		{name: "Complete(3)", ctor: builder.Complete(3), wantV: 3, wantE: 6,
			prefix: []core.Edge{e(0, 1), e(0, 2), e(1, 0)}},
		{name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			prefix: []core.Edge{e(0, 1), e(0, 3), e(1, 2), e(1, 4), e(2, 5), e(3, 4)}},
		{name: "Path(3) bidirectional", ctor: builder.Path(3),
			opts: []builder.BuilderOption{builder.WithBidirectional()}, wantV: 3, wantE: 4,
			prefix: []core.Edge{e(0, 1), e(1, 0), e(1, 2), e(2, 1)}},
		{name: "Star(3) offset", ctor: builder.Star(3),
			opts: []builder.BuilderOption{builder.WithIDOffset(100)}, wantV: 3, wantE: 2,
			prefix: []core.Edge{e(100, 101), e(100, 102)}},
		{name: "RandomSparse(4,1)", ctor: builder.RandomSparse(4, 1), wantV: 4, wantE: 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := builder.BuildEdges(tc.opts, tc.ctor)
			require.NoError(t, err)
			require.Len(t, edges, tc.wantE)
			assert.Equal(t, tc.prefix, edges[:len(tc.prefix)])

			g, err := core.Build(edges)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
		})
	}
}

// TestConstructors_Errors checks sentinel errors for invalid parameters.
func TestConstructors_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0)", builder.RandomSparse(0, 0.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(5, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(5, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"negative ids", builder.Path(3), []builder.BuilderOption{
			builder.WithIDScheme(func(i int) core.NodeID { return core.NodeID(i - 1) }),
		}, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildEdges(tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

// TestRandomSparse_Deterministic reproduces edges for a fixed seed.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(50, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(50, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)

	for _, x := range a {
		assert.NotEqual(t, x.From, x.To, "self-loop without WithLoops")
	}

	none, err := builder.BuildEdges(nil, builder.RandomSparse(10, 0))
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestRandomSparse_BidirectionalSymmetric mirrors every sampled edge.
func TestRandomSparse_BidirectionalSymmetric(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildEdges(
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithBidirectional()},
		builder.RandomSparse(30, 0.2),
	)
	require.NoError(t, err)
	set := map[core.Edge]int{}
	for _, x := range edges {
		set[x]++
	}
	for x := range set {
		assert.Equal(t, set[x], set[e(x.To, x.From)], "edge %v not mirrored", x)
	}
}

// TestBuildGraph_StarHubIsCritical composes constructors into a graph.
func TestBuildGraph_StarHubIsCritical(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Star(10), builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
	assert.Equal(t, 11, g.EdgeCount())

	ix, err := degree.New(g)
	require.NoError(t, err)
	top, err := ix.MaxDegreeNode()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), top)
	assert.Equal(t, 10, ix.MaxDegree())
}

// TestWriteFile_RoundTrip writes plain and gzip files that ingest reads back.
func TestWriteFile_RoundTrip(t *testing.T) {
	t.Parallel()

	edges, err := builder.BuildEdges(nil, builder.Cycle(5))
	require.NoError(t, err)

	for _, name := range []string{"cycle.txt", "cycle.txt.gz"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, builder.WriteFile(path, edges, "Cycle(5)\ngenerated"))
		res, err := ingest.ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, edges, res.Edges, name)
		assert.Equal(t, 2, res.Comments, name)
	}
}

// TestWriteEdgeList_Format pins the text layout.
func TestWriteEdgeList_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, builder.WriteEdgeList(&buf, []core.Edge{e(1, 2), e(30, 4)}, "demo"))
	assert.Equal(t, "# demo\n1\t2\n30\t4\n", buf.String())
}
