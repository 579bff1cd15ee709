package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/prim_kruskal"
	"github.com/katalvlaran/lvsearch/search"
)

// undirectedEdges counts each stored undirected edge once.
func undirectedEdges[W any](g *core.Graph[string, W]) int {
	return g.EdgeCount() / 2
}

// connected reports whether every vertex is reachable from vertex 0.
func connected[W any](g *core.Graph[string, W]) bool {
	if g.VertexCount() == 0 {
		return true
	}
	res, _ := search.BFS(0,
		func(int) bool { return false },
		func(i int) []int { nbs, _ := g.NeighborIndices(i); return nbs })
	return res.Expanded == g.VertexCount()
}

func TestTopologies_Shape(t *testing.T) {
	tests := []struct {
		name     string
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"Cycle5", builder.Cycle(5), 5, 5},
		{"Path4", builder.Path(4), 4, 3},
		{"Star6", builder.Star(6), 6, 5},
		{"Wheel5", builder.Wheel(5), 5, 8},
		{"Complete4", builder.Complete(4), 4, 6},
		{"Complete1", builder.Complete(1), 1, 0},
		{"Grid3x4", builder.Grid(3, 4), 12, 17},
		{"Grid1x1", builder.Grid(1, 1), 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph[int](nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, undirectedEdges(g))
			assert.True(t, connected(g))
		})
	}
}

func TestTopologies_TooFew(t *testing.T) {
	for name, cons := range map[string]builder.Constructor{
		"Cycle":    builder.Cycle(2),
		"Path":     builder.Path(1),
		"Star":     builder.Star(1),
		"Wheel":    builder.Wheel(3),
		"Complete": builder.Complete(0),
		"Grid":     builder.Grid(0, 3),
		"Sparse":   builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildGraph[int](nil, cons)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph[float64](nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_ComposeIsDisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph[int](nil, builder.Path(2), builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []string{"0", "1", "0", "1", "2"}, g.Labels())
	assert.False(t, connected(g))
}

func TestGrid_Labels(t *testing.T) {
	g := builder.MustBuild[int](nil, builder.Grid(2, 3))
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2"}, g.Labels())

	nbs, err := g.NeighborsOfLabel("1,1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0,1", "1,0", "1,2"}, nbs)

	custom := builder.MustBuild[int]([]builder.BuilderOption{builder.WithPrefixIDs("c")}, builder.Grid(1, 2))
	assert.Equal(t, []string{"c0", "c1"}, custom.Labels())
}

func TestRandom_Validation(t *testing.T) {
	_, err := builder.BuildGraph[int](nil, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph[int](nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph[int](nil, builder.RandomConnected(4, 0.1))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// degenerate probabilities need no RNG
	full, err := builder.BuildGraph[int](nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, undirectedEdges(full))
	empty, err := builder.BuildGraph[int](nil, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestRandom_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(99), builder.WithIntRangeWeight(1, 50)}
	a := builder.MustBuild[int](opts, builder.RandomConnected(12, 0.2))
	b := builder.MustBuild[int]([]builder.BuilderOption{builder.WithSeed(99), builder.WithIntRangeWeight(1, 50)},
		builder.RandomConnected(12, 0.2))
	assert.Equal(t, a.String(), b.String())

	for u := 0; u < a.VertexCount(); u++ {
		ea, _ := a.Edges(u)
		eb, _ := b.Edges(u)
		assert.Equal(t, ea, eb)
	}
}

func TestRandomConnected_AlwaysSpans(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(15)
		g, err := builder.BuildGraph[float64](
			[]builder.BuilderOption{builder.WithRand(rng), builder.WithUniformWeight(1, 10)},
			builder.RandomConnected(n, 0.1))
		require.NoError(t, err)
		assert.True(t, connected(g), "trial %d n=%d", trial, n)

		mst, err := prim_kruskal.Jarnik(g, prim_kruskal.WithRequireConnected())
		require.NoError(t, err)
		assert.Len(t, mst, n-1)
	}
}

func TestWeights(t *testing.T) {
	g := builder.MustBuild[float64]([]builder.BuilderOption{builder.WithConstantWeight(2.5)}, builder.Cycle(3))
	edges, err := g.Edges(0)
	require.NoError(t, err)
	for _, e := range edges {
		assert.Equal(t, 2.5, e.Weight)
	}

	def := builder.MustBuild[int](nil, builder.Path(3))
	assert.Equal(t, 2, core.TotalWeight(mustEdges(t, def, 1)))

	ranged := builder.MustBuild[int]([]builder.BuilderOption{builder.WithSeed(1), builder.WithIntRangeWeight(3, 4)},
		builder.Complete(6))
	for u := 0; u < ranged.VertexCount(); u++ {
		for _, e := range mustEdges(t, ranged, u) {
			assert.GreaterOrEqual(t, e.Weight, 3)
			assert.LessOrEqual(t, e.Weight, 4)
		}
	}
}

func mustEdges[W any](t *testing.T, g *core.Graph[string, W], u int) []core.Edge[W] {
	t.Helper()
	edges, err := g.Edges(u)
	require.NoError(t, err)
	return edges
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "123", builder.DefaultIDFn(123))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v7", builder.PrefixIDFn("v")(7))
	assert.Equal(t, "2,1", builder.GridIDFn(4)(9))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.IntRangeWeightFn(-1, 4) })
}

func TestWeightFns_NilRNGFallback(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 9)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.IntRangeWeightFn(3, 9)(nil))
	assert.Equal(t, 4.0, builder.UniformWeightFn(4, 4)(rand.New(rand.NewSource(1))))
}
