package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/prim_kruskal"
)

// mediumGraph builds a connected graph of n vertices with uniform float
// weights in [1,100): a random spanning tree plus G(n,p) extras.
func mediumGraph(n int, p float64, seed int64) *core.Graph[string, float64] {
	return builder.MustBuild[float64](
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 100)},
		builder.RandomConnected(n, p))
}

// isolated builds n ≥ 1 unconnected vertices labeled "0".."n-1".
func isolated(n int) *core.Graph[string, int] {
	return builder.MustBuild[int](nil, builder.RandomSparse(n, 0))
}

// uniqueEdges returns each undirected edge once (U < V).
func uniqueEdges[W any](g *core.Graph[string, W]) []core.Edge[W] {
	var out []core.Edge[W]
	for u := 0; u < g.VertexCount(); u++ {
		adj, _ := g.Edges(u)
		for _, e := range adj {
			if e.U < e.V {
				out = append(out, e)
			}
		}
	}
	return out
}

// allSpanningTrees enumerates every (V-1)-subset of edges that forms a tree.
func allSpanningTrees(g *core.Graph[string, int]) [][]core.Edge[int] {
	edges := uniqueEdges(g)
	k := g.VertexCount() - 1
	var trees [][]core.Edge[int]
	pick := make([]core.Edge[int], 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(pick) == k {
			if prim_kruskal.IsTree(g, pick) {
				trees = append(trees, append([]core.Edge[int](nil), pick...))
			}
			return
		}
		for i := start; i < len(edges); i++ {
			pick = append(pick, edges[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)
	return trees
}

func TestJarnik_Errors(t *testing.T) {
	_, err := prim_kruskal.Jarnik[string, int](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, err = prim_kruskal.Kruskal[string, int](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	g := isolated(3)
	_, err = prim_kruskal.Jarnik(g, prim_kruskal.WithStart(-1))
	assert.ErrorIs(t, err, prim_kruskal.ErrOptionViolation)
	_, err = prim_kruskal.Jarnik(g, prim_kruskal.WithStart(5))
	assert.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, _, err = prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrOptionViolation)
}

func TestJarnik_EmptyAndSingle(t *testing.T) {
	mst, err := prim_kruskal.Jarnik(core.NewGraph[string, int]())
	require.NoError(t, err)
	assert.Empty(t, mst)

	one := isolated(1)
	mst, err = prim_kruskal.Jarnik(one)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.True(t, prim_kruskal.IsTree(one, mst))
	assert.False(t, prim_kruskal.IsSpanningTree(one, mst))
}

func TestJarnik_CompleteFour(t *testing.T) {
	// distinct weights 4, 7, 12, 19, 28, 39 in edge emission order
	w := 0
	squares := builder.WithWeightFn(func(*rand.Rand) float64 {
		w++
		return float64(w*w + 3)
	})
	g := builder.MustBuild[int]([]builder.BuilderOption{squares}, builder.Complete(4))

	trees := allSpanningTrees(g)
	require.Len(t, trees, 16, "Cayley: K4 has 4^(4-2) spanning trees")
	best := core.TotalWeight(trees[0])
	for _, tr := range trees[1:] {
		best = min(best, core.TotalWeight(tr))
	}

	mst, err := prim_kruskal.Jarnik(g)
	require.NoError(t, err)
	assert.Len(t, mst, 3)
	assert.True(t, prim_kruskal.IsSpanningTree(g, mst))
	assert.True(t, prim_kruskal.IsTree(g, mst))
	assert.Equal(t, best, core.TotalWeight(mst))
}

func TestJarnik_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(5)
		g, err := builder.BuildGraph[int](
			[]builder.BuilderOption{builder.WithRand(rng), builder.WithIntRangeWeight(1, 30)},
			builder.RandomConnected(n, 0.6))
		require.NoError(t, err)

		start := rng.Intn(n)
		mst, err := prim_kruskal.Jarnik(g, prim_kruskal.WithStart(start), prim_kruskal.WithRequireConnected())
		require.NoError(t, err)
		require.Len(t, mst, n-1)
		require.True(t, prim_kruskal.IsTree(g, mst), "trial %d: %v", trial, mst)

		got := core.TotalWeight(mst)
		for _, tr := range allSpanningTrees(g) {
			assert.LessOrEqual(t, got, core.TotalWeight(tr), "trial %d", trial)
		}
	}
}

func TestJarnik_Disconnected(t *testing.T) {
	g := isolated(5)
	require.NoError(t, g.AddEdgeByIndices(0, 1, 4))
	require.NoError(t, g.AddEdgeByIndices(1, 2, 2))
	require.NoError(t, g.AddEdgeByIndices(0, 2, 9))
	require.NoError(t, g.AddEdgeByIndices(3, 4, 1))

	mst, err := prim_kruskal.Jarnik(g)
	require.NoError(t, err)
	assert.Len(t, mst, 2, "partial tree of the start component")
	assert.False(t, prim_kruskal.IsSpanningTree(g, mst))
	assert.Equal(t, 6, core.TotalWeight(mst))

	mst, err = prim_kruskal.Jarnik(g, prim_kruskal.WithStart(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge[int]{{U: 3, V: 4, Weight: 1}}, mst)

	_, err = prim_kruskal.Jarnik(g, prim_kruskal.WithRequireConnected())
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestJarnik_SelfLoopsAndParallelEdges(t *testing.T) {
	g := isolated(3)
	require.NoError(t, g.AddEdgeByIndices(0, 0, 0))
	require.NoError(t, g.AddEdgeByIndices(0, 1, 7))
	require.NoError(t, g.AddEdgeByIndices(0, 1, 2))
	require.NoError(t, g.AddEdgeByIndices(1, 2, 3))

	mst, err := prim_kruskal.Jarnik(g)
	require.NoError(t, err)
	assert.Equal(t, 5, core.TotalWeight(mst))
	assert.True(t, prim_kruskal.IsTree(g, mst))
}

func TestIsTree_RejectsCycleAndWrongCount(t *testing.T) {
	g := isolated(4)
	cycle := []core.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}
	assert.False(t, prim_kruskal.IsTree(g, cycle))

	spanningNotTree := []core.Edge[int]{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, {U: 2, V: 3}}
	assert.True(t, prim_kruskal.IsSpanningTree(g, spanningNotTree))
	assert.False(t, prim_kruskal.IsTree(g, spanningNotTree))
}

func TestKruskal_AgreesWithJarnik(t *testing.T) {
	g := mediumGraph(60, 0.1, 42)

	mstJ, totalJ, err := prim_kruskal.Compute(g)
	require.NoError(t, err)
	mstK, totalK, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
	require.NoError(t, err)

	assert.Len(t, mstJ, 59)
	assert.Len(t, mstK, 59)
	assert.InDelta(t, totalK, totalJ, 1e-9)
}

func TestIsSpanningTree_RejectsEndpointsOutsideGraph(t *testing.T) {
	g := isolated(2)
	require.NoError(t, g.AddEdgeByIndices(0, 1, 1))

	// two distinct endpoints, but vertex 1 is never touched
	beyond := []core.Edge[int]{{U: 0, V: 99}}
	assert.False(t, prim_kruskal.IsSpanningTree(g, beyond))
	assert.False(t, prim_kruskal.IsTree(g, beyond))

	negative := []core.Edge[int]{{U: -1, V: 1}}
	assert.False(t, prim_kruskal.IsSpanningTree(g, negative))
	assert.False(t, prim_kruskal.IsTree(g, negative))

	assert.True(t, prim_kruskal.IsSpanningTree(g, []core.Edge[int]{{U: 0, V: 1}}))
}

func TestKruskal_IgnoresDescendingDirectedEdges(t *testing.T) {
	g := isolated(3)
	require.NoError(t, g.AddDirectedEdge(2, 1, 3))
	require.NoError(t, g.AddDirectedEdge(1, 0, 2))

	mst, err := prim_kruskal.Jarnik(g, prim_kruskal.WithStart(2), prim_kruskal.WithRequireConnected())
	require.NoError(t, err)
	assert.Equal(t, 5, core.TotalWeight(mst))

	_, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}
