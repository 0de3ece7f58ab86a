// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adp/bfs"
	"github.com/katalvlaran/adp/builder"
	"github.com/katalvlaran/adp/core"
	"github.com/katalvlaran/adp/dijkstra"
)

// fromEdges builds a directed graph from [from, to, weight] rows.
func fromEdges(t *testing.T, rows ...[]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.BuildFromEdgeList(rows))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	assert.ErrorIs(t, dijkstra.Dijkstra(nil, 0), dijkstra.ErrNilGraph)
	_, err := dijkstra.ShortestPath(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	assert.Nil(t, dijkstra.Distances(nil))
}

func TestDijkstra_UnknownStart(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 5})
	err := dijkstra.Dijkstra(g, 99)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "99")
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 2}, []int{1, 2, -1})
	err := dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_NegativeWeightLeavesStateUntouched(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 5}, []int{1, 2, 3})
	require.NoError(t, dijkstra.Dijkstra(g, 0))
	before := dijkstra.Distances(g)

	g.AddEdge(2, 3, -4)
	require.ErrorIs(t, dijkstra.Dijkstra(g, 1), dijkstra.ErrNegativeWeight)
	after := dijkstra.Distances(g)
	delete(after, 3)
	assert.Equal(t, before, after)
}

// Unreachable negative edges are still rejected: the pre-scan covers the
// whole graph, not only what start can reach.
func TestDijkstra_NegativeWeightUnreachable(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 1}, []int{5, 6, -2})
	assert.ErrorIs(t, dijkstra.Dijkstra(g, 0), dijkstra.ErrNegativeWeight)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestDijkstra_EdgeListScenario(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 5}, []int{1, 2, 3}, []int{0, 2, 10})
	require.NoError(t, dijkstra.Dijkstra(g, 0))

	v2, err := g.Vertex(2)
	require.NoError(t, err)
	assert.Equal(t, int64(8), v2.Distance)

	path, err := dijkstra.ShortestPath(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	assert.Equal(t, map[int]int64{0: 0, 1: 5, 2: 8}, dijkstra.Distances(g))
}

func TestDijkstra_SourceHasNoPredecessor(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 5})
	require.NoError(t, dijkstra.Dijkstra(g, 0))

	src, _ := g.Vertex(0)
	_, ok := src.Predecessor()
	assert.False(t, ok)
	path, err := dijkstra.ShortestPath(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

func TestDijkstra_Unreached(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 1}, []int{2, 0, 1})
	require.NoError(t, dijkstra.Dijkstra(g, 0))

	v2, _ := g.Vertex(2)
	assert.Equal(t, core.Infinity, v2.Distance)
	assert.False(t, v2.Reached())

	path, err := dijkstra.ShortestPath(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, path, "unreached target yields itself only")

	_, err = dijkstra.ShortestPath(g, 42)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_RerunResetsState(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 2}, []int{1, 2, 2})
	require.NoError(t, dijkstra.Dijkstra(g, 0))
	require.NoError(t, dijkstra.Dijkstra(g, 1))

	assert.Equal(t, map[int]int64{0: core.Infinity, 1: 0, 2: 2}, dijkstra.Distances(g))
	path, err := dijkstra.ShortestPath(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path, "stale predecessor from the first run must be cleared")
}

func TestDijkstra_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 5)
	require.NoError(t, dijkstra.Dijkstra(g, 2))

	assert.Equal(t, map[int]int64{0: 3, 1: 2, 2: 0}, dijkstra.Distances(g))
	path, err := dijkstra.ShortestPath(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, path)
}

func TestDijkstra_ZeroWeightsAndLoops(t *testing.T) {
	g := fromEdges(t, []int{0, 0, 0}, []int{0, 1}, []int{1, 2}, []int{2, 1, 0})
	require.NoError(t, dijkstra.Dijkstra(g, 0))

	assert.Equal(t, map[int]int64{0: 0, 1: 0, 2: 0}, dijkstra.Distances(g))
	path, err := dijkstra.ShortestPath(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 2}, []int{1, 2, 2}, []int{2, 3, 2})
	require.NoError(t, dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(4)))

	assert.Equal(t, map[int]int64{0: 0, 1: 2, 2: 4, 3: core.Infinity}, dijkstra.Distances(g))
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := fromEdges(t, []int{0, 1, 2}, []int{1, 2, 4}, []int{0, 2, 10}, []int{2, 3, 5})
	require.NoError(t, dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(5)))

	assert.Equal(t, map[int]int64{0: 0, 1: 2, 2: 6, 3: core.Infinity}, dijkstra.Distances(g))
}

func TestDijkstra_HugeWeightsDoNotOverflow(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(0, 1, core.Infinity-1)
	g.AddEdge(1, 2, core.Infinity-1)
	require.NoError(t, dijkstra.Dijkstra(g, 0))

	d := dijkstra.Distances(g)
	assert.Equal(t, core.Infinity-1, d[1])
	assert.Equal(t, core.Infinity, d[2])
}

// ------------------------------------------------------------------------
// 3. Property: agreement with Bellman-Ford on random graphs.
// ------------------------------------------------------------------------

// bellmanFord is a brute-force reference over the same edges.
func bellmanFord(g *core.Graph, start int) map[int]int64 {
	dist := make(map[int]int64)
	for _, id := range g.Vertices() {
		dist[id] = core.Infinity
	}
	dist[start] = 0
	edges := g.AllEdges()
	for i := 0; i < g.VertexCount(); i++ {
		for _, e := range edges {
			if dist[e.From] == core.Infinity {
				continue
			}
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
			}
		}
	}

	return dist
}

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := 1 + r.Intn(12)
		g := core.NewGraph(core.WithDirected(r.Intn(2) == 0))
		for v := 0; v < n; v++ {
			g.AddVertex(v)
		}
		for e := r.Intn(n * 3); e > 0; e-- {
			g.AddEdge(r.Intn(n), r.Intn(n), int64(r.Intn(20)))
		}
		start := r.Intn(n)

		require.NoError(t, dijkstra.Dijkstra(g, start))
		want := bellmanFord(g, start)
		require.Equal(t, want, dijkstra.Distances(g), "round %d", round)

		// every reached path must start at the source and sum to its distance
		for _, id := range g.Vertices() {
			v, _ := g.Vertex(id)
			if !v.Reached() {
				continue
			}
			path, err := dijkstra.ShortestPath(g, id)
			require.NoError(t, err)
			require.Equal(t, start, path[0], "round %d vertex %d", round, id)
			require.Equal(t, v.Distance, pathCost(g, path), "round %d vertex %d", round, id)
		}
	}
}

// pathCost sums the cheapest edge between each consecutive pair.
func pathCost(g *core.Graph, path []int) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		edges, _ := g.Edges(path[i-1])
		best := core.Infinity
		for _, e := range edges {
			if e.To == path[i] && e.Weight < best {
				best = e.Weight
			}
		}
		total += best
	}

	return total
}

// Dijkstra must reach exactly the vertices a breadth-first search reaches,
// and a reached vertex's path can never use fewer edges than the BFS path.
func TestDijkstra_ReachabilityMatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.RandomGraph(builder.ShapeEdgeList, 40, 60, builder.WithSeed(seed))
		require.NoError(t, err)
		start := g.Vertices()[0]

		require.NoError(t, dijkstra.Dijkstra(g, start))
		res, err := bfs.BFS(g, start)
		require.NoError(t, err)

		for _, id := range g.Vertices() {
			v, err := g.Vertex(id)
			require.NoError(t, err)
			require.Equal(t, res.Reached(id), v.Reached(), "seed %d vertex %d", seed, id)
			if !v.Reached() {
				continue
			}
			path, err := dijkstra.ShortestPath(g, id)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(path)-1, res.Depth[id], "seed %d vertex %d", seed, id)
		}
	}
}
