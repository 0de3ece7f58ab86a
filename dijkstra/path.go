package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/adp/core"
)

// ShortestPath returns the vertex ids of the shortest path from the last
// Dijkstra source to target, source first. It reads the predecessor links
// left by Dijkstra; a target that was not reached has none, so the result
// is just [target].
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrVertexNotFound if target is absent.
//
// Complexity: O(path length).
func ShortestPath(g *core.Graph, target int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v, err := g.Vertex(target)
	if err != nil {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}

	path := []int{v.ID}
	// a predecessor chain never repeats, so it is at most V long
	for steps := g.VertexCount(); steps > 0; steps-- {
		prev, ok := v.Predecessor()
		if !ok {
			break
		}
		if v, err = g.Vertex(prev); err != nil {
			break
		}
		path = append(path, v.ID)
	}
	slices.Reverse(path)

	return path, nil
}

// Distances returns a snapshot of every vertex's Distance after the last
// Dijkstra run. Unreached vertices map to core.Infinity.
func Distances(g *core.Graph) map[int]int64 {
	if g == nil {
		return nil
	}
	out := make(map[int]int64, g.VertexCount())
	for _, id := range g.Vertices() {
		v, _ := g.Vertex(id)
		out[id] = v.Distance
	}

	return out
}
