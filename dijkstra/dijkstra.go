package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/adp/core"
	"github.com/katalvlaran/adp/pqueue"
)

// Dijkstra computes shortest distances from start to every vertex of g and
// stores them in the graph's vertices: Distance holds the path cost
// (core.Infinity when unreached) and the predecessor links one shortest path
// back to start.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// A failed validation leaves every vertex untouched.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start int, opts ...Option) error {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and start vertex
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: start %d", ErrVertexNotFound, start)
	}

	// 3) Pre-scan all edges to detect negative weights before any state changes.
	for _, e := range g.AllEdges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := &runner{
		g:       g,
		options: cfg,
		visited: make(map[int]bool, g.VertexCount()),
		pq:      pqueue.New[*core.Vertex, int64](pqueue.WithCapacity(g.VertexCount())),
	}
	r.init(start)

	return r.process()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	visited map[int]bool                      // finalized vertices
	pq      *pqueue.Queue[*core.Vertex, int64] // lazy queue, stale entries skipped
}

// init resets every vertex and queues start at distance zero.
func (r *runner) init(start int) {
	r.g.ResetSearch()
	src, _ := r.g.Vertex(start)
	src.Distance = 0
	r.pq.Push(src, 0)
}

// process repeatedly extracts the closest unfinished vertex and relaxes its
// outgoing edges until the queue drains or MaxDistance is exceeded.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, d, _ := r.pq.Pop()

		// Stale entry: u was already finalized with a shorter distance.
		if r.visited[u.ID] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u.ID] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbour of u through u.
func (r *runner) relax(u *core.Vertex) error {
	edges, err := r.g.Edges(u.ID)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %d: %w", u.ID, err)
	}

	for _, e := range edges {
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// pre-scan guarantees this; kept for graphs mutated through shared *Edge values
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, w)
		}
		// u.Distance + w would overflow int64
		if w > core.Infinity-1-u.Distance {
			continue
		}

		newDist := u.Distance + w
		if newDist > r.options.MaxDistance {
			continue
		}

		v, err := r.g.Vertex(e.To)
		if err != nil {
			return fmt.Errorf("dijkstra: edge %d→%d: %w", e.From, e.To, err)
		}
		if newDist >= v.Distance {
			continue
		}
		v.Distance = newDist
		v.SetPredecessor(u.ID)
		r.pq.Push(v, newDist)
	}

	return nil
}
