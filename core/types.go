// File: types.go
// Role: Vertex, Edge, Graph declarations, sentinel errors, NewGraph.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadEdgeRow indicates an edge-list row with fewer than two ids, or a
	// weighted adjacency pair that is not [to, weight].
	ErrBadEdgeRow = errors.New("core: malformed edge row")

	// ErrNonSquareMatrix indicates an adjacency matrix whose rows do not all
	// have the matrix's height as length.
	ErrNonSquareMatrix = errors.New("core: adjacency matrix is not square")
)

// Infinity is the Distance of a vertex no search has reached.
const Infinity int64 = math.MaxInt64

// Edge is a one-way connection leaving From. Undirected graphs store a
// mirrored Edge on the other endpoint.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Vertex is a node of the graph together with its search state.
//
// Distance is Infinity until a search reaches the vertex. The predecessor is
// the id of the vertex a shortest path arrives from; the source and
// unreached vertices have none.
type Vertex struct {
	ID       int
	Distance int64

	edges   []*Edge
	prev    int
	hasPrev bool
}

func newVertex(id int) *Vertex {
	return &Vertex{ID: id, Distance: Infinity}
}

// Predecessor returns the predecessor id and whether one is set.
func (v *Vertex) Predecessor() (int, bool) { return v.prev, v.hasPrev }

// SetPredecessor records id as the vertex a shortest path arrives from.
func (v *Vertex) SetPredecessor(id int) {
	v.prev = id
	v.hasPrev = true
}

// ClearPredecessor drops the predecessor link.
func (v *Vertex) ClearPredecessor() {
	v.prev = 0
	v.hasPrev = false
}

// Reached reports whether the last search assigned a finite distance.
func (v *Vertex) Reached() bool { return v.Distance != Infinity }

// Degree returns the number of edges leaving v.
func (v *Vertex) Degree() int { return len(v.edges) }

// GraphOption configures a Graph at creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true, the default) or
// mirrored on both endpoints (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an adjacency-list graph keyed by int vertex id.
type Graph struct {
	directed bool
	vertices map[int]*Vertex
}

// NewGraph creates an empty Graph. By default the graph is directed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		vertices: make(map[int]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
