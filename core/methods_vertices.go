// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns ids sorted ascending.
package core

import (
	"fmt"
	"slices"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = newVertex(id)
}

// HasVertex reports whether the graph contains a vertex with the given id.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex with the given id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) Vertex(id int) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return v, nil
}

// RemoveVertex deletes the vertex and every edge, in any other vertex's
// list, that points at it. Removing an absent vertex is a no-op.
//
// Implementation:
//   - Stage 1: Return early if id is absent.
//   - Stage 2: Filter every other vertex's edge list in place.
//   - Stage 3: Drop the vertex itself together with its own edges.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id int) {
	if _, ok := g.vertices[id]; !ok {
		return
	}
	for vid, v := range g.vertices {
		if vid == id {
			continue
		}
		v.edges = slices.DeleteFunc(v.edges, func(e *Edge) bool { return e.To == id })
	}
	delete(g.vertices, id)
}

// Vertices returns all vertex ids sorted ascending.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// ResetSearch sets every vertex to Distance = Infinity with no predecessor.
//
// Complexity: O(V).
func (g *Graph) ResetSearch() {
	for _, v := range g.vertices {
		v.Distance = Infinity
		v.ClearPredecessor()
	}
}
