// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges(id) preserves insertion order.
//   - AllEdges() walks vertices in ascending id order.
package core

import (
	"fmt"
	"slices"
)

// AddEdge appends a from→to edge with the given weight, creating missing
// endpoints first. Undirected graphs also append the to→from mirror; a
// self-loop is stored once. Parallel edges are kept.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) {
	g.AddVertex(from)
	g.AddVertex(to)

	src := g.vertices[from]
	src.edges = append(src.edges, &Edge{From: from, To: to, Weight: weight})
	if !g.directed && from != to {
		dst := g.vertices[to]
		dst.edges = append(dst.edges, &Edge{From: to, To: from, Weight: weight})
	}
}

// RemoveEdge removes every from→to edge (and, in undirected graphs, every
// to→from mirror). It is a no-op unless both endpoints exist.
//
// Complexity: O(deg(from)) directed, O(deg(from)+deg(to)) undirected.
func (g *Graph) RemoveEdge(from, to int) {
	src, ok := g.vertices[from]
	if !ok {
		return
	}
	dst, ok := g.vertices[to]
	if !ok {
		return
	}
	src.edges = slices.DeleteFunc(src.edges, func(e *Edge) bool { return e.To == to })
	if !g.directed {
		dst.edges = slices.DeleteFunc(dst.edges, func(e *Edge) bool { return e.To == from })
	}
}

// HasEdge reports whether at least one from→to edge exists.
func (g *Graph) HasEdge(from, to int) bool {
	src, ok := g.vertices[from]
	if !ok {
		return false
	}

	return slices.ContainsFunc(src.edges, func(e *Edge) bool { return e.To == to })
}

// Edges returns the edges leaving id in insertion order. The slice is a
// copy; the *Edge values are shared with the graph.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) Edges(id int) ([]*Edge, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return slices.Clone(v.edges), nil
}

// AllEdges returns every stored edge, grouped by source in ascending id
// order. Undirected edges appear once per direction.
//
// Complexity: O(V log V + E).
func (g *Graph) AllEdges() []*Edge {
	out := make([]*Edge, 0, g.EdgeCount())
	for _, id := range g.Vertices() {
		out = append(out, g.vertices[id].edges...)
	}

	return out
}

// EdgeCount returns the number of stored edges. Undirected edges count once
// per direction, self-loops once.
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for _, v := range g.vertices {
		n += len(v.edges)
	}

	return n
}
