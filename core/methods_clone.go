// File: methods_clone.go
// Role: Cloning and clearing graph instances.
package core

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// the search state of every vertex. Mutating the clone never touches g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(WithDirected(g.directed))
	for id, v := range g.vertices {
		cv := &Vertex{
			ID:       v.ID,
			Distance: v.Distance,
			prev:     v.prev,
			hasPrev:  v.hasPrev,
			edges:    make([]*Edge, len(v.edges)),
		}
		for i, e := range v.edges {
			ce := *e
			cv.edges[i] = &ce
		}
		clone.vertices[id] = cv
	}

	return clone
}

// Clear removes every vertex and edge while keeping the configuration.
func (g *Graph) Clear() {
	g.vertices = make(map[int]*Vertex)
}
