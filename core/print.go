package core

import (
	"fmt"
	"strings"
)

// String renders one line per vertex in ascending id order, listing its
// edges as (from -> to, weight):
//
//	Vertex 0: (0 -> 1, 4) (0 -> 2, 1)
//	Vertex 1:
func (g *Graph) String() string {
	var b strings.Builder
	for _, id := range g.Vertices() {
		fmt.Fprintf(&b, "Vertex %d:", id)
		for _, e := range g.vertices[id].edges {
			fmt.Fprintf(&b, " (%d -> %d, %d)", e.From, e.To, e.Weight)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
