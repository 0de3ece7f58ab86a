// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adp/core"
)

// Common vertex ids used across core tests.
const (
	V0 = iota
	V1
	V2
	V3
	V4
)

// targets lists the To ids of the edges leaving id, in stored order.
func targets(t *testing.T, g *core.Graph, id int) []int {
	t.Helper()
	edges, err := g.Edges(id)
	require.NoError(t, err)
	out := make([]int, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.To)
	}

	return out
}

// diamond builds the directed graph 0→1(4) 0→2(1) 2→1(2) 1→3(1) 2→3(5).
func diamond() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(V0, V1, 4)
	g.AddEdge(V0, V2, 1)
	g.AddEdge(V2, V1, 2)
	g.AddEdge(V1, V3, 1)
	g.AddEdge(V2, V3, 5)

	return g
}
