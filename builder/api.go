// SPDX-License-Identifier: MIT
// Package: adp/builder
//
// api.go: public generators.
//
// Each generator validates (numVertices, numEdges), resolves the config and
// draws numEdges pairs in order, so output depends only on inputs and seed.

package builder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/adp/core"
)

// Shape names one of the four external graph representations.
type Shape string

// Supported shapes; the strings double as CLI flag values.
const (
	ShapeEdgeList              Shape = "edge-list"
	ShapeAdjacencyList         Shape = "adjacency-list"
	ShapeWeightedAdjacencyList Shape = "weighted-adjacency-list"
	ShapeAdjacencyMatrix       Shape = "adjacency-matrix"
)

// Shapes lists every supported Shape.
func Shapes() []Shape {
	return []Shape{ShapeEdgeList, ShapeAdjacencyList, ShapeWeightedAdjacencyList, ShapeAdjacencyMatrix}
}

func validate(method string, numVertices, numEdges int) error {
	if numEdges < 0 {
		return fmt.Errorf("%s: %w: %d", method, ErrBadEdgeCount, numEdges)
	}
	if numVertices < 1 || (numEdges > 0 && numVertices < 2) {
		return fmt.Errorf("%s: %w: %d vertices for %d edges", method, ErrTooFewVertices, numVertices, numEdges)
	}

	return nil
}

// EdgeList returns numEdges rows [from, to, weight].
func EdgeList(numVertices, numEdges int, opts ...BuilderOption) ([][]int, error) {
	if err := validate("EdgeList", numVertices, numEdges); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rows := make([][]int, 0, numEdges)
	for i := 0; i < numEdges; i++ {
		from, to := cfg.pair(numVertices)
		rows = append(rows, []int{from, to, cfg.weight()})
	}

	return rows, nil
}

// AdjacencyList returns numVertices rows; row i lists the unweighted
// neighbours of vertex i.
func AdjacencyList(numVertices, numEdges int, opts ...BuilderOption) ([][]int, error) {
	if err := validate("AdjacencyList", numVertices, numEdges); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rows := make([][]int, numVertices)
	for i := range rows {
		rows[i] = []int{}
	}
	for i := 0; i < numEdges; i++ {
		from, to := cfg.pair(numVertices)
		rows[from] = append(rows[from], to)
	}

	return rows, nil
}

// WeightedAdjacencyList returns numVertices rows; row i holds [to, weight]
// pairs for vertex i.
func WeightedAdjacencyList(numVertices, numEdges int, opts ...BuilderOption) ([][][]int, error) {
	if err := validate("WeightedAdjacencyList", numVertices, numEdges); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rows := make([][][]int, numVertices)
	for i := range rows {
		rows[i] = [][]int{}
	}
	for i := 0; i < numEdges; i++ {
		from, to := cfg.pair(numVertices)
		rows[from] = append(rows[from], []int{to, cfg.weight()})
	}

	return rows, nil
}

// AdjacencyMatrix returns a numVertices x numVertices matrix where 0 means
// no edge. The diagonal is always 0.
func AdjacencyMatrix(numVertices, numEdges int, opts ...BuilderOption) ([][]int, error) {
	if err := validate("AdjacencyMatrix", numVertices, numEdges); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	m := make([][]int, numVertices)
	for i := range m {
		m[i] = make([]int, numVertices)
	}
	for i := 0; i < numEdges; i++ {
		from, to := cfg.pair(numVertices)
		m[from][to] = cfg.weight()
	}

	return m, nil
}

// RandomGraph generates input of the given shape and loads it into a new
// core.Graph through the matching core builder.
func RandomGraph(shape Shape, numVertices, numEdges int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	// reuse the resolved rng so the shape generator sees the same stream
	opts = append(slices.Clip(opts), WithRand(cfg.rng))
	g := core.NewGraph(core.WithDirected(cfg.directed))

	var err error
	switch shape {
	case ShapeEdgeList:
		var rows [][]int
		if rows, err = EdgeList(numVertices, numEdges, opts...); err == nil {
			err = g.BuildFromEdgeList(rows)
		}
	case ShapeAdjacencyList:
		var rows [][]int
		if rows, err = AdjacencyList(numVertices, numEdges, opts...); err == nil {
			err = g.BuildFromAdjacencyList(rows)
		}
	case ShapeWeightedAdjacencyList:
		var rows [][][]int
		if rows, err = WeightedAdjacencyList(numVertices, numEdges, opts...); err == nil {
			err = g.BuildFromWeightedAdjacencyList(rows)
		}
	case ShapeAdjacencyMatrix:
		var m [][]int
		if m, err = AdjacencyMatrix(numVertices, numEdges, opts...); err == nil {
			err = g.BuildFromAdjacencyMatrix(m)
		}
	default:
		return nil, fmt.Errorf("RandomGraph: %w: %q", ErrUnknownShape, shape)
	}
	if err != nil {
		return nil, err
	}

	return g, nil
}
