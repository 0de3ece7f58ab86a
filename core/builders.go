// File: builders.go
// Role: Bulk construction from the four external graph shapes.
//
// Every builder validates its whole input first, so a malformed row leaves
// the graph exactly as it was. Builders add to the existing graph; they do
// not clear it.
package core

import "fmt"

// BuildFromEdgeList adds one edge per row [from, to, weight?]. A missing
// weight defaults to 0; extra columns are ignored.
//
// Errors:
//   - ErrBadEdgeRow if a row holds fewer than two ids.
func (g *Graph) BuildFromEdgeList(rows [][]int) error {
	for i, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("%w: row %d has %d values, need at least 2", ErrBadEdgeRow, i, len(row))
		}
	}
	for _, row := range rows {
		var w int64
		if len(row) > 2 {
			w = int64(row[2])
		}
		g.AddEdge(row[0], row[1], w)
	}

	return nil
}

// BuildFromAdjacencyList treats row i as the neighbours of vertex i and adds
// a zero-weight edge to each. Vertex i is created even when its row is empty.
func (g *Graph) BuildFromAdjacencyList(rows [][]int) error {
	for i, neighbours := range rows {
		g.AddVertex(i)
		for _, to := range neighbours {
			g.AddEdge(i, to, 0)
		}
	}

	return nil
}

// BuildFromWeightedAdjacencyList treats row i as [to, weight] pairs leaving
// vertex i. Vertex i is created even when its row is empty.
//
// Errors:
//   - ErrBadEdgeRow if a pair does not hold exactly two values.
func (g *Graph) BuildFromWeightedAdjacencyList(rows [][][]int) error {
	for i, pairs := range rows {
		for j, p := range pairs {
			if len(p) != 2 {
				return fmt.Errorf("%w: vertex %d pair %d has %d values, need [to, weight]", ErrBadEdgeRow, i, j, len(p))
			}
		}
	}
	for i, pairs := range rows {
		g.AddVertex(i)
		for _, p := range pairs {
			g.AddEdge(i, p[0], int64(p[1]))
		}
	}

	return nil
}

// BuildFromAdjacencyMatrix creates vertices 0..n-1 and adds an i→j edge of
// weight m[i][j] for every non-zero cell.
//
// Errors:
//   - ErrNonSquareMatrix if any row length differs from len(m).
func (g *Graph) BuildFromAdjacencyMatrix(m [][]int) error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i, row := range m {
		for j, w := range row {
			if w != 0 {
				g.AddEdge(i, j, int64(w))
			}
		}
	}

	return nil
}
