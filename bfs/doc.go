// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links and visit order.
//
// Edge weights are ignored: Depth counts edges, not cost. Dijkstra reaches
// exactly the vertices BFS visits from the same start (absent a distance
// cap), which makes BFS a cheap reachability check next to the weighted
// search.
//
// Determinism
//
//	Neighbours are enqueued in edge insertion order and vertex ids are
//	plain ints, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// a context error or an OnVisit error
//	}
//	path, err := res.PathTo(7)
package bfs
