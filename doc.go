// Package adp collects three classic data structures and algorithms, each in
// its own subpackage:
//
//	avl/       self-balancing AVL tree over any ordered key type
//	hashtable/ open-addressing hash table with linear probing and tombstones
//	core/      weighted, directed or undirected adjacency-list graph
//	dijkstra/  single-source shortest paths and path reconstruction on core.Graph
//
// Supporting packages:
//
//	pqueue/    stable generic min-priority queue used by dijkstra
//	bfs/       hop-count breadth-first search on core.Graph
//	builder/   seeded random inputs in the four graph shapes
//	dataset/   JSON/YAML dataset loader and writer feeding the structures above
//	cmd/adp    command-line front end (cobra, viper, zerolog)
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.BuildFromEdgeList([][]int{{0, 1, 5}, {1, 2, 3}, {0, 2, 10}})
//	_ = dijkstra.Dijkstra(g, 0)
//	path, _ := dijkstra.ShortestPath(g, 2) // [0 1 2]
//
// Every library package reports failures through package-prefixed sentinel
// errors, wrapped with context and matched with errors.Is. None of them is
// safe for concurrent use; none of them logs.
package adp
