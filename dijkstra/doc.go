// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on core.Graph with non-negative int64 edge weights.
//
// Overview:
//
//   - Dijkstra(g, start) writes its result into the graph itself: every
//     vertex gets a Distance (core.Infinity when unreached) and a predecessor
//     id on one shortest path back to start.
//   - ShortestPath(g, target) follows those predecessor ids and returns the
//     path source-first. An unreached target yields [target].
//   - Distances(g) snapshots the distances into a map.
//
// Key features:
//
//   - MaxDistance: stop expanding beyond a distance cap.
//   - InfEdgeThreshold: treat any edge with weight ≥ threshold as impassable.
//   - Lazy decrease-key: an improved vertex is pushed again and the stale
//     entry is skipped when popped, using the stable pqueue.Queue.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) worst-case queue entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: start (or ShortestPath target) not in the graph.
//   - ErrNegativeWeight: any negative edge, detected by an O(E) pre-scan
//     before any vertex state is modified.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from the option
//     constructors on invalid values.
//
// Thread safety:
//
//   - Dijkstra mutates the vertices of g; do not run it concurrently with
//     other readers or writers of the same graph.
package dijkstra
