// Package core provides the in-memory weighted Graph used by the shortest-path
// algorithms in this module.
//
// The Graph G = (V,E) keys vertices by int id. Each vertex owns the list of
// edges leaving it, in insertion order, and carries the mutable search state
// (Distance, predecessor) that dijkstra writes and path reconstruction reads.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Default true. Undirected graphs mirror every added edge and every
//	    removed edge in the opposite endpoint's list.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int)                         // O(1), idempotent
//	RemoveVertex(id int)                      // O(V+E), no-op when absent
//	HasVertex(id int) bool                    // O(1)
//	Vertex(id int) (*Vertex, error)           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight int64)       // O(1), endpoints auto-created
//	RemoveEdge(from, to int)                  // O(deg(from))
//	Edges(id int) ([]*Edge, error)            // O(deg)
//	AllEdges() []*Edge                        // O(V log V + E)
//
//	// Bulk builders (validate the whole input before mutating)
//	BuildFromEdgeList([][]int) error
//	BuildFromAdjacencyList([][]int) error
//	BuildFromWeightedAdjacencyList([][][]int) error
//	BuildFromAdjacencyMatrix([][]int) error
//
//	// Query
//	Vertices() []int                          // ascending
//	VertexCount(), EdgeCount() int
//	String() string                           // one line per vertex
//
//	// Search state
//	ResetSearch()                             // Distance=Infinity, no predecessor
//	Clone() *Graph                            // deep copy of topology and state
//
// Errors:
//
//	ErrVertexNotFound  – missing vertex
//	ErrBadEdgeRow      – malformed edge-list or weighted-adjacency row
//	ErrNonSquareMatrix – adjacency matrix with a row of the wrong length
//
// A Graph is not safe for concurrent use; synchronize externally if needed.
package core
