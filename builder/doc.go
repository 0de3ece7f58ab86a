// Package builder generates seeded random inputs for the four graph shapes
// accepted by core: edge lists, adjacency lists, weighted adjacency lists and
// adjacency matrices.
//
// Every generator draws numEdges ordered pairs (from, to) with from != to and
// a weight in [1,10] unless WithWeightRange says otherwise. Pairs may repeat;
// a repeated pair in the matrix shape keeps the last weight drawn.
//
// Determinism: the same sizes, options and seed yield identical output.
// Without WithSeed or WithRand the generators use DefaultSeed.
//
//	rows, _ := builder.EdgeList(1000, 5000, builder.WithSeed(42))
//	g := core.NewGraph()
//	_ = g.BuildFromEdgeList(rows)
//
// RandomGraph wraps the same steps and returns the populated *core.Graph.
package builder
