// Package builder constructs deterministic graph topologies for tests,
// benchmarks and examples.
//
// A Constructor adds nodes and edges to a *graph.Graph[int] whose payloads are
// the node ids. Build creates the graph, resolves the options and applies the
// constructors in order:
//
//	g, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.Grid(3, 4),
//	)
//
// Node ids start at 0 and every constructor numbers its nodes row-major or
// in ring order, so equal inputs always produce equal graphs. Randomized
// constructors require WithSeed or WithRand.
package builder
