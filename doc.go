// Package reporter is a small toolkit of generic in-memory structures and the
// service-status reporter built on top of them.
//
// Toolkit packages (no logging, no global state, not safe for concurrent
// mutation):
//
//	bst/            unbalanced binary search tree keyed by an int64 extractor
//	avl/            self-balancing AVL tree with the same API
//	minheap/        binary min-heap ordered by an int priority function
//	graph/          weighted adjacency-list graph: BFS, DFS, Prim MST
//	graph/builder/  deterministic topologies for tests and benchmarks
//
// Reporter packages:
//
//	internal/records  issue and event records, YAML snapshot loading
//	internal/status   snapshot index: timeline, priority queue, issue graph
//	internal/events   event search and recommendations
//	internal/config   YAML + environment configuration
//	internal/metrics  Prometheus gauges written for the textfile collector
//	cmd/reporter      the command-line front end
//
// Quick example, a triangle and its spanning tree:
//
//	    A
//	  1/ \3
//	  B───C
//	    2
//
//	g := graph.New[string]()
//	g.AddNode(0, "A"); g.AddNode(1, "B"); g.AddNode(2, "C")
//	g.AddEdge(0, 1, graph.WithWeight(1))
//	g.AddEdge(1, 2, graph.WithWeight(2))
//	g.AddEdge(0, 2, graph.WithWeight(3))
//	g.PrimMST() // [{0 1 1} {1 2 2}]
package reporter
