// Package graph provides a weighted graph over small caller-assigned integer
// ids, with breadth-first and depth-first traversal and Prim's minimum
// spanning tree.
//
// What
//
//   - A registry mapping id → payload (any type T) and a separate adjacency
//     map id → ordered list of (neighbor, weight) entries.
//   - AddEdge appends a→b and, by default, the mirror b→a with the same weight.
//     Ids first named by AddEdge get adjacency but no payload.
//   - BFS / DFS return payloads in visit order. BreadthFirst / DepthFirst
//     return the id-level Walk (Order, Depth, Parent) with PathTo.
//   - PrimMST grows a spanning tree from the first registered id and returns
//     the accepted (from, to, weight) edges in acceptance order.
//
// Failure semantics
//
//   - Traversal or MST from an id with no adjacency entry returns an empty
//     result, not an error.
//   - Payload on an id without a payload returns ErrNodeNotFound; BFS/DFS
//     surface the same error if such an id is reached.
//   - Negative WithMaxDepth returns ErrOptionViolation.
//
// Determinism
//
//	Neighbors are kept in insertion order, BFS enqueues and DFS descends in
//	that order, and the Prim frontier is ordered by (weight, from, to), so
//	results are reproducible whenever weights tie.
//
// Complexity (V = ids, E = directed entries)
//
//   - BFS / DFS: O(V + E) time, O(V) memory (DFS stack may hold O(E) frames).
//   - PrimMST:   O(E log E) time, O(E) memory.
//
// Graph performs no internal locking; see the Graph type.
package graph
