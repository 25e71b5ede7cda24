package graph

import (
	"cmp"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// frontierKey orders candidate edges by weight, then from-id, then to-id.
// The full triple makes the output reproducible when weights tie.
type frontierKey struct {
	weight float64
	from   int
	to     int
}

func compareFrontier(a, b interface{}) int {
	x, y := a.(frontierKey), b.(frontierKey)
	if c := cmp.Compare(x.weight, y.weight); c != 0 {
		return c
	}
	if c := cmp.Compare(x.from, y.from); c != 0 {
		return c
	}

	return cmp.Compare(x.to, y.to)
}

// PrimMST builds a minimum spanning tree with Prim's algorithm, treating the
// graph as undirected and starting from the first registered id.
//
// Returns the accepted edges in acceptance order. On a disconnected graph
// only the start node's component is spanned, so fewer than Order()-1 edges
// come back. An empty graph yields an empty slice.
//
// Complexity: O(E log E) time, O(E) memory for the frontier.
func (g *Graph[T]) PrimMST() []MSTEdge {
	if len(g.order) == 0 {
		return []MSTEdge{}
	}

	return g.PrimMSTFrom(g.order[0])
}

// PrimMSTFrom runs PrimMST from root. An unknown root yields an empty slice.
//
// Steps:
//  1. Mark root included; add its edges to the frontier.
//  2. Remove the minimum (weight, from, to) candidate.
//  3. Discard it if its target is already included; otherwise accept it and
//     add the target's edges towards non-included nodes.
//  4. Repeat until the frontier is empty.
//
// The frontier is an ordered set: identical (weight, from, to) triples,
// e.g. parallel edges of equal weight, collapse into one candidate.
func (g *Graph[T]) PrimMSTFrom(root int) []MSTEdge {
	mst := []MSTEdge{}
	if !g.HasNode(root) {
		return mst
	}

	included := make(map[int]bool, len(g.adjacency))
	frontier := redblacktree.NewWith(compareFrontier)

	included[root] = true
	for _, e := range g.adjacency[root] {
		frontier.Put(frontierKey{weight: e.Weight, from: root, to: e.To}, struct{}{})
	}

	for !frontier.Empty() {
		best := frontier.Left().Key.(frontierKey)
		frontier.Remove(best)

		if included[best.to] {
			continue
		}
		included[best.to] = true
		mst = append(mst, MSTEdge{From: best.from, To: best.to, Weight: best.weight})

		for _, e := range g.adjacency[best.to] {
			if !included[e.To] {
				frontier.Put(frontierKey{weight: e.Weight, from: best.to, to: e.To}, struct{}{})
			}
		}
	}

	return mst
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []MSTEdge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
