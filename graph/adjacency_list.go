package graph

import "fmt"

// New creates an empty Graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{
		payloads:  make(map[int]T),
		adjacency: make(map[int][]Edge),
	}
}

// AddNode registers payload under id, replacing any previous payload,
// and makes sure id has an adjacency entry.
func (g *Graph[T]) AddNode(id int, payload T) {
	g.payloads[id] = payload
	g.ensure(id)
}

// AddEdge appends the directed entry a→b. Unless WithDirected is given, the
// mirror b→a is appended with the same weight.
// Ids not seen before get an adjacency entry but no payload.
func (g *Graph[T]) AddEdge(a, b int, opts ...EdgeOption) {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.ensure(a)
	g.ensure(b)
	g.adjacency[a] = append(g.adjacency[a], Edge{To: b, Weight: cfg.weight})
	if !cfg.directed {
		g.adjacency[b] = append(g.adjacency[b], Edge{To: a, Weight: cfg.weight})
	}
}

func (g *Graph[T]) ensure(id int) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = []Edge{}
	g.order = append(g.order, id)
}

// HasNode reports whether id has an adjacency entry.
func (g *Graph[T]) HasNode(id int) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Payload returns the payload stored for id.
// Ids created only through AddEdge have none and yield ErrNodeNotFound.
func (g *Graph[T]) Payload(id int) (T, error) {
	p, ok := g.payloads[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return p, nil
}

// NodeIDs returns ids in the order they first received an adjacency entry.
func (g *Graph[T]) NodeIDs() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns a copy of id's outgoing entries in insertion order.
func (g *Graph[T]) Neighbors(id int) []Edge {
	nbrs := g.adjacency[id]
	out := make([]Edge, len(nbrs))
	copy(out, nbrs)

	return out
}

// Order returns the number of ids with an adjacency entry.
func (g *Graph[T]) Order() int { return len(g.adjacency) }

// Size returns the number of directed adjacency entries; an undirected edge
// counts twice.
func (g *Graph[T]) Size() int {
	n := 0
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}

	return n
}

// payloadsOf maps a visit order to payloads.
func (g *Graph[T]) payloadsOf(ids []int) ([]T, error) {
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		p, err := g.Payload(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
