package graph

import "fmt"

// BFS returns the payloads reachable from start in breadth-first visit order.
// An unknown start yields an empty slice and no error.
// Returns ErrNodeNotFound if a visited id has no payload, ErrOptionViolation
// for bad options, the context error on cancellation, or a wrapped hook error.
func (g *Graph[T]) BFS(start int, opts ...Option) ([]T, error) {
	w, err := g.BreadthFirst(start, opts...)
	if err != nil {
		return nil, err
	}

	return g.payloadsOf(w.Order)
}

// BreadthFirst runs a breadth-first traversal over ids from start.
// Neighbors are enqueued in insertion order, so the Order is reproducible and
// non-decreasing in Depth.
func (g *Graph[T]) BreadthFirst(start int, opts ...Option) (*Walk, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return newWalk(0), nil
	}

	type item struct {
		id    int
		depth int
	}

	res := newWalk(len(g.adjacency))
	visited := make(map[int]bool, len(g.adjacency))
	queue := []item{{start, 0}}
	visited[start] = true
	res.Depth[start] = 0

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		it := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, it.id)
		if err := o.OnVisit(it.id, it.depth); err != nil {
			return res, fmt.Errorf("graph: OnVisit error at %d: %w", it.id, err)
		}

		nd := it.depth + 1
		if o.MaxDepth >= 0 && nd > o.MaxDepth {
			continue
		}
		for _, e := range g.adjacency[it.id] {
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			res.Parent[e.To] = it.id
			res.Depth[e.To] = nd
			queue = append(queue, item{e.To, nd})
		}
	}

	return res, nil
}
