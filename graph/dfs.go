package graph

import "fmt"

// DFS returns the payloads reachable from start in depth-first preorder,
// following each node's outgoing edges in insertion order.
// An unknown start yields an empty slice and no error.
func (g *Graph[T]) DFS(start int, opts ...Option) ([]T, error) {
	w, err := g.DepthFirst(start, opts...)
	if err != nil {
		return nil, err
	}

	return g.payloadsOf(w.Order)
}

// DepthFirst runs a depth-first preorder traversal over ids from start.
//
// It uses an explicit stack instead of recursion: neighbors are pushed in
// reverse insertion order and a node is visited when first popped, which
// yields exactly the recursive preorder. A node may be pushed more than once;
// the entry popped first decides its parent and depth.
func (g *Graph[T]) DepthFirst(start int, opts ...Option) (*Walk, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return newWalk(0), nil
	}

	type frame struct {
		id     int
		parent int
		depth  int
		root   bool
	}

	res := newWalk(len(g.adjacency))
	visited := make(map[int]bool, len(g.adjacency))
	stack := []frame{{id: start, root: true}}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.id] {
			continue
		}
		visited[f.id] = true
		res.Depth[f.id] = f.depth
		if !f.root {
			res.Parent[f.id] = f.parent
		}
		res.Order = append(res.Order, f.id)
		if err := o.OnVisit(f.id, f.depth); err != nil {
			return res, fmt.Errorf("graph: OnVisit error at %d: %w", f.id, err)
		}

		if o.MaxDepth >= 0 && f.depth+1 > o.MaxDepth {
			continue
		}
		nbrs := g.adjacency[f.id]
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !visited[nbrs[i].To] {
				stack = append(stack, frame{id: nbrs[i].To, parent: f.id, depth: f.depth + 1})
			}
		}
	}

	return res, nil
}
