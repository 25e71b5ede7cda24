package graph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph queries.
var (
	// ErrNodeNotFound indicates an id has no registered payload.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrOptionViolation is returned when an invalid traversal Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// DefaultWeight is used by AddEdge when no WithWeight option is given.
const DefaultWeight = 1.0

// Edge is one directed adjacency entry: the neighbor id and the edge weight.
// An undirected edge is stored as two Edge values, one per endpoint.
type Edge struct {
	To     int
	Weight float64
}

// MSTEdge is an edge accepted into a minimum spanning tree.
type MSTEdge struct {
	From   int
	To     int
	Weight float64
}

// Graph is a weighted graph over small caller-assigned integer ids.
//
// Payloads and adjacency are kept in separate maps: an id may have adjacency
// without a payload when it was only ever named by AddEdge. order records the
// sequence in which ids first received an adjacency entry.
//
// Graph performs no locking. Callers that mutate from several goroutines
// must serialize access themselves.
type Graph[T any] struct {
	payloads  map[int]T
	adjacency map[int][]Edge
	order     []int
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight   float64
	directed bool
}

// WithWeight sets the edge weight (default DefaultWeight).
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WithDirected stores only a→b and skips the mirror entry.
func WithDirected() EdgeOption {
	return func(c *edgeConfig) { c.directed = true }
}

// Option configures BFS/DFS traversal.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// traversal runs.
type Option func(*TraversalOptions)

// TraversalOptions holds parameters and callbacks for BFS and DFS.
type TraversalOptions struct {
	// Ctx allows cancellation; checked once per dequeued/popped node.
	Ctx context.Context

	// OnVisit is called when a node is visited. A non-nil error aborts the
	// traversal; the node is already recorded in Order.
	OnVisit func(id, depth int) error

	// MaxDepth, if >= 0, stops exploring beyond this depth. -1 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns background context, no hook and no depth limit.
func DefaultOptions() TraversalOptions {
	return TraversalOptions{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: -1,
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *TraversalOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook; returning an error stops the traversal.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *TraversalOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits traversal depth. 0 visits only the start node.
// A negative depth is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *TraversalOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) (TraversalOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Walk holds the id-level outcome of a traversal:
//   - Order: ids in visit sequence.
//   - Depth: id → distance in edges from the start along the traversal tree.
//   - Parent: id → predecessor in the traversal tree (start has none).
type Walk struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

func newWalk(n int) *Walk {
	return &Walk{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
}

// PathTo reconstructs the traversal-tree path from the start to dest.
func (w *Walk) PathTo(dest int) ([]int, error) {
	if _, ok := w.Depth[dest]; !ok {
		return nil, fmt.Errorf("graph: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
