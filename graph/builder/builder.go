package builder

import (
	"fmt"
	"math/rand"

	"github.com/ObakengPitse/municipal-issue-reporter/graph"
)

// Constructor adds one topology to g.
type Constructor func(g *graph.Graph[int], cfg config) error

// Option customizes a build.
type Option func(*config)

// config is passed by value to constructors.
type config struct {
	rng      *rand.Rand
	weightFn func(*rand.Rand) float64
	directed bool
	offset   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: func(*rand.Rand) float64 { return graph.DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed uses a random source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn sets the edge weight generator. It receives the configured
// random source, which may be nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUniformWeight draws integral weights in [lo, hi]. Without a random
// source every edge weighs lo.
func WithUniformWeight(lo, hi int) Option {
	return WithWeightFn(func(r *rand.Rand) float64 {
		if r == nil || hi <= lo {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	})
}

// WithDirected adds every edge in one direction only.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithOffset numbers nodes from offset instead of 0, so several
// constructors can share one graph without colliding.
func WithOffset(offset int) Option {
	return func(c *config) { c.offset = offset }
}

// Build returns a new graph with every constructor applied in order.
func Build(opts []Option, cons ...Constructor) (*graph.Graph[int], error) {
	g := graph.New[int]()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// MustBuild is Build for fixtures; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *graph.Graph[int] {
	g, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

func (c config) node(g *graph.Graph[int], i int) int {
	id := c.offset + i
	g.AddNode(id, id)

	return id
}

func (c config) edge(g *graph.Graph[int], a, b int) {
	opts := []graph.EdgeOption{graph.WithWeight(c.weightFn(c.rng))}
	if c.directed {
		opts = append(opts, graph.WithDirected())
	}
	g.AddEdge(c.offset+a, c.offset+b, opts...)
}
