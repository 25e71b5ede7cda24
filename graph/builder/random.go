package builder

import (
	"fmt"

	"github.com/ObakengPitse/municipal-issue-reporter/graph"
)

const minRandomSparseVertices = 1

// RandomSparse adds n nodes and keeps each pair i<j with probability p
// (Erdős–Rényi G(n, p)). Pairs are drawn in lexicographic order, so a given
// seed always yields the same graph. p of 0 or 1 needs no random source.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == 1 || (p > 0 && cfg.rng.Float64() < p) {
					cfg.edge(g, i, j)
				}
			}
		}

		return nil
	}
}

// Connected adds a spanning path over n nodes and then extra random edges
// between arbitrary pairs, self-loops included.
func Connected(n, extra int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("Connected: n=%d < min=%d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if extra > 0 && cfg.rng == nil {
			return fmt.Errorf("Connected: %w", ErrNeedRandSource)
		}
		if err := Path(n)(g, cfg); err != nil {
			return fmt.Errorf("Connected: %w", err)
		}
		for k := 0; k < extra; k++ {
			cfg.edge(g, cfg.rng.Intn(n), cfg.rng.Intn(n))
		}

		return nil
	}
}
