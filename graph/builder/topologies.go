package builder

import (
	"fmt"

	"github.com/ObakengPitse/municipal-issue-reporter/graph"
)

const (
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minWheelVertices    = 4
	minCompleteVertices = 1
	minGridSide         = 1
)

// Path adds n nodes linked 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 1; i < n; i++ {
			cfg.edge(g, i-1, i)
		}

		return nil
	}
}

// Cycle adds a ring of n nodes, closing (n-1)-0 last.
func Cycle(n int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 0; i < n; i++ {
			cfg.edge(g, i, (i+1)%n)
		}

		return nil
	}
}

// Star adds a hub 0 joined to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 1; i < n; i++ {
			cfg.edge(g, 0, i)
		}

		return nil
	}
}

// Wheel adds a ring 1..n-1 plus a hub 0 joined to every ring node.
func Wheel(n int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minWheelVertices {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			cfg.edge(g, 1+i, 1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			cfg.edge(g, 0, i)
		}

		return nil
	}
}

// Complete adds K_n: every pair i<j is joined once, in lexicographic order.
func Complete(n int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			cfg.node(g, i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				cfg.edge(g, i, j)
			}
		}

		return nil
	}
}

// Grid adds a rows×cols lattice with id r*cols+c. Each cell links right
// then down.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph[int], cfg config) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("Grid: %dx%d < min=%d: %w", rows, cols, minGridSide, ErrTooFewVertices)
		}
		for i := 0; i < rows*cols; i++ {
			cfg.node(g, i)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					cfg.edge(g, id, id+1)
				}
				if r+1 < rows {
					cfg.edge(g, id, id+cols)
				}
			}
		}

		return nil
	}
}
