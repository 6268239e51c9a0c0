package wave

import (
	"fmt"
	"strings"
)

// Boundary selects how the outer ring of cells is updated after each step.
type Boundary string

const (
	// Absorbing pins every border cell to zero. Unknown values behave the same.
	Absorbing Boundary = "absorbing"
	// Reflecting mirrors the inward neighbour onto each edge (free end).
	Reflecting Boundary = "reflecting"
	// Periodic wraps each edge to the opposite side of the grid.
	Periodic Boundary = "periodic"
)

var boundaries = []Boundary{Absorbing, Reflecting, Periodic}

// Boundaries returns the supported policies.
func Boundaries() []Boundary {
	out := make([]Boundary, len(boundaries))
	copy(out, boundaries)
	return out
}

// ParseBoundary resolves a policy name, case-insensitively.
func ParseBoundary(name string) (Boundary, error) {
	b := Boundary(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range boundaries {
		if b == known {
			return b, nil
		}
	}
	return Absorbing, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// Next cycles through the policies.
func (b Boundary) Next() Boundary {
	for i, known := range boundaries {
		if b == known {
			return boundaries[(i+1)%len(boundaries)]
		}
	}
	return Absorbing
}

func (b Boundary) String() string { return string(b) }

// Apply rewrites the full border of grid, corners included.
func (b Boundary) Apply(grid [][]float64) {
	n := len(grid)
	if n < 3 {
		return
	}
	switch b {
	case Reflecting:
		reflect(grid, n)
	case Periodic:
		wrap(grid, n)
	default:
		absorb(grid, n)
	}
}

func absorb(g [][]float64, n int) {
	last := n - 1
	for i := 0; i < n; i++ {
		g[i][0] = 0
		g[i][last] = 0
		g[0][i] = 0
		g[last][i] = 0
	}
}

func reflect(g [][]float64, n int) {
	last := n - 1
	for i := 1; i < last; i++ {
		g[i][0] = g[i][1]
		g[i][last] = g[i][last-1]
		g[0][i] = g[1][i]
		g[last][i] = g[last-1][i]
	}
	// Corners average the two edge cells beside them, after mirroring.
	g[0][0] = (g[0][1] + g[1][0]) / 2
	g[0][last] = (g[0][last-1] + g[1][last]) / 2
	g[last][0] = (g[last-1][0] + g[last][1]) / 2
	g[last][last] = (g[last-1][last] + g[last][last-1]) / 2
}

// wrap fills each edge from the last interior cell on the opposite side.
func wrap(g [][]float64, n int) {
	last := n - 1
	for i := 1; i < last; i++ {
		g[i][0] = g[i][n-2]
		g[i][last] = g[i][1]
		g[0][i] = g[n-2][i]
		g[last][i] = g[1][i]
	}
	g[0][0] = g[n-2][n-2]
	g[0][last] = g[n-2][1]
	g[last][0] = g[1][n-2]
	g[last][last] = g[1][1]
}
