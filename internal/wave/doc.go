// Package wave implements the 2D transverse wave engine.
//
// A [Grid] holds three amplitude buffers whose previous/current/next roles
// rotate every tick. One tick is:
//
//	grid.Step(obstacles, params)      // interior cells only
//	params.Boundary.Apply(grid.Next()) // outer ring
//	// read metrics from grid.Next()
//	grid.Rotate()
//
// [ObstacleField] holds circular obstacles in pixel space; cells whose centre
// falls inside one are pinned to zero. [Boundary] is a closed set of edge
// policies: [Absorbing], [Reflecting] and [Periodic].
//
// # Coordinates
//
// Callers work in pixel space. With cellSize = width/size, cell (i, j)
// covers [j·cellSize, (j+1)·cellSize) × [i·cellSize, (i+1)·cellSize).
//
// # Thread Safety
//
// Grid and ObstacleField are NOT safe for concurrent use. A single goroutine
// steps, mutates obstacles and reads buffers between ticks.
package wave
