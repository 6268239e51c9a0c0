package wave

import (
	"fmt"
	"math"
)

// Grid owns three same-shaped amplitude buffers. Their previous, current and
// next roles are held as indices and rotated once per tick; buffer contents
// are never copied between roles.
type Grid struct {
	size          int
	width, height float64
	cellSize      float64
	bufs          [3][][]float64
	prev, cur, nx int
}

// NewGrid allocates a size×size grid drawn onto a width×height pixel surface.
func NewGrid(width, height float64, size int) (*Grid, error) {
	if size < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrGridTooSmall, size)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %gx%g", ErrParameterBounds, width, height)
	}
	g := &Grid{
		size:     size,
		width:    width,
		height:   height,
		cellSize: width / float64(size),
		prev:     0,
		cur:      1,
		nx:       2,
	}
	for k := range g.bufs {
		g.bufs[k] = newBuffer(size)
	}
	return g, nil
}

func newBuffer(size int) [][]float64 {
	backing := make([]float64, size*size)
	rows := make([][]float64, size)
	for i := range rows {
		rows[i] = backing[i*size : (i+1)*size : (i+1)*size]
	}
	return rows
}

func (g *Grid) Size() int             { return g.size }
func (g *Grid) CellSize() float64     { return g.cellSize }
func (g *Grid) Width() float64        { return g.width }
func (g *Grid) Height() float64       { return g.height }
func (g *Grid) Previous() [][]float64 { return g.bufs[g.prev] }
func (g *Grid) Current() [][]float64  { return g.bufs[g.cur] }
func (g *Grid) Next() [][]float64     { return g.bufs[g.nx] }

// Rotate promotes next to current and current to previous; the old previous
// buffer becomes the scratch space for the following step.
func (g *Grid) Rotate() {
	g.prev, g.cur, g.nx = g.cur, g.nx, g.prev
}

// Reset zeroes all three buffers in place.
func (g *Grid) Reset() {
	for _, buf := range g.bufs {
		for _, row := range buf {
			clear(row)
		}
	}
}

// CellCenter returns the pixel-space centre of cell (i, j).
func (g *Grid) CellCenter(i, j int) (x, y float64) {
	return (float64(j) + 0.5) * g.cellSize, (float64(i) + 0.5) * g.cellSize
}

// CellRect returns the pixel rectangle covered by cell (i, j).
func (g *Grid) CellRect(i, j int) (x, y, w, h float64) {
	return float64(j) * g.cellSize, float64(i) * g.cellSize, g.cellSize, g.cellSize
}

// CellAt returns the cell containing pixel (x, y). The result may lie
// outside the grid.
func (g *Grid) CellAt(x, y float64) (row, col int) {
	return int(math.Floor(y / g.cellSize)), int(math.Floor(x / g.cellSize))
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Interior calls fn for every cell that is not on the border.
func (g *Grid) Interior(fn func(i, j int)) {
	for i := 1; i < g.size-1; i++ {
		for j := 1; j < g.size-1; j++ {
			fn(i, j)
		}
	}
}

// Probe returns the current amplitude at (row, col), or 0 outside the grid.
func (g *Grid) Probe(row, col int) float64 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.bufs[g.cur][row][col]
}
