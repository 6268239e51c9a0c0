package wave

import "math"

// rippleReach is the stamp half-width in cells; rippleFalloff is the distance
// at which the cone reaches zero.
const (
	rippleReach   = 2
	rippleFalloff = 3.0
)

// InjectRipple stamps a 5×5 cone centred on the cell under pixel (x, y) into
// the current buffer. Stamped cells are overwritten, so repeated ripples at
// the same spot do not accumulate.
func (g *Grid) InjectRipple(x, y, amplitude float64) {
	gy, gx := g.CellAt(x, y)
	cur := g.Current()
	for di := -rippleReach; di <= rippleReach; di++ {
		for dj := -rippleReach; dj <= rippleReach; dj++ {
			row, col := gy+di, gx+dj
			if !g.InBounds(row, col) {
				continue
			}
			d := math.Sqrt(float64(di*di + dj*dj))
			cur[row][col] = amplitude * math.Max(0, 1-d/rippleFalloff)
		}
	}
}
