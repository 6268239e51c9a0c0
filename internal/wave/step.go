package wave

// Step writes the next state of every interior cell into the next buffer.
//
// The update is a damped leapfrog over the 5-point Laplacian:
//
//	next = damping * (2*cur - prev + speed² * L)
//
// Damping scales the whole update rather than only the new term, which
// bleeds energy faster than a physical damper would. Cells whose centre lies
// inside an obstacle are pinned to zero. Border cells are left for the
// boundary policy.
func (g *Grid) Step(obstacles *ObstacleField, p Params) {
	cur, prev, next := g.Current(), g.Previous(), g.Next()
	c2 := p.Speed * p.Speed
	blocked := obstacles != nil && obstacles.Len() > 0

	for i := 1; i < g.size-1; i++ {
		up, row, down := cur[i-1], cur[i], cur[i+1]
		for j := 1; j < g.size-1; j++ {
			if blocked {
				x, y := g.CellCenter(i, j)
				if obstacles.Contains(x, y) {
					next[i][j] = 0
					continue
				}
			}
			lap := down[j] + up[j] + row[j+1] + row[j-1] - 4*row[j]
			next[i][j] = p.Damping * (2*row[j] - prev[i][j] + c2*lap)
		}
	}
}
