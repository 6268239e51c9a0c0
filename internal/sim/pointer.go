package sim

// Pointer input arrives in pixel coordinates relative to the surface origin.

// Click handles a completed click. In obstacle mode a click adds an obstacle
// of the current radius; with remove held it removes the first obstacle
// under the pointer and falls back to adding one when nothing was hit.
// Outside obstacle mode it injects a ripple unless the point is covered by
// an obstacle.
func (d *Driver) Click(x, y float64, obstacleMode, remove bool) {
	if obstacleMode {
		if remove && d.obstacles.RemoveAt(x, y) {
			return
		}
		d.addObstacle(x, y)
		return
	}
	if d.obstacles.Contains(x, y) {
		return
	}
	d.grid.InjectRipple(x, y, d.params.Amplitude)
}

// Press starts an obstacle stroke at its first point. Unlike Click, a
// removing press that hits nothing leaves the field alone.
func (d *Driver) Press(x, y float64, remove bool) {
	d.drawing = true
	d.brush(x, y, remove)
}

// Drag continues an obstacle stroke started by Press.
func (d *Driver) Drag(x, y float64, remove bool) {
	if !d.drawing {
		return
	}
	d.brush(x, y, remove)
}

// Release ends the current stroke.
func (d *Driver) Release() { d.drawing = false }

// Drawing reports whether a stroke is in progress.
func (d *Driver) Drawing() bool { return d.drawing }

func (d *Driver) brush(x, y float64, remove bool) {
	if remove {
		d.obstacles.RemoveAt(x, y)
		return
	}
	d.addObstacle(x, y)
}

func (d *Driver) addObstacle(x, y float64) {
	d.obstacles.Add(x, y, float64(d.params.ObstacleRadius))
}
