package wave

// Obstacle is a circle in pixel space inside which the field is held at zero.
type Obstacle struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Contains reports whether (x, y) lies inside or on the circle.
func (o Obstacle) Contains(x, y float64) bool {
	dx, dy := x-o.X, y-o.Y
	return dx*dx+dy*dy <= o.Radius*o.Radius
}

// ObstacleField is an ordered set of obstacles. Order decides which obstacle
// a removal hits when several overlap. Queries are linear in the count.
type ObstacleField struct {
	items []Obstacle
}

func NewObstacleField(obs ...Obstacle) *ObstacleField {
	f := &ObstacleField{items: make([]Obstacle, 0, len(obs))}
	f.items = append(f.items, obs...)
	return f
}

// Add appends an obstacle. Duplicates and overlaps are allowed.
func (f *ObstacleField) Add(x, y, radius float64) {
	f.items = append(f.items, Obstacle{X: x, Y: y, Radius: radius})
}

// RemoveAt deletes the first obstacle, in insertion order, containing (x, y).
// It reports false when no obstacle matched.
func (f *ObstacleField) RemoveAt(x, y float64) bool {
	for i, o := range f.items {
		if o.Contains(x, y) {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether any obstacle covers (x, y).
func (f *ObstacleField) Contains(x, y float64) bool {
	for _, o := range f.items {
		if o.Contains(x, y) {
			return true
		}
	}
	return false
}

func (f *ObstacleField) Len() int { return len(f.items) }

// All returns a copy of the obstacles in insertion order.
func (f *ObstacleField) All() []Obstacle {
	out := make([]Obstacle, len(f.items))
	copy(out, f.items)
	return out
}

func (f *ObstacleField) Clear() { f.items = f.items[:0] }
