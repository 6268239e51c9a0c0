package metrics

import "math"

// Divergence records the first observed frame, counting from 1, on which an
// interior cell went non-finite or beyond limit. Nothing clamps the step, so
// speed near 1 with damping above 1 can blow the field up. Value is 0 while
// the field stays bounded.
type Divergence struct {
	name     string
	limit    float64
	observed int
	at       int
}

func NewDivergence(limit float64) *Divergence {
	return &Divergence{name: "diverged_at", limit: limit}
}

func (d *Divergence) Name() string { return d.name }

func (d *Divergence) Observe(field [][]float64) {
	d.observed++
	if d.at != 0 {
		return
	}
	for i := 1; i < len(field)-1; i++ {
		for j := 1; j < len(field[i])-1; j++ {
			v := field[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > d.limit {
				d.at = d.observed
				return
			}
		}
	}
}

func (d *Divergence) Value() float64 { return float64(d.at) }

// Diverged reports whether any frame so far crossed the limit.
func (d *Divergence) Diverged() bool { return d.at != 0 }

func (d *Divergence) Reset() {
	d.observed = 0
	d.at = 0
}
