package metrics

import (
	"math"
	"time"
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Throughput is a windowed updates-per-second counter. Frames are counted
// until the window is at least a second old, then the rate over that window
// is published and a new window opens. Between publications the previous
// rate is reported unchanged.
type Throughput struct {
	name   string
	clock  Clock
	frames int
	start  time.Time
	rate   float64
}

func NewThroughput(clock Clock) *Throughput {
	if clock == nil {
		clock = time.Now
	}
	return &Throughput{name: "updates_per_second", clock: clock, start: clock()}
}

func (t *Throughput) Name() string { return t.name }

func (t *Throughput) Observe([][]float64) {
	t.frames++
	now := t.clock()
	elapsed := float64(now.Sub(t.start)) / float64(time.Millisecond)
	if elapsed >= 1000 {
		t.rate = math.Round(float64(t.frames) * 1000 / elapsed)
		t.frames = 0
		t.start = now
	}
}

func (t *Throughput) Value() float64 { return t.rate }

func (t *Throughput) Reset() {
	t.frames = 0
	t.rate = 0
	t.start = t.clock()
}
