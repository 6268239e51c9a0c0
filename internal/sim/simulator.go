package sim

import (
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/wave"
)

// Driver runs the per-frame sequence step → boundary → metrics → rotate over
// one grid and obstacle set. It is not safe for concurrent use: the host
// loop, pointer handlers and parameter edits share one goroutine.
type Driver struct {
	grid      *wave.Grid
	obstacles *wave.ObstacleField
	params    *wave.Params
	collector *metrics.Collector
	observers []Observer
	running   bool
	frame     int
	drawing   bool
}

// New creates a running driver. params is owned by the caller and read on
// every tick.
func New(grid *wave.Grid, obstacles *wave.ObstacleField, params *wave.Params, collector *metrics.Collector) *Driver {
	if obstacles == nil {
		obstacles = wave.NewObstacleField()
	}
	if collector == nil {
		collector = metrics.NewCollector(nil)
	}
	return &Driver{
		grid:      grid,
		obstacles: obstacles,
		params:    params,
		collector: collector,
		observers: make([]Observer, 0),
		running:   true,
	}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) Grid() *wave.Grid               { return d.grid }
func (d *Driver) Obstacles() *wave.ObstacleField { return d.obstacles }
func (d *Driver) Params() *wave.Params           { return d.params }
func (d *Driver) Collector() *metrics.Collector  { return d.collector }
func (d *Driver) Frame() int                     { return d.frame }
func (d *Driver) Running() bool                  { return d.running }
func (d *Driver) Metrics() metrics.Snapshot      { return d.collector.Last() }

func (d *Driver) Pause()  { d.running = false }
func (d *Driver) Resume() { d.running = true }
func (d *Driver) Toggle() { d.running = !d.running }

// Tick advances one frame while running. Paused drivers do nothing and
// report false.
func (d *Driver) Tick() (metrics.Snapshot, bool) {
	if !d.running {
		return d.collector.Last(), false
	}
	return d.advance(), true
}

// Step advances one frame regardless of the running state.
func (d *Driver) Step() metrics.Snapshot {
	return d.advance()
}

func (d *Driver) advance() metrics.Snapshot {
	p := *d.params
	d.grid.Step(d.obstacles, p)
	p.Boundary.Apply(d.grid.Next())
	snap := d.collector.Compute(d.grid.Next())
	d.grid.Rotate()
	d.frame++

	if len(d.observers) > 0 {
		f := Frame{
			Index:     d.frame,
			Grid:      d.grid,
			Obstacles: d.obstacles,
			Params:    p,
			Metrics:   snap,
		}
		for _, o := range d.observers {
			o.OnFrame(f)
		}
	}
	return snap
}

// Reset zeroes the field in place and clears the last readout so paused
// hosts do not show metrics of the old field. The frame counter keeps
// running. Clearing obstacles is the caller's decision, usually after
// asking the user.
func (d *Driver) Reset(clearObstacles bool) {
	d.grid.Reset()
	d.collector.Reset()
	if clearObstacles {
		d.obstacles.Clear()
	}
}
