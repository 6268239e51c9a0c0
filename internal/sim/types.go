package sim

import (
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/wave"
)

// Frame is what observers see after each completed tick. Grid has already
// been rotated, so Grid.Current() holds the field just computed.
type Frame struct {
	Index     int
	Grid      *wave.Grid
	Obstacles *wave.ObstacleField
	Params    wave.Params
	Metrics   metrics.Snapshot
}

// Observer is notified on the ticking goroutine after every frame.
type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

// Ticker is the surface a host loop drives. Hosts call Tick once per
// display refresh or timer fire; the engine never schedules itself.
type Ticker interface {
	Tick() (metrics.Snapshot, bool)
	Pause()
	Resume()
	Running() bool
}
