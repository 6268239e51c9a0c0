package render

import (
	"image/color"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/wave"
)

// ObstacleStyle is how obstacles are drawn over the field.
type ObstacleStyle struct {
	Fill      color.RGBA
	Stroke    color.RGBA
	LineWidth float64
}

// DefaultObstacleStyle is a semi-transparent grey disc with a dark rim.
var DefaultObstacleStyle = ObstacleStyle{
	Fill:      color.RGBA{R: 50, G: 50, B: 50, A: 178},
	Stroke:    color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255},
	LineWidth: 1,
}

// Sink receives one frame: a colored rectangle per cell, then every
// obstacle. Coordinates are pixels.
type Sink interface {
	FillCell(x, y, w, h float64, c colormap.RGB)
	DrawObstacle(o wave.Obstacle, style ObstacleStyle)
}

// Paint walks the current buffer of grid into sink, then overlays obstacles.
func Paint(sink Sink, grid *wave.Grid, obstacles *wave.ObstacleField, scheme colormap.Scheme) {
	cur := grid.Current()
	for i, row := range cur {
		for j, v := range row {
			x, y, w, h := grid.CellRect(i, j)
			sink.FillCell(x, y, w, h, colormap.Map(v, scheme))
		}
	}
	if obstacles == nil {
		return
	}
	for _, o := range obstacles.All() {
		sink.DrawObstacle(o, DefaultObstacleStyle)
	}
}
