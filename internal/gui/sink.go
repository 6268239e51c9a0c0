package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/render"
	"github.com/san-kum/wavesim/internal/wave"
)

// windowSink draws cells and obstacles straight into the raylib frame,
// offset by the surface origin. It must be used between BeginDrawing and
// EndDrawing.
type windowSink struct {
	originX, originY float32
}

func (s windowSink) FillCell(x, y, w, h float64, c colormap.RGB) {
	rl.DrawRectangleRec(
		rl.NewRectangle(s.originX+float32(x), s.originY+float32(y), float32(w)+0.5, float32(h)+0.5),
		rl.NewColor(c.R, c.G, c.B, 255),
	)
}

func (s windowSink) DrawObstacle(o wave.Obstacle, style render.ObstacleStyle) {
	center := rl.NewVector2(s.originX+float32(o.X), s.originY+float32(o.Y))
	rl.DrawCircleV(center, float32(o.Radius), style.Fill)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(o.Radius), style.Stroke)
}
