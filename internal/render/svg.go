package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/wave"
)

// SVGSink builds a retained-mode SVG document of one frame.
type SVGSink struct {
	width, height float64
	sb            strings.Builder
}

func NewSVGSink(width, height float64) *SVGSink {
	s := &SVGSink{width: width, height: height}
	s.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" shape-rendering="crispEdges">
`, width, height, width, height))
	return s
}

func (s *SVGSink) FillCell(x, y, w, h float64, c colormap.RGB) {
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#%02x%02x%02x"/>
`, x, y, w, h, c.R, c.G, c.B))
}

func (s *SVGSink) DrawObstacle(o wave.Obstacle, style ObstacleStyle) {
	s.sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="rgba(%d, %d, %d, %.1f)" stroke="#%02x%02x%02x" stroke-width="%.0f"/>
`, o.X, o.Y, o.Radius,
		style.Fill.R, style.Fill.G, style.Fill.B, float64(style.Fill.A)/255,
		style.Stroke.R, style.Stroke.G, style.Stroke.B, style.LineWidth))
}

// String closes the document and returns it.
func (s *SVGSink) String() string {
	return s.sb.String() + "</svg>\n"
}

func (s *SVGSink) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
