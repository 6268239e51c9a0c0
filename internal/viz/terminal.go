package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/render"
	"github.com/san-kum/wavesim/internal/wave"
)

const halfBlock = "▀"

// TerminalSink paints a frame into terminal cells. Each character cell
// carries two square pixels: the upper half as foreground, the lower half as
// background of a half-block glyph.
type TerminalSink struct {
	img     *render.ImageSink
	scale   float64
	cols    int
	pixRows int
}

// NewTerminalSink fits a width×height surface into cols columns.
func NewTerminalSink(cols int, width, height float64) *TerminalSink {
	scale := float64(cols) / width
	pixRows := int(math.Round(height * scale))
	if pixRows%2 == 1 {
		pixRows++
	}
	return &TerminalSink{
		img:     render.NewImageSink(cols, pixRows),
		scale:   scale,
		cols:    cols,
		pixRows: pixRows,
	}
}

func (t *TerminalSink) Cols() int { return t.cols }
func (t *TerminalSink) Rows() int { return t.pixRows / 2 }

func (t *TerminalSink) FillCell(x, y, w, h float64, c colormap.RGB) {
	s := t.scale
	t.img.FillCell(x*s, y*s, math.Max(w*s, 1), math.Max(h*s, 1), c)
}

func (t *TerminalSink) DrawObstacle(o wave.Obstacle, style render.ObstacleStyle) {
	s := t.scale
	scaled := wave.Obstacle{X: o.X * s, Y: o.Y * s, Radius: math.Max(o.Radius*s, 0.5)}
	t.img.DrawObstacle(scaled, style)
}

// ToSurface maps a pixel of the sink back to surface coordinates, at the
// pixel centre.
func (t *TerminalSink) ToSurface(col, pixRow int) (x, y float64) {
	return (float64(col) + 0.5) / t.scale, (float64(pixRow) + 0.5) / t.scale
}

// Render draws the sink. A cursor at (cursorCol, cursorPixRow) is marked
// with a cross; pass a negative column to hide it.
func (t *TerminalSink) Render(cursorCol, cursorPixRow int) string {
	var b strings.Builder
	cursorRow := cursorPixRow / 2
	for row := 0; row < t.Rows(); row++ {
		run, runTop, runBottom := 0, "", ""
		flush := func() {
			if run == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(runTop)).
				Background(lipgloss.Color(runBottom))
			b.WriteString(style.Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for col := 0; col < t.cols; col++ {
			top := hexRGBA(t.img, col, row*2)
			bottom := hexRGBA(t.img, col, row*2+1)
			if row == cursorRow && col == cursorCol {
				flush()
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color("#ffffff")).
					Background(lipgloss.Color(top)).
					Bold(true).
					Render("┼"))
				continue
			}
			if run > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			run++
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func hexRGBA(s *render.ImageSink, x, y int) string {
	c := s.Img.RGBAAt(x, y)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
