package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/wave"
)

// ImageSink paints into an RGBA pixel surface.
type ImageSink struct {
	Img *image.RGBA
}

func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (s *ImageSink) FillCell(x, y, w, h float64, c colormap.RGB) {
	px := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Floor(x+w)), int(math.Floor(y+h)),
	).Intersect(s.Img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for qx := r.Min.X; qx < r.Max.X; qx++ {
			s.Img.SetRGBA(qx, py, px)
		}
	}
}

// DrawObstacle fills the disc and strokes its rim, blending by alpha.
func (s *ImageSink) DrawObstacle(o wave.Obstacle, style ObstacleStyle) {
	half := style.LineWidth / 2
	reach := o.Radius + half
	r := image.Rect(
		int(math.Floor(o.X-reach)), int(math.Floor(o.Y-reach)),
		int(math.Ceil(o.X+reach))+1, int(math.Ceil(o.Y+reach))+1,
	).Intersect(s.Img.Bounds())

	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			d := math.Hypot(float64(px)+0.5-o.X, float64(py)+0.5-o.Y)
			if d <= o.Radius {
				s.blend(px, py, style.Fill)
			}
			if math.Abs(d-o.Radius) <= half {
				s.blend(px, py, style.Stroke)
			}
		}
	}
}

func (s *ImageSink) blend(x, y int, c color.RGBA) {
	if c.A == 255 {
		s.Img.SetRGBA(x, y, c)
		return
	}
	dst := s.Img.RGBAAt(x, y)
	a := float64(c.A) / 255
	mix := func(src, dst uint8) uint8 {
		return uint8(math.Round(float64(src)*a + float64(dst)*(1-a)))
	}
	s.Img.SetRGBA(x, y, color.RGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 255})
}

// WritePNG encodes the surface.
func (s *ImageSink) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Img)
}
