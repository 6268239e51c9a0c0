package render

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/sim"
)

// Recorder is a frame observer that captures every Nth frame for a GIF.
type Recorder struct {
	width, height int
	every         int
	scheme        colormap.Scheme
	maxFrames     int
	frames        []*image.Paletted
}

// NewRecorder captures one frame out of every `every`, up to maxFrames
// (0 for no cap). scheme overrides the frame's palette when non-empty.
func NewRecorder(width, height, every, maxFrames int, scheme colormap.Scheme) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{width: width, height: height, every: every, maxFrames: maxFrames, scheme: scheme}
}

func (r *Recorder) OnFrame(f sim.Frame) {
	if f.Index%r.every != 0 {
		return
	}
	if r.maxFrames > 0 && len(r.frames) >= r.maxFrames {
		return
	}
	scheme := r.scheme
	if scheme == "" {
		scheme = f.Params.Scheme
	}
	sink := NewImageSink(r.width, r.height)
	Paint(sink, f.Grid, f.Obstacles, scheme)

	pal := image.NewPaletted(sink.Img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pal, pal.Bounds(), sink.Img, image.Point{})
	r.frames = append(r.frames, pal)
}

func (r *Recorder) Len() int { return len(r.frames) }

// Encode writes the captured frames as a looping animation.
func (r *Recorder) Encode(w io.Writer, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
