package sim

import "github.com/san-kum/wavesim/internal/metrics"

// Sample is one recorded frame.
type Sample struct {
	Frame   int              `json:"frame"`
	Metrics metrics.Snapshot `json:"metrics"`
	Probe   float64          `json:"probe"`
}

// History records the metrics of every frame and, when a probe cell is set,
// its amplitude.
type History struct {
	probeRow, probeCol int
	probe              bool
	samples            []Sample
}

func NewHistory() *History {
	return &History{samples: make([]Sample, 0, 256)}
}

// WithProbe samples the current amplitude of cell (row, col) on each frame.
func (h *History) WithProbe(row, col int) *History {
	h.probeRow, h.probeCol, h.probe = row, col, true
	return h
}

func (h *History) OnFrame(f Frame) {
	s := Sample{Frame: f.Index, Metrics: f.Metrics}
	if h.probe {
		s.Probe = f.Grid.Probe(h.probeRow, h.probeCol)
	}
	h.samples = append(h.samples, s)
}

func (h *History) Samples() []Sample { return h.samples }
func (h *History) Len() int          { return len(h.samples) }

// Series extracts one column of the history by name: "max", "energy",
// "ups" or "probe".
func (h *History) Series(name string) []float64 {
	out := make([]float64, len(h.samples))
	for i, s := range h.samples {
		switch name {
		case "max":
			out[i] = s.Metrics.MaxAmplitude
		case "energy":
			out[i] = s.Metrics.TotalEnergy
		case "ups":
			out[i] = float64(s.Metrics.UpdatesPerSecond)
		case "probe":
			out[i] = s.Probe
		}
	}
	return out
}
