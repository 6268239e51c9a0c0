package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Spectrum is the one-sided amplitude spectrum of a sampled series.
type Spectrum struct {
	// Freqs are bin centres in cycles per frame.
	Freqs []float64
	Power []float64
}

// PowerSpectrum removes the mean from data and returns the magnitude of
// bins 0..n/2. Any length works; go-dsp picks the algorithm.
func PowerSpectrum(data []float64) Spectrum {
	n := len(data)
	if n < 2 {
		return Spectrum{}
	}

	centred := make([]float64, n)
	copy(centred, data)
	floats.AddConst(-floats.Sum(centred)/float64(n), centred)

	coeffs := fft.FFTReal(centred)
	half := n/2 + 1
	s := Spectrum{
		Freqs: make([]float64, half),
		Power: make([]float64, half),
	}
	floats.Span(s.Freqs, 0, float64(half-1)/float64(n))
	for k := 0; k < half; k++ {
		s.Power[k] = cmplx.Abs(coeffs[k]) / float64(n)
	}
	return s
}

// Dominant returns the frequency and magnitude of the strongest non-DC bin.
// ok is false when the spectrum has no such bin or is flat zero.
func (s Spectrum) Dominant() (freq, power float64, ok bool) {
	if len(s.Power) < 2 {
		return 0, 0, false
	}
	idx := floats.MaxIdx(s.Power[1:]) + 1
	if s.Power[idx] == 0 {
		return 0, 0, false
	}
	return s.Freqs[idx], s.Power[idx], true
}

// Period is the dominant oscillation period in frames, or 0.
func (s Spectrum) Period() float64 {
	f, _, ok := s.Dominant()
	if !ok || f == 0 {
		return 0
	}
	return 1 / f
}
