package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumFindsSine(t *testing.T) {
	n := 128
	data := make([]float64, n)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*8*float64(i)/float64(n))
	}

	s := PowerSpectrum(data)
	if len(s.Power) != n/2+1 {
		t.Fatalf("expected %d bins, got %d", n/2+1, len(s.Power))
	}
	if s.Power[0] > 1e-9 {
		t.Errorf("mean not removed, DC = %g", s.Power[0])
	}

	freq, power, ok := s.Dominant()
	if !ok {
		t.Fatal("no dominant bin")
	}
	if math.Abs(freq-8.0/128) > 1e-12 {
		t.Errorf("expected frequency 1/16, got %g", freq)
	}
	if math.Abs(power-0.5) > 1e-9 {
		t.Errorf("expected magnitude 0.5, got %g", power)
	}
	if math.Abs(s.Period()-16) > 1e-9 {
		t.Errorf("expected period 16, got %g", s.Period())
	}
}

func TestPowerSpectrumNonPowerOfTwo(t *testing.T) {
	n := 90
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * 9 * float64(i) / float64(n))
	}
	freq, _, ok := PowerSpectrum(data).Dominant()
	if !ok || math.Abs(freq-0.1) > 1e-12 {
		t.Errorf("expected 0.1, got %g (ok=%v)", freq, ok)
	}
}

func TestDominantFlat(t *testing.T) {
	tests := []struct {
		name string
		data []float64
	}{
		{"empty", nil},
		{"single", []float64{1}},
		{"constant", []float64{2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := PowerSpectrum(tt.data).Dominant(); ok {
				t.Error("expected no dominant bin")
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 4})
	if s.Min != 1 || s.Max != 4 || s.Mean != 2.5 || s.Final != 4 {
		t.Errorf("unexpected summary %+v", s)
	}
	if math.Abs(s.StdDev-math.Sqrt(5.0/3)) > 1e-12 {
		t.Errorf("unexpected stddev %g", s.StdDev)
	}
	if (Summarize(nil) != Summary{}) {
		t.Error("empty series should give zero summary")
	}
}

func TestDecayRate(t *testing.T) {
	energy := make([]float64, 50)
	for i := range energy {
		energy[i] = 10 * math.Exp(-0.02*float64(i))
	}
	if got := DecayRate(energy); math.Abs(got-0.02) > 1e-9 {
		t.Errorf("expected 0.02, got %g", got)
	}
	if DecayRate([]float64{0, 0, 1}) != 0 {
		t.Error("expected 0 with one usable sample")
	}
}
