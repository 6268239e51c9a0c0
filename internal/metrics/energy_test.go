package metrics

import (
	"math"
	"testing"
)

func field() [][]float64 {
	return [][]float64{
		{9, 9, 9, 9},
		{9, 1, -3, 9},
		{9, 0.5, 2, 9},
		{-99, 9, 9, 9},
	}
}

func TestMaxAmplitudeIgnoresBorder(t *testing.T) {
	m := NewMaxAmplitude()
	m.Observe(field())
	if m.Value() != 3 {
		t.Errorf("expected max amplitude 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestEnergyIsExactSumOfSquares(t *testing.T) {
	e := NewEnergy()
	e.Observe(field())

	expected := 1.0 + 9.0 + 0.25 + 4.0
	if e.Value() != expected {
		t.Errorf("expected energy %f, got %f", expected, e.Value())
	}

	e.Observe([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	if e.Value() != 0 {
		t.Errorf("energy should not accumulate across frames, got %f", e.Value())
	}
}

func TestEnergyDrift(t *testing.T) {
	d := NewEnergyDrift()
	d.Observe([][]float64{{0, 0, 0}, {0, 2, 0}, {0, 0, 0}})
	d.Observe([][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}})

	if math.Abs(d.Value()-0.75) > 1e-12 {
		t.Errorf("expected drift 0.75, got %f", d.Value())
	}
}

func TestDivergence(t *testing.T) {
	d := NewDivergence(5)
	calm := [][]float64{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	wild := [][]float64{{0, 0, 0}, {0, 50, 0}, {0, 0, 0}}
	border := [][]float64{{99, 0, 0}, {0, 1, 0}, {0, 0, 0}}

	d.Observe(calm)
	d.Observe(border)
	if d.Diverged() {
		t.Fatal("border cells must not count")
	}
	d.Observe(wild)
	d.Observe(calm)
	if d.Value() != 3 {
		t.Errorf("expected divergence at frame 3, got %f", d.Value())
	}

	d.Reset()
	d.Observe([][]float64{{0, 0, 0}, {0, math.NaN(), 0}, {0, 0, 0}})
	if d.Value() != 1 {
		t.Errorf("expected NaN to diverge at frame 1, got %f", d.Value())
	}
}

func TestSnapshotRounded(t *testing.T) {
	s := Snapshot{MaxAmplitude: 1.23456, TotalEnergy: 99.995, UpdatesPerSecond: 60}.Rounded()
	if s.MaxAmplitude != 1.23 {
		t.Errorf("expected 1.23, got %f", s.MaxAmplitude)
	}
	if s.UpdatesPerSecond != 60 {
		t.Errorf("ups changed: %d", s.UpdatesPerSecond)
	}
}
