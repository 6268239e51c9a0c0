package metrics

import "math"

// MaxAmplitude is the largest |v| over the interior of the last field.
type MaxAmplitude struct {
	name  string
	value float64
}

func NewMaxAmplitude() *MaxAmplitude {
	return &MaxAmplitude{name: "max_amplitude"}
}

func (m *MaxAmplitude) Name() string { return m.name }

func (m *MaxAmplitude) Observe(field [][]float64) {
	m.value = 0
	n := len(field)
	for i := 1; i < n-1; i++ {
		row := field[i]
		for j := 1; j < n-1; j++ {
			m.value = math.Max(m.value, math.Abs(row[j]))
		}
	}
}

func (m *MaxAmplitude) Value() float64 { return m.value }
func (m *MaxAmplitude) Reset()         { m.value = 0 }

// Energy is the sum of squared amplitudes over the interior of the last field.
// The border belongs to the boundary policy and is excluded.
type Energy struct {
	name  string
	total float64
}

func NewEnergy() *Energy {
	return &Energy{name: "total_energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(field [][]float64) {
	e.total = 0
	n := len(field)
	for i := 1; i < n-1; i++ {
		row := field[i]
		for j := 1; j < n-1; j++ {
			e.total += row[j] * row[j]
		}
	}
}

func (e *Energy) Value() float64 { return e.total }
func (e *Energy) Reset()         { e.total = 0 }

// EnergyDrift tracks the largest relative departure of total energy from the
// first non-zero observation.
type EnergyDrift struct {
	name     string
	initial  float64
	maxDrift float64
	energy   Energy
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(field [][]float64) {
	e.energy.Observe(field)
	cur := e.energy.Value()
	if e.initial == 0 {
		e.initial = cur
		return
	}
	drift := math.Abs(cur-e.initial) / e.initial
	e.maxDrift = math.Max(e.maxDrift, drift)
}

func (e *EnergyDrift) Value() float64 { return e.maxDrift }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
}
