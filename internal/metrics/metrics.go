package metrics

import "math"

// Metric observes the field produced by each tick.
type Metric interface {
	Name() string
	Observe(field [][]float64)
	Value() float64
	Reset()
}

// Snapshot is the per-frame readout shown next to the field.
type Snapshot struct {
	MaxAmplitude     float64 `json:"max_amplitude"`
	TotalEnergy      float64 `json:"total_energy"`
	UpdatesPerSecond int     `json:"updates_per_second"`
}

// Rounded returns amplitude and energy rounded to two decimals for display.
func (s Snapshot) Rounded() Snapshot {
	s.MaxAmplitude = Round2(s.MaxAmplitude)
	s.TotalEnergy = Round2(s.TotalEnergy)
	return s
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Collector derives a Snapshot from the freshly stepped buffer. Extra metrics
// registered with Add are observed on the same buffer and reported by name.
type Collector struct {
	max        *MaxAmplitude
	energy     *Energy
	throughput *Throughput
	extra      []Metric
	last       Snapshot
}

// NewCollector builds a collector whose throughput window reads clock.
// A nil clock uses the wall clock.
func NewCollector(clock Clock) *Collector {
	return &Collector{
		max:        NewMaxAmplitude(),
		energy:     NewEnergy(),
		throughput: NewThroughput(clock),
	}
}

func (c *Collector) Add(m Metric) { c.extra = append(c.extra, m) }

// Compute observes field and returns the updated snapshot.
func (c *Collector) Compute(field [][]float64) Snapshot {
	c.max.Observe(field)
	c.energy.Observe(field)
	c.throughput.Observe(field)
	for _, m := range c.extra {
		m.Observe(field)
	}
	c.last = Snapshot{
		MaxAmplitude:     c.max.Value(),
		TotalEnergy:      c.energy.Value(),
		UpdatesPerSecond: int(c.throughput.Value()),
	}
	return c.last
}

// Last returns the most recent snapshot without observing anything.
func (c *Collector) Last() Snapshot { return c.last }

// Values reports every registered metric by name.
func (c *Collector) Values() map[string]float64 {
	out := map[string]float64{
		c.max.Name():        c.max.Value(),
		c.energy.Name():     c.energy.Value(),
		c.throughput.Name(): c.throughput.Value(),
	}
	for _, m := range c.extra {
		out[m.Name()] = m.Value()
	}
	return out
}

func (c *Collector) Reset() {
	c.max.Reset()
	c.energy.Reset()
	c.throughput.Reset()
	for _, m := range c.extra {
		m.Reset()
	}
	c.last = Snapshot{}
}
