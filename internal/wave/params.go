package wave

import (
	"fmt"
	"math"

	"github.com/san-kum/wavesim/internal/colormap"
)

// Parameter domains. Inputs outside these are the caller's problem.
const (
	MinDamping        = 0.9
	MaxDamping        = 1.1
	DampingStep       = 0.001
	MinAmplitude      = 0.1
	MaxAmplitude      = 10.0
	AmplitudeStep     = 0.1
	MinSpeed          = 0.1
	MaxSpeed          = 1.0
	SpeedStep         = 0.01
	MinObstacleRadius = 1
	MaxObstacleRadius = 50
)

// Params is the caller-owned set of knobs read on every step.
type Params struct {
	Damping        float64
	Amplitude      float64
	Speed          float64
	ObstacleRadius int
	Boundary       Boundary
	Scheme         colormap.Scheme
}

// DefaultParams matches the values the interactive front ends start with.
func DefaultParams() Params {
	return Params{
		Damping:        0.99,
		Amplitude:      5,
		Speed:          0.5,
		ObstacleRadius: 1,
		Boundary:       Reflecting,
		Scheme:         colormap.Neon,
	}
}

// Validate reports the first parameter outside its domain.
func (p Params) Validate() error {
	switch {
	case p.Damping < MinDamping || p.Damping > MaxDamping:
		return fmt.Errorf("%w: damping %g not in [%g, %g]", ErrParameterBounds, p.Damping, MinDamping, MaxDamping)
	case p.Amplitude < MinAmplitude || p.Amplitude > MaxAmplitude:
		return fmt.Errorf("%w: amplitude %g not in [%g, %g]", ErrParameterBounds, p.Amplitude, MinAmplitude, MaxAmplitude)
	case p.Speed < MinSpeed || p.Speed > MaxSpeed:
		return fmt.Errorf("%w: speed %g not in [%g, %g]", ErrParameterBounds, p.Speed, MinSpeed, MaxSpeed)
	case p.ObstacleRadius < MinObstacleRadius || p.ObstacleRadius > MaxObstacleRadius:
		return fmt.Errorf("%w: obstacle radius %d not in [%d, %d]", ErrParameterBounds, p.ObstacleRadius, MinObstacleRadius, MaxObstacleRadius)
	}
	if _, err := ParseBoundary(string(p.Boundary)); err != nil {
		return err
	}
	if _, err := colormap.ParseScheme(string(p.Scheme)); err != nil {
		return err
	}
	return nil
}

// Adjust nudges one named parameter by steps increments and clamps it into
// its domain. Unknown names are ignored.
func (p *Params) Adjust(name string, steps int) {
	switch name {
	case "damping":
		p.Damping = clamp(snap(p.Damping+float64(steps)*DampingStep, DampingStep), MinDamping, MaxDamping)
	case "amplitude":
		p.Amplitude = clamp(snap(p.Amplitude+float64(steps)*AmplitudeStep, AmplitudeStep), MinAmplitude, MaxAmplitude)
	case "speed":
		p.Speed = clamp(snap(p.Speed+float64(steps)*SpeedStep, SpeedStep), MinSpeed, MaxSpeed)
	case "obstacle_radius":
		p.ObstacleRadius = int(clamp(float64(p.ObstacleRadius+steps), MinObstacleRadius, MaxObstacleRadius))
	}
}

// Set assigns a tunable parameter by name without clamping. It reports
// false for unknown names.
func (p *Params) Set(name string, v float64) bool {
	switch name {
	case "damping":
		p.Damping = v
	case "amplitude":
		p.Amplitude = v
	case "speed":
		p.Speed = v
	case "obstacle_radius":
		p.ObstacleRadius = int(math.Round(v))
	default:
		return false
	}
	return true
}

// Tunables lists the names accepted by Adjust, in display order.
func Tunables() []string {
	return []string{"damping", "amplitude", "speed", "obstacle_radius"}
}

// Value returns the current value of a tunable parameter.
func (p Params) Value(name string) float64 {
	switch name {
	case "damping":
		return p.Damping
	case "amplitude":
		return p.Amplitude
	case "speed":
		return p.Speed
	case "obstacle_radius":
		return float64(p.ObstacleRadius)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// snap rounds v onto the slider grid of the given step.
func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}
