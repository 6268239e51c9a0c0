package wave

import (
	"github.com/aquilax/go-perlin"
)

// NoiseConfig controls the Perlin field used as an initial condition.
type NoiseConfig struct {
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Octaves   int32   `yaml:"octaves"`
	Scale     float64 `yaml:"scale"`
	Amplitude float64 `yaml:"amplitude"`
	Seed      int64   `yaml:"seed"`
}

func DefaultNoise() NoiseConfig {
	return NoiseConfig{Alpha: 2, Beta: 2, Octaves: 3, Scale: 0.05, Amplitude: 1, Seed: 1}
}

// SeedNoise fills the interior of the current and previous buffers with the
// same Perlin field, giving a displaced surface at rest.
func (g *Grid) SeedNoise(cfg NoiseConfig) {
	p := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, cfg.Seed)
	cur, prev := g.Current(), g.Previous()
	g.Interior(func(i, j int) {
		v := cfg.Amplitude * p.Noise2D(float64(j)*cfg.Scale, float64(i)*cfg.Scale)
		cur[i][j] = v
		prev[i][j] = v
	})
}
