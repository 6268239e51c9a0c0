package config

import (
	"math"
	"sort"

	"github.com/san-kum/wavesim/internal/wave"
)

// Presets are named starting scenes. Each entry overrides the defaults.
var Presets = map[string]func(c *Config){
	"pond": func(c *Config) {
		c.Ripples = []Point{{X: c.Width / 2, Y: c.Height / 2}}
	},
	"double_slit": func(c *Config) {
		c.Boundary = "absorbing"
		c.ColorScheme = "ocean"
		c.ObstacleRadius = 6
		c.Obstacles = slitWall(c.Width, c.Height, 6)
		c.Ripples = []Point{{X: c.Width / 2, Y: c.Height * 0.15}}
	},
	"box": func(c *Config) {
		c.Boundary = "reflecting"
		c.Damping = 0.999
		c.ColorScheme = "thermal"
		c.Ripples = []Point{{X: c.Width * 0.3, Y: c.Height * 0.3}, {X: c.Width * 0.7, Y: c.Height * 0.6}}
	},
	"torus": func(c *Config) {
		c.Boundary = "periodic"
		c.ColorScheme = "rainbow"
		c.Ripples = []Point{{X: c.Width * 0.05, Y: c.Height * 0.05}}
	},
	"noise": func(c *Config) {
		c.Boundary = "reflecting"
		c.ColorScheme = "sunset"
		c.Damping = 0.995
		c.Initial.Kind = "perlin"
	},
}

// PresetDescriptions are one-line summaries shown by pickers and listings.
var PresetDescriptions = map[string]string{
	"pond":        "single drop, open edges",
	"double_slit": "interference through two gaps",
	"box":         "two drops in a closed cavity",
	"torus":       "waves wrap around every edge",
	"noise":       "perlin field settling down",
}

// slitWall lays a horizontal row of discs across the surface at 40% height
// with two gaps around the centre line.
func slitWall(width, height, radius float64) []wave.Obstacle {
	y := height * 0.4
	gap := width * 0.04
	left, right := width/2-width*0.08, width/2+width*0.08
	var out []wave.Obstacle
	for x := radius; x < width; x += radius {
		if math.Abs(x-left) < gap || math.Abs(x-right) < gap {
			continue
		}
		out = append(out, wave.Obstacle{X: x, Y: y, Radius: radius})
	}
	return out
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
