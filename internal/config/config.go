package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 800
	DefaultGridSize = 200
	DefaultFrames   = 600
)

// Config describes one simulation setup: the surface, the engine knobs and
// the initial scene.
type Config struct {
	Width          float64         `yaml:"width"`
	Height         float64         `yaml:"height"`
	GridSize       int             `yaml:"grid_size"`
	Damping        float64         `yaml:"damping"`
	Amplitude      float64         `yaml:"amplitude"`
	Speed          float64         `yaml:"speed"`
	ObstacleRadius int             `yaml:"obstacle_radius"`
	Boundary       string          `yaml:"boundary"`
	ColorScheme    string          `yaml:"color_scheme"`
	Frames         int             `yaml:"frames"`
	Initial        InitialConfig   `yaml:"initial"`
	Obstacles      []wave.Obstacle `yaml:"obstacles"`
	Ripples        []Point         `yaml:"ripples"`
}

// InitialConfig selects the starting field before any ripple is stamped.
type InitialConfig struct {
	Kind  string           `yaml:"kind"`
	Noise wave.NoiseConfig `yaml:"noise"`
}

// Point is a pixel-space location.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func DefaultConfig() *Config {
	p := wave.DefaultParams()
	return &Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		GridSize:       DefaultGridSize,
		Damping:        p.Damping,
		Amplitude:      p.Amplitude,
		Speed:          p.Speed,
		ObstacleRadius: p.ObstacleRadius,
		Boundary:       string(p.Boundary),
		ColorScheme:    string(p.Scheme),
		Frames:         DefaultFrames,
		Initial:        InitialConfig{Kind: "none", Noise: wave.DefaultNoise()},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the engine knobs. Names are resolved leniently; Validate
// is where unknown names are rejected.
func (c *Config) Params() wave.Params {
	b, _ := wave.ParseBoundary(c.Boundary)
	s, _ := colormap.ParseScheme(c.ColorScheme)
	return wave.Params{
		Damping:        c.Damping,
		Amplitude:      c.Amplitude,
		Speed:          c.Speed,
		ObstacleRadius: c.ObstacleRadius,
		Boundary:       b,
		Scheme:         s,
	}
}

// Validate checks everything the engine trusts its caller to get right.
func (c *Config) Validate() error {
	if c.GridSize < 3 {
		return fmt.Errorf("%w: got %d", wave.ErrGridTooSmall, c.GridSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: surface %gx%g", wave.ErrParameterBounds, c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames %d", wave.ErrParameterBounds, c.Frames)
	}
	if _, err := wave.ParseBoundary(c.Boundary); err != nil {
		return err
	}
	if _, err := colormap.ParseScheme(c.ColorScheme); err != nil {
		return err
	}
	switch c.Initial.Kind {
	case "", "none", "perlin":
	default:
		return fmt.Errorf("%w: initial kind %q", wave.ErrParameterBounds, c.Initial.Kind)
	}
	for i, o := range c.Obstacles {
		if o.Radius <= 0 {
			return fmt.Errorf("%w: obstacle %d radius %g", wave.ErrParameterBounds, i, o.Radius)
		}
	}
	return c.Params().Validate()
}

// Build creates the grid and obstacle set and stamps the initial scene.
func (c *Config) Build() (*wave.Grid, *wave.ObstacleField, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	grid, err := wave.NewGrid(c.Width, c.Height, c.GridSize)
	if err != nil {
		return nil, nil, err
	}
	if c.Initial.Kind == "perlin" {
		grid.SeedNoise(c.Initial.Noise)
	}
	obstacles := wave.NewObstacleField(c.Obstacles...)
	for _, r := range c.Ripples {
		if !obstacles.Contains(r.X, r.Y) {
			grid.InjectRipple(r.X, r.Y, c.Amplitude)
		}
	}
	return grid, obstacles, nil
}
