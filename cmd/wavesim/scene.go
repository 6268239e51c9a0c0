package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
)

// divergenceLimit is the amplitude above which a run counts as blown up.
const divergenceLimit = 100.0

// loadScene resolves the config for a scene command: a preset argument or
// the defaults, then --config, then any flag the user set explicitly.
func loadScene(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	name := "default"
	if len(args) > 0 {
		name = args[0]
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(config.ListPresets(), ", "))
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if len(args) == 0 {
			name = "custom"
		}
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		cfg.GridSize = gridSize
	}
	if flags.Changed("damping") {
		cfg.Damping = damping
	}
	if flags.Changed("amplitude") {
		cfg.Amplitude = amplitude
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("radius") {
		cfg.ObstacleRadius = obstacleRadius
	}
	if flags.Changed("boundary") {
		cfg.Boundary = boundary
	}
	if flags.Changed("scheme") {
		cfg.ColorScheme = scheme
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, name, nil
}

func newDriver(cfg *config.Config) (*sim.Driver, error) {
	grid, obstacles, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	params := cfg.Params()
	collector := metrics.NewCollector(nil)
	collector.Add(metrics.NewEnergyDrift())
	collector.Add(metrics.NewDivergence(divergenceLimit))
	return sim.New(grid, obstacles, &params, collector), nil
}
