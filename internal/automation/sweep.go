package automation

import (
	"context"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
)

// ParameterSweep runs the same scene once per value of one tunable.
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
	Frames    int
}

// SweepResult summarises one run of a sweep.
type SweepResult struct {
	ParamValue   float64 `json:"param_value"`
	FinalEnergy  float64 `json:"final_energy"`
	PeakEnergy   float64 `json:"peak_energy"`
	MaxAmplitude float64 `json:"max_amplitude"`
	DecayRate    float64 `json:"decay_rate"`
}

// RunSweep executes the runs in order. Every run starts from a freshly built
// scene so results are independent.
func RunSweep(ctx context.Context, sweep *ParameterSweep, logger *slog.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}
	if sweep.Frames < 1 {
		return nil, fmt.Errorf("sweep needs at least one frame, got %d", sweep.Frames)
	}

	values := make([]float64, sweep.NumSteps)
	if sweep.NumSteps == 1 {
		values[0] = sweep.ParamMin
	} else {
		floats.Span(values, sweep.ParamMin, sweep.ParamMax)
	}

	results := make([]SweepResult, 0, len(values))
	for i, v := range values {
		res, err := sweepPoint(ctx, sweep, v, logger)
		if err != nil {
			return results, fmt.Errorf("sweep %s=%g: %w", sweep.ParamName, v, err)
		}
		results = append(results, res)
		logger.Info("sweep point", "step", i+1, "of", len(values), sweep.ParamName, v, "final_energy", res.FinalEnergy)
	}
	return results, nil
}

func sweepPoint(ctx context.Context, sweep *ParameterSweep, value float64, logger *slog.Logger) (SweepResult, error) {
	cfg := *sweep.Base
	p := cfg.Params()
	if !p.Set(sweep.ParamName, value) {
		return SweepResult{}, fmt.Errorf("unknown parameter %q", sweep.ParamName)
	}
	if err := p.Validate(); err != nil {
		return SweepResult{}, err
	}
	cfg.Damping, cfg.Amplitude, cfg.Speed, cfg.ObstacleRadius = p.Damping, p.Amplitude, p.Speed, p.ObstacleRadius

	grid, obstacles, err := cfg.Build()
	if err != nil {
		return SweepResult{}, err
	}
	d := sim.New(grid, obstacles, &p, metrics.NewCollector(nil))
	history := sim.NewHistory()
	d.AddObserver(history)

	if _, err := sim.NewLoop(d, logger).Run(ctx, sim.LoopConfig{Frames: sweep.Frames}); err != nil {
		return SweepResult{}, err
	}

	energy := history.Series("energy")
	return SweepResult{
		ParamValue:   value,
		FinalEnergy:  energy[len(energy)-1],
		PeakEnergy:   floats.Max(energy),
		MaxAmplitude: floats.Max(history.Series("max")),
		DecayRate:    analysis.DecayRate(energy),
	}, nil
}
