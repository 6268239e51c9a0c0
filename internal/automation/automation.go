package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavesim/internal/colormap"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

// Event actions.
const (
	ActionRipple   = "ripple"
	ActionObstacle = "obstacle"
	ActionRemove   = "remove"
	ActionBoundary = "boundary"
	ActionScheme   = "scheme"
	ActionSet      = "set"
	ActionPause    = "pause"
	ActionResume   = "resume"
	ActionReset    = "reset"
	ActionClear    = "clear"
)

var ErrUnknownAction = errors.New("automation: unknown action")

// Scenario is a scripted session: a starting setup and events keyed to host
// refreshes. A paused driver still consumes refreshes, so frame numbers in a
// script count iterations of the host loop, not completed ticks.
type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Preset      string    `yaml:"preset"`
	Setup       yaml.Node `yaml:"setup"`
	Frames      int       `yaml:"frames"`
	Events      []Event   `yaml:"events"`
}

// Event is one scripted input.
type Event struct {
	Frame  int     `yaml:"frame"`
	Action string  `yaml:"action"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Value  string  `yaml:"value"`
	Param  string  `yaml:"param"`
	Amount float64 `yaml:"amount"`
}

// StepError reports the event that failed.
type StepError struct {
	Frame  int
	Action string
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("frame %d: %s: %v", e.Frame, e.Action, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Config resolves the starting setup: the preset, or the defaults, with the
// setup block laid over it.
func (s *Scenario) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", s.Preset)
		}
	}
	if !s.Setup.IsZero() {
		if err := s.Setup.Decode(cfg); err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}
	if s.Frames > 0 {
		cfg.Frames = s.Frames
	}
	return cfg, nil
}

// Runner plays a scenario against a driver.
type Runner struct {
	driver *sim.Driver
	logger *slog.Logger
}

func NewRunner(d *sim.Driver, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{driver: d, logger: logger}
}

// Build creates a driver for the scenario's starting setup.
func Build(s *Scenario) (*sim.Driver, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	grid, obstacles, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	params := cfg.Params()
	return sim.New(grid, obstacles, &params, metrics.NewCollector(nil)), nil
}

// Run applies each event at its frame and calls Tick once per frame, for
// frames iterations. It returns the number of ticks that advanced the field.
func (r *Runner) Run(ctx context.Context, s *Scenario, frames int) (int, error) {
	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Frame < events[j].Frame })

	next, ticked := 0, 0
	for frame := 0; frame < frames; frame++ {
		if err := ctx.Err(); err != nil {
			return ticked, err
		}
		for next < len(events) && events[next].Frame <= frame {
			ev := events[next]
			next++
			if err := r.apply(ev); err != nil {
				return ticked, &StepError{Frame: ev.Frame, Action: ev.Action, Err: err}
			}
			r.logger.Debug("event applied", "frame", frame, "action", ev.Action)
		}
		if _, ok := r.driver.Tick(); ok {
			ticked++
		}
	}
	if next < len(events) {
		r.logger.Warn("events past the last frame were skipped", "skipped", len(events)-next)
	}
	r.logger.Info("scenario finished", "name", s.Name, "frames", frames, "ticks", ticked)
	return ticked, nil
}

func (r *Runner) apply(ev Event) error {
	d := r.driver
	switch ev.Action {
	case ActionRipple:
		d.Click(ev.X, ev.Y, false, false)
	case ActionObstacle:
		d.Click(ev.X, ev.Y, true, false)
	case ActionRemove:
		d.Obstacles().RemoveAt(ev.X, ev.Y)
	case ActionBoundary:
		b, err := wave.ParseBoundary(ev.Value)
		if err != nil {
			return err
		}
		d.Params().Boundary = b
	case ActionScheme:
		s, err := colormap.ParseScheme(ev.Value)
		if err != nil {
			return err
		}
		d.Params().Scheme = s
	case ActionSet:
		p := *d.Params()
		if !p.Set(ev.Param, ev.Amount) {
			return fmt.Errorf("%w: unknown parameter %q", wave.ErrParameterBounds, ev.Param)
		}
		if err := p.Validate(); err != nil {
			return err
		}
		*d.Params() = p
	case ActionPause:
		d.Pause()
	case ActionResume:
		d.Resume()
	case ActionReset:
		d.Reset(false)
	case ActionClear:
		d.Reset(true)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
	return nil
}
