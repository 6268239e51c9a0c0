package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/wavesim/internal/metrics"
)

// LoopConfig bounds a headless run.
type LoopConfig struct {
	// Frames is the number of completed ticks to run; 0 runs until the
	// context is done.
	Frames int
	// Interval paces ticks like a display refresh; 0 ticks back to back.
	Interval time.Duration
}

func (c LoopConfig) validate() error {
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must not be negative, got %v", c.Interval)
	}
	return nil
}

// Loop is a host loop for runs without a display. It calls Tick on its own
// goroutine only, so the engine sees the same single-threaded contract as
// under a UI.
type Loop struct {
	ticker Ticker
	logger *slog.Logger
}

func NewLoop(t Ticker, logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{ticker: t, logger: logger}
}

// Run ticks until cfg.Frames frames have completed or ctx is done, and
// returns the number of completed frames. A paused ticker makes no
// progress, so Run with a frame budget waits on the context for it.
func (l *Loop) Run(ctx context.Context, cfg LoopConfig) (int, error) {
	return l.RunWithCallback(ctx, cfg, nil)
}

// RunWithCallback is Run with a per-frame callback; returning false stops
// the loop early without error.
func (l *Loop) RunWithCallback(ctx context.Context, cfg LoopConfig, callback func(frame int, snap metrics.Snapshot) bool) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}

	var pace <-chan time.Time
	if cfg.Interval > 0 {
		t := time.NewTicker(cfg.Interval)
		defer t.Stop()
		pace = t.C
	}

	done := 0
	start := time.Now()
	for cfg.Frames == 0 || done < cfg.Frames {
		if pace != nil {
			select {
			case <-ctx.Done():
				return done, ctx.Err()
			case <-pace:
			}
		} else {
			select {
			case <-ctx.Done():
				return done, ctx.Err()
			default:
			}
		}

		snap, ok := l.ticker.Tick()
		if !ok {
			if pace == nil {
				// Nothing paces a paused ticker; wait for cancellation.
				<-ctx.Done()
				return done, ctx.Err()
			}
			continue
		}
		done++
		if callback != nil && !callback(done, snap) {
			break
		}
	}

	l.logger.Debug("loop finished", "frames", done, "elapsed", time.Since(start))
	return done, nil
}
