package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

// Exporter mirrors the per-frame readout into Prometheus collectors. It is
// a sim.Observer; gauge updates are safe to scrape from another goroutine.
type Exporter struct {
	registry     *prometheus.Registry
	maxAmplitude prometheus.Gauge
	totalEnergy  prometheus.Gauge
	ups          prometheus.Gauge
	obstacles    prometheus.Gauge
	frames       prometheus.Counter
	params       *prometheus.GaugeVec
}

func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		maxAmplitude: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavesim_max_amplitude",
			Help: "Largest absolute amplitude in the interior of the latest frame.",
		}),
		totalEnergy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavesim_total_energy",
			Help: "Sum of squared interior amplitudes of the latest frame.",
		}),
		ups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavesim_updates_per_second",
			Help: "Completed frames in the last one-second window.",
		}),
		obstacles: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wavesim_obstacles",
			Help: "Number of obstacles on the surface.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wavesim_frames_total",
			Help: "Total number of completed frames.",
		}),
		params: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wavesim_param",
				Help: "Current value of each tunable parameter.",
			},
			[]string{"name"},
		),
	}
	e.registry.MustRegister(e.maxAmplitude, e.totalEnergy, e.ups, e.obstacles, e.frames, e.params)
	return e
}

func (e *Exporter) OnFrame(f sim.Frame) {
	e.maxAmplitude.Set(f.Metrics.MaxAmplitude)
	e.totalEnergy.Set(f.Metrics.TotalEnergy)
	e.ups.Set(float64(f.Metrics.UpdatesPerSecond))
	e.obstacles.Set(float64(f.Obstacles.Len()))
	e.frames.Inc()
	for _, name := range wave.Tunables() {
		e.params.WithLabelValues(name).Set(f.Params.Value(name))
	}
}

func (e *Exporter) Registry() *prometheus.Registry { return e.registry }

// Handler returns the metrics HTTP handler for this exporter's registry.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (e *Exporter) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
