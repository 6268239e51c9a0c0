package telemetry

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

func newDriver(t *testing.T) *sim.Driver {
	t.Helper()
	g, err := wave.NewGrid(100, 100, 20)
	if err != nil {
		t.Fatal(err)
	}
	p := wave.DefaultParams()
	return sim.New(g, wave.NewObstacleField(wave.Obstacle{X: 10, Y: 10, Radius: 2}), &p, metrics.NewCollector(nil))
}

func TestExporterTracksFrames(t *testing.T) {
	d := newDriver(t)
	e := NewExporter()
	d.AddObserver(e)
	d.Grid().InjectRipple(50, 50, 2)

	d.Tick()
	d.Tick()

	if got := testutil.ToFloat64(e.frames); got != 2 {
		t.Errorf("expected 2 frames, got %f", got)
	}
	snap := d.Metrics()
	if got := testutil.ToFloat64(e.totalEnergy); got != snap.TotalEnergy {
		t.Errorf("energy gauge %f, want %f", got, snap.TotalEnergy)
	}
	if got := testutil.ToFloat64(e.maxAmplitude); got != snap.MaxAmplitude {
		t.Errorf("amplitude gauge %f, want %f", got, snap.MaxAmplitude)
	}
	if got := testutil.ToFloat64(e.obstacles); got != 1 {
		t.Errorf("expected 1 obstacle, got %f", got)
	}
	if got := testutil.ToFloat64(e.params.WithLabelValues("damping")); got != 0.99 {
		t.Errorf("expected damping 0.99, got %f", got)
	}
}

func TestExporterRegistry(t *testing.T) {
	e := NewExporter()
	e.OnFrame(sim.Frame{Obstacles: wave.NewObstacleField(), Params: wave.DefaultParams()})

	// Four plain collectors, the counter and four labelled param series.
	if n := testutil.CollectAndCount(e.Registry()); n != 9 {
		t.Errorf("expected 9 series, got %d", n)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	e := NewExporter()
	e.OnFrame(sim.Frame{
		Obstacles: wave.NewObstacleField(),
		Params:    wave.DefaultParams(),
		Metrics:   metrics.Snapshot{TotalEnergy: 4.5, UpdatesPerSecond: 60},
	})

	srv := httptest.NewServer(e.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"wavesim_total_energy 4.5",
		"wavesim_updates_per_second 60",
		`wavesim_param{name="speed"} 0.5`,
		"wavesim_frames_total 1",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("missing %q in scrape output", want)
		}
	}
}
