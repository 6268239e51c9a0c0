package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

func testRun(t *testing.T) (RunMetadata, []sim.Sample, [][]float64) {
	t.Helper()
	grid, err := wave.NewGrid(40, 40, 4)
	if err != nil {
		t.Fatal(err)
	}
	obs := wave.NewObstacleField(wave.Obstacle{X: 10, Y: 10, Radius: 3})
	meta := Describe("test", grid, obs, wave.DefaultParams())
	meta.Metrics = map[string]float64{"total_energy": 1.5}

	samples := []sim.Sample{
		{Frame: 1, Metrics: metrics.Snapshot{MaxAmplitude: 1, TotalEnergy: 2}, Probe: 0.5},
		{Frame: 2, Metrics: metrics.Snapshot{MaxAmplitude: 0.9, TotalEnergy: 1.5, UpdatesPerSecond: 60}, Probe: -0.25},
	}
	field := [][]float64{{0, 0, 0, 0}, {0, 0.125, -1, 0}, {0, 2, 3, 0}, {0, 0, 0, 0}}
	return meta, samples, field
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir(), nil)
	meta, samples, field := testRun(t)

	runID, err := st.Save(meta, samples, field)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "test_") {
		t.Errorf("unexpected run id %q", runID)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.GridSize != 4 || loaded.Boundary != "reflecting" || loaded.ColorScheme != "neon" {
		t.Errorf("parameters not persisted: %+v", loaded)
	}
	if loaded.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", loaded.Frames)
	}
	if len(loaded.Obstacles) != 1 || loaded.Obstacles[0].Radius != 3 {
		t.Errorf("obstacles not persisted: %+v", loaded.Obstacles)
	}
	if loaded.Metrics["total_energy"] != 1.5 {
		t.Errorf("expected energy 1.5, got %f", loaded.Metrics["total_energy"])
	}

	got, err := st.LoadSamples(runID)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(got) != 2 || got[1].Metrics.UpdatesPerSecond != 60 || got[1].Probe != -0.25 {
		t.Errorf("samples not restored: %+v", got)
	}

	f, err := st.LoadField(runID)
	if err != nil {
		t.Fatalf("load field failed: %v", err)
	}
	if f[1][1] != 0.125 || f[2][2] != 3 {
		t.Errorf("field not restored exactly: %v", f)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir(), nil)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	meta, samples, _ := testRun(t)
	first, err := st.Save(meta, samples, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := st.Save(meta, samples, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if first == second {
		t.Errorf("run ids collide: %s", first)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir, nil)
	meta, samples, field := testRun(t)

	runID, err := st.Save(meta, samples, field)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metaFile, metricsFile, fieldFile} {
		if _, err := os.Stat(filepath.Join(dir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir(), nil)
	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestExport(t *testing.T) {
	st := New(t.TempDir(), nil)
	meta, samples, _ := testRun(t)
	runID, err := st.Save(meta, samples, nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var js bytes.Buffer
	if err := st.ExportJSON(&js, runID); err != nil {
		t.Fatalf("export json failed: %v", err)
	}
	var doc ExportData
	if err := json.Unmarshal(js.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc.Run.ID != runID || len(doc.Samples) != 2 {
		t.Errorf("unexpected export %+v", doc)
	}

	var cs bytes.Buffer
	if err := st.ExportCSV(&cs, runID); err != nil {
		t.Fatalf("export csv failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(cs.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "frame,max_amplitude,total_energy,updates_per_second,probe" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "2,0.900000,1.500000,60,-0.250000" {
		t.Errorf("unexpected row %q", lines[2])
	}
}
