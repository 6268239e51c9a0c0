package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

const (
	metaFile    = "metadata.json"
	metricsFile = "metrics.csv"
	fieldFile   = "field.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

// Store keeps one directory per run under baseDir.
type Store struct {
	baseDir string
	logger  *slog.Logger
}

func New(baseDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{baseDir: baseDir, logger: logger}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes how a run was produced and how it ended.
type RunMetadata struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Timestamp      time.Time          `json:"timestamp"`
	Width          float64            `json:"width"`
	Height         float64            `json:"height"`
	GridSize       int                `json:"grid_size"`
	Damping        float64            `json:"damping"`
	Amplitude      float64            `json:"amplitude"`
	Speed          float64            `json:"speed"`
	ObstacleRadius int                `json:"obstacle_radius"`
	Boundary       string             `json:"boundary"`
	ColorScheme    string             `json:"color_scheme"`
	Frames         int                `json:"frames"`
	Obstacles      []wave.Obstacle    `json:"obstacles"`
	Metrics        map[string]float64 `json:"metrics"`
}

// Describe fills the parameter fields of a metadata record.
func Describe(name string, grid *wave.Grid, obstacles *wave.ObstacleField, p wave.Params) RunMetadata {
	return RunMetadata{
		Name:           name,
		Width:          grid.Width(),
		Height:         grid.Height(),
		GridSize:       grid.Size(),
		Damping:        p.Damping,
		Amplitude:      p.Amplitude,
		Speed:          p.Speed,
		ObstacleRadius: p.ObstacleRadius,
		Boundary:       p.Boundary.String(),
		ColorScheme:    p.Scheme.String(),
		Obstacles:      obstacles.All(),
	}
}

// Save writes metadata, the per-frame metrics and the final field. The run
// ID is derived from meta.Name and the current time.
func (s *Store) Save(meta RunMetadata, samples []sim.Sample, field [][]float64) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	name := meta.Name
	if name == "" {
		name = "run"
	}
	runID, runDir, err := s.newRunDir(name)
	if err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Frames = len(samples)

	if err := writeJSON(filepath.Join(runDir, metaFile), meta); err != nil {
		return "", err
	}
	if err := writeMetrics(filepath.Join(runDir, metricsFile), samples); err != nil {
		return "", err
	}
	if field != nil {
		if err := writeField(filepath.Join(runDir, fieldFile), field); err != nil {
			return "", err
		}
	}

	s.logger.Info("run saved", "id", runID, "frames", meta.Frames, "dir", runDir)
	return runID, nil
}

func (s *Store) newRunDir(name string) (string, string, error) {
	base := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runID := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return runID, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		runID = fmt.Sprintf("%s_%d", base, n)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMetrics(path string, samples []sim.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeSamples(f, samples)
}

func writeSamples(w io.Writer, samples []sim.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "max_amplitude", "total_energy", "updates_per_second", "probe"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.Itoa(s.Frame),
			strconv.FormatFloat(s.Metrics.MaxAmplitude, 'f', 6, 64),
			strconv.FormatFloat(s.Metrics.TotalEnergy, 'f', 6, 64),
			strconv.Itoa(s.Metrics.UpdatesPerSecond),
			strconv.FormatFloat(s.Probe, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeField(path string, field [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := make([]string, 0, len(field))
	for _, cells := range field {
		row = row[:0]
		for _, v := range cells {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			s.logger.Debug("skipping run", "dir", entry.Name(), "err", err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata of %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads the per-frame metrics of a run.
func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, metricsFile))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		frame, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		s := sim.Sample{Frame: frame}
		s.Metrics = metrics.Snapshot{
			MaxAmplitude: parseFloat(record[1]),
			TotalEnergy:  parseFloat(record[2]),
		}
		s.Metrics.UpdatesPerSecond, _ = strconv.Atoi(record[3])
		if len(record) > 4 {
			s.Probe = parseFloat(record[4])
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// LoadField reads the final field of a run.
func (s *Store) LoadField(runID string) ([][]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, fieldFile))
	if err != nil {
		return nil, err
	}
	field := make([][]float64, len(records))
	for i, record := range records {
		field[i] = make([]float64, len(record))
		for j, v := range record {
			field[i][j] = parseFloat(v)
		}
	}
	return field, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
