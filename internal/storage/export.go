package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/wavesim/internal/sim"
)

// ExportData is the JSON document written by ExportJSON.
type ExportData struct {
	Run     RunMetadata  `json:"run"`
	Samples []sim.Sample `json:"samples"`
}

// ExportJSON writes a stored run and its samples as one indented document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Run: *meta, Samples: samples})
}

// ExportCSV writes the samples of a stored run with a header row.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	return writeSamples(w, samples)
}
