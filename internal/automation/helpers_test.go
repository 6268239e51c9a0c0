package automation

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/wave"
)

func newDriver(grid *wave.Grid, obs *wave.ObstacleField, p *wave.Params) *sim.Driver {
	return sim.New(grid, obs, p, metrics.NewCollector(nil))
}

func nodeFor(t *testing.T, src string) yaml.Node {
	t.Helper()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatal(err)
	}
	return *doc.Content[0]
}
