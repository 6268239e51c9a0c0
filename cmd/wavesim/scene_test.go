package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func sceneCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSceneFlags(cmd)
	for name, v := range flags {
		if err := cmd.Flags().Set(name, v); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	return cmd
}

func TestLoadScenePresetWithOverrides(t *testing.T) {
	cmd := sceneCmd(t, map[string]string{"damping": "0.95", "scheme": "fire"})
	cfg, name, err := loadScene(cmd, []string{"box"})
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if name != "box" {
		t.Errorf("expected name box, got %s", name)
	}
	if cfg.Damping != 0.95 || cfg.ColorScheme != "fire" {
		t.Errorf("flags not applied: damping %g scheme %s", cfg.Damping, cfg.ColorScheme)
	}
	// untouched flags keep the preset values
	if cfg.Boundary != "reflecting" || cfg.GridSize == 0 {
		t.Errorf("preset values lost: boundary %s grid %d", cfg.Boundary, cfg.GridSize)
	}
}

func TestLoadSceneRejects(t *testing.T) {
	if _, _, err := loadScene(sceneCmd(t, nil), []string{"nope"}); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, _, err := loadScene(sceneCmd(t, map[string]string{"speed": "3"}), nil); err == nil {
		t.Error("expected error for out-of-range speed")
	}
}

func TestNewDriverCarriesExtraMetrics(t *testing.T) {
	cfg, _, err := loadScene(sceneCmd(t, map[string]string{"grid": "20"}), []string{"pond"})
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	d, err := newDriver(cfg)
	if err != nil {
		t.Fatalf("newDriver: %v", err)
	}
	d.Step()
	values := d.Collector().Values()
	for _, name := range []string{"energy_drift", "diverged_at"} {
		if _, ok := values[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if values["diverged_at"] != 0 {
		t.Errorf("pond should not diverge, got %g", values["diverged_at"])
	}
}
