package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/letterdrop/internal/forces"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.DropDuration != DefaultDropDuration {
		t.Errorf("expected drop duration %f, got %f", DefaultDropDuration, cfg.DropDuration)
	}
	if len(cfg.Wind) != 3 {
		t.Errorf("expected 3 wind layers, got %d", len(cfg.Wind))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("storm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Wind[0].Amplitude <= DefaultConfig().Wind[0].Amplitude {
		t.Error("storm should blow harder than the default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("storm preset invalid: %v", err)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("hurricane"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	for _, want := range []string{"calm", "breezy", "storm", "mobile"} {
		if !seen[want] {
			t.Errorf("missing preset %q", want)
		}
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}
}

func TestDefaultWindMatchesForceModel(t *testing.T) {
	cfg := DefaultConfig()
	table := forces.DefaultWind()
	if len(cfg.Wind) != len(table) {
		t.Fatalf("config has %d wind layers, force model has %d", len(cfg.Wind), len(table))
	}
	for i, h := range table {
		w := cfg.Wind[i]
		if w.Amplitude != h.Amplitude || w.Frequency != h.Frequency || w.PhaseMul != h.PhaseMul {
			t.Errorf("wind layer %d diverged from the force model: %+v vs %+v", i, w, h)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("gravity: 600\ndrop_duration: 0.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Gravity != 600 {
		t.Errorf("expected gravity 600, got %f", cfg.Gravity)
	}
	if cfg.DropDuration != 0.5 {
		t.Errorf("expected drop duration 0.5, got %f", cfg.DropDuration)
	}
	// Unset fields keep their defaults.
	if cfg.RopeFinal != DefaultRopeFinal {
		t.Errorf("expected default rope length, got %f", cfg.RopeFinal)
	}
}

func TestLoadRejectsBadTuning(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative gravity", "gravity: -5\n"},
		{"zero drop", "drop_duration: 0\n"},
		{"drag too high", "drag: 1.5\n"},
		{"rope inverted", "rope_final: 10\nrope_min: 50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
