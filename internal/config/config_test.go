package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.Iterations <= 0 {
		t.Error("iterations should be positive")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"negative size", func(c *Config) { c.Size = -1 }},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }},
		{"negative diffusion rate", func(c *Config) { c.DiffusionRate = -0.1 }},
		{"zero diffusion step", func(c *Config) { c.DiffusionStep = 0 }},
		{"NaN feed", func(c *Config) { c.Feed = math.NaN() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("mitosis"); err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}
	if cfg.Feed != 0.0367 || cfg.Kill != 0.0649 {
		t.Errorf("preset not applied: feed=%v kill=%v", cfg.Feed, cfg.Kill)
	}

	if err := cfg.ApplyPreset("nonexistent"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPresetNamesSortedAndValid(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, n := range names {
		cfg := DefaultConfig()
		if err := cfg.ApplyPreset(n); err != nil {
			t.Errorf("preset %q: %v", n, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q yields invalid config: %v", n, err)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 128
	cfg.Feed = 0.041
	cfg.Ramp = Ramp{Iterations: 1000, Feed: 0.02, Kill: 0.05}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadAppliesPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "coral"

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Feed != Presets["coral"].Feed {
		t.Errorf("preset feed not applied: %v", loaded.Feed)
	}
}

func TestSourceConstant(t *testing.T) {
	cfg := DefaultConfig()
	src := cfg.Source()

	p0, p9 := src(0), src(9999)
	if p0 != p9 {
		t.Error("constant source varied with tick")
	}
	if p0.Feed != cfg.Feed || p0.Kill != cfg.Kill {
		t.Errorf("source params %+v do not match config", p0)
	}
}

func TestSourceRampInterpolates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Feed, cfg.Kill = 0.02, 0.05
	cfg.Ramp = Ramp{Iterations: 100, Feed: 0.04, Kill: 0.07}
	src := cfg.Source()

	if got := src(0).Feed; got != 0.02 {
		t.Errorf("feed at tick 0 = %v, want 0.02", got)
	}
	if got := src(50).Feed; math.Abs(got-0.03) > 1e-12 {
		t.Errorf("feed at tick 50 = %v, want 0.03", got)
	}
	if got := src(100).Kill; math.Abs(got-0.07) > 1e-12 {
		t.Errorf("kill at tick 100 = %v, want 0.07", got)
	}
	// Ramps hold their targets once finished.
	if got := src(5000).Feed; math.Abs(got-0.04) > 1e-12 {
		t.Errorf("feed past ramp = %v, want 0.04", got)
	}
}
