package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	f := cfg.Field()
	if f.Count != 60 || f.ConnectionRadius != 150 || f.InteractionRadius != 100 {
		t.Errorf("unexpected field config %+v", f)
	}
	s := cfg.Style()
	if s.Color.R != 93 || s.Color.G != 214 || s.Color.B != 44 {
		t.Errorf("unexpected colour %+v", s.Color)
	}
	if s.FillOpacity != 0.4 || s.LinkOpacity != 0.1 || s.LinkWidth != 0.5 {
		t.Errorf("unexpected style %+v", s)
	}
	// the layer is composited at 60%
	if s.LayerOpacity != 0.6 {
		t.Errorf("expected layer opacity 0.6, got %v", s.LayerOpacity)
	}
	if a := s.Paint(s.FillOpacity).A; a != 61 {
		t.Errorf("expected composed fill alpha 61, got %d", a)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"count", func(c *Config) { c.Particles.Count = 0 }},
		{"radius range", func(c *Config) { c.Particles.MaxRadius = 0.1 }},
		{"connection radius", func(c *Config) { c.Connections.Radius = -1 }},
		{"link opacity", func(c *Config) { c.Connections.Opacity = 1.5 }},
		{"pointer factor", func(c *Config) { c.Pointer.Factor = 2 }},
		{"fps", func(c *Config) { c.Render.FPS = 0 }},
		{"color", func(c *Config) { c.Render.Color = "green" }},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrParameterBounds) {
			t.Errorf("%s: expected ErrParameterBounds, got %v", tt.name, err)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Particles.Count = 90
	cfg.Render.Color = "#ff00ff"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Particles.Count != 90 || loaded.Render.Color != "#ff00ff" {
		t.Errorf("unexpected round trip %+v", loaded)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Particles.Count != 12 {
		t.Errorf("expected count 12, got %d", cfg.Particles.Count)
	}
	if cfg.Connections.Radius != 150 {
		t.Errorf("expected default radius, got %v", cfg.Connections.Radius)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("connections:\n  opacity: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if err := ApplyPreset(DefaultConfig(), "nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}

	cfg := GetPreset("dense")
	if cfg.Particles.Count != 140 {
		t.Errorf("expected dense count 140, got %d", cfg.Particles.Count)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#5dd62c")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0x5d || c.G != 0xd6 || c.B != 0x2c || c.A != 255 {
		t.Errorf("unexpected colour %+v", c)
	}
	for _, bad := range []string{"", "5dd62c", "#5dd6", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
