package config

import (
	"fmt"
	"sort"
)

// Presets are named overrides applied on top of DefaultConfig.
var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"dense": func(c *Config) {
		c.Particles.Count = 140
		c.Connections.Radius = 110
	},
	"calm": func(c *Config) {
		c.Particles.MaxSpeed = 0.1
		c.Pointer.Factor = 0.005
		c.Render.LayerOpacity = 0.4
	},
	"swarm": func(c *Config) {
		c.Particles.Count = 800
		c.Particles.MaxSpeed = 0.6
		c.Connections.Radius = 60
	},
	"terminal": func(c *Config) {
		c.Particles.Count = 45
		c.Particles.MaxSpeed = 1.0
		c.Particles.MaxRadius = 4
		c.Render.FPS = 30
	},
}

// GetPreset returns DefaultConfig with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ApplyPreset applies the named preset to cfg.
func ApplyPreset(cfg *Config, name string) error {
	apply, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%q (available: %v): %w", name, ListPresets(), ErrUnknownPreset)
	}
	apply(cfg)
	return nil
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
