package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/field"
	"gopkg.in/yaml.v3"
)

var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("config: parameter out of valid bounds")

	// ErrUnknownPreset indicates a preset name that is not in Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

const (
	DefaultColor        = "#5dd62c"
	DefaultFillOpacity  = 0.4
	DefaultLinkOpacity  = 0.1
	DefaultLinkWidth    = 0.5
	DefaultLayerOpacity = 0.6
	DefaultFPS          = 60
	DefaultTerminalGain = 4.0
	DefaultTheme        = "plexus"
)

type Config struct {
	Particles   ParticlesConfig   `yaml:"particles"`
	Connections ConnectionsConfig `yaml:"connections"`
	Pointer     PointerConfig     `yaml:"pointer"`
	Render      RenderConfig      `yaml:"render"`
	Seed        int64             `yaml:"seed"`
}

type ParticlesConfig struct {
	Count     int     `yaml:"count"`
	MaxSpeed  float64 `yaml:"max_speed"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

type ConnectionsConfig struct {
	Radius        float64 `yaml:"radius"`
	Opacity       float64 `yaml:"opacity"`
	Width         float64 `yaml:"width"`
	GridThreshold int     `yaml:"grid_threshold"`
}

type PointerConfig struct {
	Radius float64 `yaml:"radius"`
	Factor float64 `yaml:"factor"`
}

type RenderConfig struct {
	Color        string  `yaml:"color"`
	FillOpacity  float64 `yaml:"fill_opacity"`
	LayerOpacity float64 `yaml:"layer_opacity"`
	FPS          int     `yaml:"fps"`
	TerminalGain float64 `yaml:"terminal_gain"`
	Theme        string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles: ParticlesConfig{
			Count:     field.DefaultCount,
			MaxSpeed:  field.DefaultMaxSpeed,
			MinRadius: field.DefaultMinRadius,
			MaxRadius: field.DefaultMaxRadius,
		},
		Connections: ConnectionsConfig{
			Radius:        field.DefaultConnectionRadius,
			Opacity:       DefaultLinkOpacity,
			Width:         DefaultLinkWidth,
			GridThreshold: field.DefaultGridThreshold,
		},
		Pointer: PointerConfig{
			Radius: field.DefaultInteractionRadius,
			Factor: field.DefaultRepulsionFactor,
		},
		Render: RenderConfig{
			Color:        DefaultColor,
			FillOpacity:  DefaultFillOpacity,
			LayerOpacity: DefaultLayerOpacity,
			FPS:          DefaultFPS,
			TerminalGain: DefaultTerminalGain,
			Theme:        DefaultTheme,
		},
	}
}

// DefaultPath is ~/.config/plexus/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "plexus", "config.yaml"), nil
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	p, k, pt, r := c.Particles, c.Connections, c.Pointer, c.Render
	switch {
	case p.Count <= 0:
		return bounds("particles.count", p.Count)
	case p.MaxSpeed < 0:
		return bounds("particles.max_speed", p.MaxSpeed)
	case p.MinRadius <= 0 || p.MaxRadius < p.MinRadius:
		return fmt.Errorf("particles radius range [%v, %v]: %w", p.MinRadius, p.MaxRadius, ErrParameterBounds)
	case k.Radius <= 0:
		return bounds("connections.radius", k.Radius)
	case k.Opacity < 0 || k.Opacity > 1:
		return bounds("connections.opacity", k.Opacity)
	case k.Width <= 0:
		return bounds("connections.width", k.Width)
	case k.GridThreshold < 0:
		return bounds("connections.grid_threshold", k.GridThreshold)
	case pt.Radius < 0:
		return bounds("pointer.radius", pt.Radius)
	case pt.Factor < 0 || pt.Factor > 1:
		return bounds("pointer.factor", pt.Factor)
	case r.FillOpacity < 0 || r.FillOpacity > 1:
		return bounds("render.fill_opacity", r.FillOpacity)
	case r.LayerOpacity < 0 || r.LayerOpacity > 1:
		return bounds("render.layer_opacity", r.LayerOpacity)
	case r.FPS <= 0:
		return bounds("render.fps", r.FPS)
	case r.TerminalGain <= 0:
		return bounds("render.terminal_gain", r.TerminalGain)
	}
	if _, err := ParseColor(r.Color); err != nil {
		return err
	}
	return nil
}

func bounds(name string, v any) error {
	return fmt.Errorf("%s = %v: %w", name, v, ErrParameterBounds)
}

// Field returns the simulation constants.
func (c *Config) Field() field.Config {
	return field.Config{
		Count:             c.Particles.Count,
		MaxSpeed:          c.Particles.MaxSpeed,
		MinRadius:         c.Particles.MinRadius,
		MaxRadius:         c.Particles.MaxRadius,
		ConnectionRadius:  c.Connections.Radius,
		InteractionRadius: c.Pointer.Radius,
		RepulsionFactor:   c.Pointer.Factor,
		GridThreshold:     c.Connections.GridThreshold,
	}
}

// Style returns the paint settings. An invalid colour falls back to the
// default green; Validate reports it.
func (c *Config) Style() engine.Style {
	col, err := ParseColor(c.Render.Color)
	if err != nil {
		col, _ = ParseColor(DefaultColor)
	}
	return engine.Style{
		Color:        col,
		FillOpacity:  c.Render.FillOpacity,
		LinkOpacity:  c.Connections.Opacity,
		LinkWidth:    c.Connections.Width,
		LayerOpacity: c.Render.LayerOpacity,
	}
}

// ParseColor parses #rrggbb.
func ParseColor(s string) (color.NRGBA, error) {
	var c color.NRGBA
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("color %q: %w", s, ErrParameterBounds)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("color %q: %w", s, ErrParameterBounds)
	}
	c.A = 255
	return c, nil
}
