package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/plexus/internal/config"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Particle   lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Warning    lipgloss.Color
}

// Available themes
var (
	ThemePlexus = Theme{
		Name:       "plexus",
		Particle:   lipgloss.Color(config.DefaultColor),
		Background: lipgloss.Color("#050805"),
		Text:       lipgloss.Color("#e6ffe0"),
		Muted:      lipgloss.Color("#4d6647"),
		Accent:     lipgloss.Color("#9dff6e"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Particle:   lipgloss.Color("#ff00ff"), // Magenta
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#00ffff"),
		Warning:    lipgloss.Color("#ff8800"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Particle:   lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Particle:   lipgloss.Color("#00a8cc"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Warning:    lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Particle:   lipgloss.Color("#ff6b6b"), // Coral
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#feca57"),
		Warning:    lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemePlexus,
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemePlexus
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// rgb converts a theme colour to NRGBA. Theme colours are always #rrggbb.
func rgb(c lipgloss.Color) color.NRGBA {
	n, err := config.ParseColor(string(c))
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return n
}
