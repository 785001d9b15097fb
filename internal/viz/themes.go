package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Peg    lipgloss.Color
	Ball   lipgloss.Color
	Bar    lipgloss.Color
	Theory lipgloss.Color
	Actual lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color

	// chart series: binomial overlay, observed shares
	CurveColor    asciigraph.AnsiColor
	ObservedColor asciigraph.AnsiColor
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:          "classic",
		Peg:           lipgloss.Color("#6496ff"), // Blue pegs
		Ball:          lipgloss.Color("#ffffff"),
		Bar:           lipgloss.Color("#ff6464"), // Red bins
		Theory:        lipgloss.Color("#ffff64"),
		Actual:        lipgloss.Color("#64ff64"),
		Text:          lipgloss.Color("#ffffff"),
		Muted:         lipgloss.Color("#666688"),
		Accent:        lipgloss.Color("#00c8c8"),
		CurveColor:    asciigraph.Cyan,
		ObservedColor: asciigraph.Red,
	}

	ThemeRetroGreen = Theme{
		Name:          "retro",
		Peg:           lipgloss.Color("#00cc00"), // Green phosphor
		Ball:          lipgloss.Color("#88ff88"),
		Bar:           lipgloss.Color("#00ff00"),
		Theory:        lipgloss.Color("#88ff88"),
		Actual:        lipgloss.Color("#00ff00"),
		Text:          lipgloss.Color("#00ff00"),
		Muted:         lipgloss.Color("#005500"),
		Accent:        lipgloss.Color("#88ff88"),
		CurveColor:    asciigraph.Green,
		ObservedColor: asciigraph.Yellow,
	}

	ThemeMinimal = Theme{
		Name:          "minimal",
		Peg:           lipgloss.Color("#888888"),
		Ball:          lipgloss.Color("#ffffff"),
		Bar:           lipgloss.Color("#cccccc"),
		Theory:        lipgloss.Color("#0088ff"),
		Actual:        lipgloss.Color("#ffffff"),
		Text:          lipgloss.Color("#ffffff"),
		Muted:         lipgloss.Color("#888888"),
		Accent:        lipgloss.Color("#0088ff"),
		CurveColor:    asciigraph.Blue,
		ObservedColor: asciigraph.White,
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
