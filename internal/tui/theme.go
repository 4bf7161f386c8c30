package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI chrome. The fractal cells
// carry their own colors; themes only style the stats panel and help.
type Theme struct {
	Name    string
	Header  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Header:  lipgloss.Color("#00ffff"),
		Label:   lipgloss.Color("#666666"),
		Value:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#ff00ff"),
		Muted:   lipgloss.Color("#444444"),
		Warning: lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Header:  lipgloss.Color("#00ff00"),
		Label:   lipgloss.Color("#005500"),
		Value:   lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#003300"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Header:  lipgloss.Color("#ffffff"),
		Label:   lipgloss.Color("#888888"),
		Value:   lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Muted:   lipgloss.Color("#555555"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{ThemeCyberpunk, ThemeRetroGreen, ThemeMinimal}
)

// NextTheme cycles to the theme after the given one.
func NextTheme(current Theme) Theme {
	for i, t := range Themes {
		if t.Name == current.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
