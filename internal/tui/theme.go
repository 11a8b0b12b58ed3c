package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/whohasphone/internal/config"
)

// Palette is the set of semantic colors a theme provides.
type Palette struct {
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Border  lipgloss.Color
	Bar     lipgloss.Color
	Accent  lipgloss.Color
	Focus   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Catppuccin Mocha
var darkPalette = Palette{
	Text:    "#cdd6f4",
	Subtle:  "#7f849c",
	Border:  "#585b70",
	Bar:     "#313244",
	Accent:  "#f5c2e7",
	Focus:   "#b4befe",
	Success: "#a6e3a1",
	Error:   "#f38ba8",
}

// Catppuccin Latte
var lightPalette = Palette{
	Text:    "#4c4f69",
	Subtle:  "#8c8fa1",
	Border:  "#acb0be",
	Bar:     "#ccd0da",
	Accent:  "#ea76cb",
	Focus:   "#7287fd",
	Success: "#40a02b",
	Error:   "#d20f39",
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Bar        lipgloss.Style
	MenuItem   lipgloss.Style
	Hint       lipgloss.Style
	Heading    lipgloss.Style
	Rule       lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Name       lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Yes        lipgloss.Style
	No         lipgloss.Style
	Button     lipgloss.Style
	ButtonHot  lipgloss.Style
	Modal      lipgloss.Style
	Field      lipgloss.Style
	FieldHot   lipgloss.Style
	Status     lipgloss.Style
}

func newStyles(p Palette) Styles {
	return Styles{
		Bar:        lipgloss.NewStyle().Foreground(p.Text).Background(p.Bar),
		MenuItem:   lipgloss.NewStyle().Foreground(p.Accent).Background(p.Bar).Bold(true),
		Hint:       lipgloss.NewStyle().Foreground(p.Subtle).Italic(true),
		Heading:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Rule:       lipgloss.NewStyle().Foreground(p.Border),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		CardActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Focus).Padding(0, 1),
		Name:       lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(p.Subtle),
		Value:      lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Yes:        lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		No:         lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Button:     lipgloss.NewStyle().Foreground(p.Subtle),
		ButtonHot:  lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Modal:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 1),
		Field:      lipgloss.NewStyle().Foreground(p.Text),
		FieldHot:   lipgloss.NewStyle().Foreground(p.Focus).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(p.Subtle),
	}
}

// resolveTheme turns a preference into a concrete dark or light theme.
func resolveTheme(pref string, hasDark func() bool) string {
	switch pref = config.NormalizeTheme(pref); pref {
	case config.ThemeDark, config.ThemeLight:
		return pref
	}
	if hasDark == nil || hasDark() {
		return config.ThemeDark
	}
	return config.ThemeLight
}

func paletteFor(theme string) Palette {
	if theme == config.ThemeLight {
		return lightPalette
	}
	return darkPalette
}
