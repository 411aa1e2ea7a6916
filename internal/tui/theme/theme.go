// Package theme defines the colour palettes for the estimasi TUI.
package theme

import (
	"github.com/theirongolddev/estimasi/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps estimasi's colour roles onto one palette.
type Theme struct {
	Name          string
	Background    lipgloss.Color // app background
	Surface       lipgloss.Color // card background
	SurfaceBright lipgloss.Color // selected row
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // focused card
	TextDim       lipgloss.Color
	TextMuted     lipgloss.Color // labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color

	Money  lipgloss.Color // Rupiah amounts, success flashes
	Warn   lipgloss.Color // one-time costs, save failures
	Danger lipgloss.Color // risk buffer, error flashes
	Info   lipgloss.Color // monthly costs, derived values, key hints

	// Team category colours.
	Development lipgloss.Color
	Design      lipgloss.Color
	Management  lipgloss.Color
	QA          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default palette.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Money:         lipgloss.Color("#A3B859"),
	Warn:          lipgloss.Color("#DA702C"),
	Danger:        lipgloss.Color("#D14D41"),
	Info:          lipgloss.Color("#24837B"),
	Development:   lipgloss.Color("#4385BE"),
	Design:        lipgloss.Color("#CE5D97"),
	Management:    lipgloss.Color("#D0A215"),
	QA:            lipgloss.Color("#879A39"),
}

// CatppuccinMocha uses the Catppuccin Mocha pastels.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	Money:         lipgloss.Color("#C6F6C1"),
	Warn:          lipgloss.Color("#FAB387"),
	Danger:        lipgloss.Color("#F38BA8"),
	Info:          lipgloss.Color("#94E2D5"),
	Development:   lipgloss.Color("#89B4FA"),
	Design:        lipgloss.Color("#F5C2E7"),
	Management:    lipgloss.Color("#F9E2AF"),
	QA:            lipgloss.Color("#A6E3A1"),
}

// TokyoNight uses the Tokyo Night palette.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Money:         lipgloss.Color("#B9E87A"),
	Warn:          lipgloss.Color("#FF9E64"),
	Danger:        lipgloss.Color("#F7768E"),
	Info:          lipgloss.Color("#7DCFFF"),
	Development:   lipgloss.Color("#7AA2F7"),
	Design:        lipgloss.Color("#BB9AF7"),
	Management:    lipgloss.Color("#E0AF68"),
	QA:            lipgloss.Color("#9ECE6A"),
}

// Terminal sticks to the 16 ANSI colours.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Money:         lipgloss.Color("10"),
	Warn:          lipgloss.Color("3"),
	Danger:        lipgloss.Color("1"),
	Info:          lipgloss.Color("6"),
	Development:   lipgloss.Color("4"),
	Design:        lipgloss.Color("5"),
	Management:    lipgloss.Color("3"),
	QA:            lipgloss.Color("2"),
}

// Category returns the colour for a team category.
func (t Theme) Category(c model.Category) lipgloss.Color {
	switch c {
	case model.CategoryDevelopment:
		return t.Development
	case model.CategoryDesign:
		return t.Design
	case model.CategoryManagement:
		return t.Management
	case model.CategoryQA:
		return t.QA
	}
	return t.TextMuted
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists every theme name in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Next returns the theme after name, wrapping around. Unknown names yield
// the first theme.
func Next(name string) Theme {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)]
		}
	}
	return All[0]
}

// Prev returns the theme before name, wrapping around.
func Prev(name string) Theme {
	for i, t := range All {
		if t.Name == name {
			return All[(i-1+len(All))%len(All)]
		}
	}
	return All[0]
}

// Valid reports whether name is a known theme.
func Valid(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}
