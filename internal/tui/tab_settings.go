package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/estimasi/internal/config"
	"github.com/theirongolddev/estimasi/internal/tui/components"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsState tracks the settings tab state.
type settingsState struct {
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "enter", " ", "+", "=":
		a.settingsSetTheme(theme.Next(theme.Active.Name).Name)
		return a, nil, true
	case "-":
		a.settingsSetTheme(theme.Prev(theme.Active.Name).Name)
		return a, nil, true
	}
	return a, nil, false
}

// settingsSetTheme activates name and persists it to the config file.
func (a *App) settingsSetTheme(name string) {
	theme.SetActive(name)

	// A broken config still yields defaults; saving replaces it.
	cfg, _ := config.Load()
	cfg.Appearance.Theme = name
	a.settings.saveErr = config.Save(cfg)
	a.settings.saved = a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	activeStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright).Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var form strings.Builder
	form.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", "Theme:")))
	for i, name := range theme.Names() {
		if i > 0 {
			form.WriteString(space.Render("  "))
		}
		if name == t.Name {
			form.WriteString(activeStyle.Render(" " + name + " "))
		} else {
			form.WriteString(valueStyle.Render(" " + name + " "))
		}
	}
	form.WriteString("\n")

	if a.settings.saveErr != nil {
		form.WriteString("\n")
		form.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
		form.WriteString("\n")
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(greenStyle.Render("Saved!"))
		form.WriteString("\n")
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[Enter/+] next theme  [-] previous theme"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	info.WriteString(labelStyle.Render("Export file:  ") + valueStyle.Render(a.exportPath) + "\n")
	info.WriteString(labelStyle.Render("Team rows:    ") + valueStyle.Render(fmt.Sprintf("%d", len(a.est.Team()))) + "\n")
	info.WriteString(labelStyle.Render("Cost rows:    ") + valueStyle.Render(fmt.Sprintf("%d", len(a.est.Operational()))) + "\n")
	info.WriteString(labelStyle.Render("Seed values come from the config file; edits here are not saved."))

	var b strings.Builder
	b.WriteString(components.FocusCard("Settings", form.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", info.String(), cw))
	return b.String()
}
