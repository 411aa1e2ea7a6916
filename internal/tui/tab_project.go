package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/model"
	"github.com/theirongolddev/estimasi/internal/tui/components"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fieldKind int

const (
	fieldNumber fieldKind = iota // free numeric text, lower bound 0
	fieldSlider                  // bounded, stepped
	fieldToggle
	fieldDerived // read-only
)

// projectField is one row of the Project tab.
type projectField struct {
	label   string
	kind    fieldKind
	integer bool
	step    float64
	lo, hi  float64 // slider bounds
	get     func(*estimator.Estimator) float64
	set     func(*estimator.Estimator, float64)
	show    func(*estimator.Estimator) string
}

// projectState tracks the Project tab.
type projectState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func tierCountField(t model.Tier) projectField {
	return projectField{
		label:   "Fitur " + t.Label(),
		kind:    fieldNumber,
		integer: true,
		step:    1,
		get:     func(e *estimator.Estimator) float64 { return float64(e.Features().Count(t)) },
		set:     func(e *estimator.Estimator, v float64) { e.SetFeatureCount(t, int(v)) },
	}
}

func tierEffortField(t model.Tier) projectField {
	return projectField{
		label: "Hari/Fitur " + t.Label(),
		kind:  fieldNumber,
		step:  0.5,
		get:   func(e *estimator.Estimator) float64 { return e.Features().Effort(t) },
		set:   func(e *estimator.Estimator, v float64) { e.SetFeatureEffort(t, v) },
	}
}

// projectFields lists the rows for the current mode: duration is typed in
// manual mode and derived from the feature rows otherwise.
func projectFields(e *estimator.Estimator) []projectField {
	fields := []projectField{{
		label: "Mode",
		kind:  fieldToggle,
		set:   func(e *estimator.Estimator, _ float64) { e.ToggleMode() },
		show:  func(e *estimator.Estimator) string { return e.Params().Mode.Label() },
	}}

	if e.Params().Mode == model.ModeFeatures {
		for _, t := range model.Tiers {
			fields = append(fields, tierCountField(t))
		}
		for _, t := range model.Tiers {
			fields = append(fields, tierEffortField(t))
		}
		fields = append(fields,
			projectField{
				label: "Rasio Testing (%)",
				kind:  fieldSlider,
				step:  5,
				lo:    10,
				hi:    50,
				get: func(e *estimator.Estimator) float64 { return e.Params().TestingRatioPercent },
				set: func(e *estimator.Estimator, v float64) { e.SetTestingRatio(v) },
			},
			projectField{
				label: "Staging/UAT (minggu)",
				kind:  fieldNumber,
				step:  1,
				get:   func(e *estimator.Estimator) float64 { return e.Params().StagingWeeks },
				set:   func(e *estimator.Estimator, v float64) { e.SetStagingWeeks(v) },
			},
			projectField{
				label: "Durasi (bulan)",
				kind:  fieldDerived,
				show: func(e *estimator.Estimator) string {
					return cli.FormatMonths(e.Params().DurationMonths) + " (otomatis)"
				},
			},
		)
	} else {
		fields = append(fields, projectField{
			label: "Durasi (bulan)",
			kind:  fieldNumber,
			step:  0.5,
			get:   func(e *estimator.Estimator) float64 { return e.Params().DurationMonths },
			set:   func(e *estimator.Estimator, v float64) { e.SetDuration(v) },
		})
	}

	fields = append(fields,
		projectField{
			label: "Risk Buffer (%)",
			kind:  fieldSlider,
			step:  5,
			lo:    0,
			hi:    50,
			get: func(e *estimator.Estimator) float64 { return e.Params().RiskBufferPercent },
			set: func(e *estimator.Estimator, v float64) { e.SetRiskBuffer(v) },
		},
		projectField{
			label: "PPN (%)",
			kind:  fieldNumber,
			step:  1,
			get:   func(e *estimator.Estimator) float64 { return e.Params().TaxPercent },
			set:   func(e *estimator.Estimator, v float64) { e.SetTaxPercent(v) },
		},
		projectField{
			label: "Termasuk PPN",
			kind:  fieldToggle,
			set:   func(e *estimator.Estimator, _ float64) { e.ToggleIncludeTax() },
			show: func(e *estimator.Estimator) string {
				if e.Params().IncludeTax {
					return "Ya"
				}
				return "Tidak"
			},
		},
	)
	return fields
}

// clamp bounds v to the field's range. Sliders clamp both ends; other
// numeric fields only reject negatives.
func (f projectField) clamp(v float64) float64 {
	if v < 0 {
		v = 0
	}
	if f.kind == fieldSlider {
		if v < f.lo {
			v = f.lo
		}
		if v > f.hi {
			v = f.hi
		}
	}
	return v
}

// rangeHint describes the accepted range of a slider field, or "".
func (f projectField) rangeHint() string {
	if f.kind != fieldSlider {
		return ""
	}
	return fmt.Sprintf("%s–%s", cli.FormatMonths(f.lo), cli.FormatMonths(f.hi))
}

func (f projectField) value(e *estimator.Estimator) string {
	if f.show != nil {
		return f.show(e)
	}
	return strconv.FormatFloat(f.get(e), 'f', -1, 64)
}

func (s *projectState) clampCursor(e *estimator.Estimator) {
	n := len(projectFields(e))
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (a App) updateProjectKeys(key string) (tea.Model, tea.Cmd, bool) {
	fields := projectFields(a.est)
	if cur, ok := listCursor(a.project.cursor, len(fields), key); ok {
		a.project.cursor = cur
		return a, nil, true
	}

	f := fields[a.project.cursor]
	switch key {
	case "enter", " ":
		switch f.kind {
		case fieldToggle:
			f.set(a.est, 0)
			a.project.clampCursor(a.est)
			return a, nil, true
		case fieldNumber, fieldSlider:
			return a.projectStartEdit(f)
		}
		return a, nil, true
	case "+", "=", "-":
		if f.kind != fieldNumber && f.kind != fieldSlider {
			return a, nil, true
		}
		delta := f.step
		if key == "-" {
			delta = -delta
		}
		f.set(a.est, f.clamp(f.get(a.est)+delta))
		return a, nil, true
	}
	return a, nil, false
}

func (a App) projectStartEdit(f projectField) (tea.Model, tea.Cmd, bool) {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20
	ti.Prompt = ""
	ti.SetValue(f.value(a.est))
	ti.Focus()

	a.project.editing = true
	a.project.input = ti
	return a, ti.Cursor.BlinkCmd(), true
}

func (a App) updateProjectInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		fields := projectFields(a.est)
		f := fields[a.project.cursor]
		raw := strings.TrimSpace(a.project.input.Value())
		var v float64
		if f.integer {
			v = float64(estimator.CoerceInt(raw))
		} else {
			v = estimator.CoerceFloat(raw)
		}
		clamped := f.clamp(v)
		f.set(a.est, clamped)
		a.project.editing = false
		if f.kind == fieldSlider && clamped != v {
			return a.setFlash(fmt.Sprintf("%s dibatasi ke %s (rentang %s)",
				f.label, cli.FormatMonths(clamped), f.rangeHint()), false)
		}
		return a, nil
	case "esc":
		a.project.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.project.input, cmd = a.project.input.Update(msg)
	return a, cmd
}

func (a App) renderProjectTab(cw int) string {
	t := theme.Active
	fields := projectFields(a.est)

	leftW, rightW := cw, 0
	if !a.isCompactLayout() {
		halves := components.LayoutRow(cw, 2)
		leftW, rightW = halves[0], halves[1]
	}
	innerW := components.CardInnerWidth(leftW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	derivedStyle := lipgloss.NewStyle().Foreground(t.Info).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	const labelW = 22
	sliderW := innerW - labelW - 2 - 8 - 12
	if sliderW < 8 {
		sliderW = 8
	}

	var body strings.Builder
	for i, f := range fields {
		selected := i == a.project.cursor

		if selected && a.project.editing {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(accentStyle.Render(fmt.Sprintf("%-*s ", labelW, f.label)))
			body.WriteString(a.project.input.View())
			if hint := f.rangeHint(); hint != "" {
				body.WriteString(hintStyle.Render("  rentang " + hint))
			}
			body.WriteString("\n")
			continue
		}

		value := f.value(a.est)
		var line string
		if selected {
			line = markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-*s ", labelW, f.label)) +
				selectedStyle.Render(value)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad))
			}
		} else {
			vs := valueStyle
			if f.kind == fieldDerived {
				vs = derivedStyle
			}
			line = space.Render("  ") +
				labelStyle.Render(fmt.Sprintf("%-*s ", labelW, f.label)) +
				vs.Render(value)
		}
		body.WriteString(line)

		if f.kind == fieldSlider && !selected {
			body.WriteString(space.Render("  "))
			body.WriteString(components.Slider(f.get(a.est), f.lo, f.hi, sliderW))
		}
		body.WriteString("\n")
	}

	left := components.FocusCard("Parameter Proyek", strings.TrimRight(body.String(), "\n"), leftW)
	if rightW == 0 {
		return left + "\n" + a.renderDurationCard(cw)
	}
	return components.CardRow([]string{left, a.renderDurationCard(rightW)})
}

// renderDurationCard explains where the duration comes from.
func (a App) renderDurationCard(w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	p := a.est.Params()
	row := func(label, value string, st lipgloss.Style) string {
		return labelStyle.Render(fmt.Sprintf("%-22s", label)) + st.Render(value) + "\n"
	}

	var b strings.Builder
	if p.Mode != model.ModeFeatures {
		b.WriteString(row("Durasi", cli.FormatMonths(p.DurationMonths)+" bulan", totalStyle))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Durasi diisi manual. Tekan [m] untuk menghitung dari jumlah fitur."))
		return components.ContentCard("Estimasi Durasi", b.String(), w)
	}

	in := a.est.Input()
	s := estimator.ExplainDuration(in.Features, in.Team, p.TestingRatioPercent, p.StagingWeeks)
	b.WriteString(row("Total effort", fmt.Sprintf("%s hari", strconv.FormatFloat(s.EffortDays, 'f', -1, 64)), valueStyle))
	b.WriteString(row("Developer", strconv.Itoa(s.Developers), valueStyle))
	b.WriteString(row("Pengembangan", fmt.Sprintf("%.2f bulan", s.BaseMonths), valueStyle))
	b.WriteString(row("+ Testing", fmt.Sprintf("%.2f bulan", s.WithTesting), valueStyle))
	b.WriteString(row("+ Staging/UAT", fmt.Sprintf("%.2f bulan", s.StagingMonths), valueStyle))
	b.WriteString(row("Durasi", cli.FormatMonths(s.Months)+" bulan", totalStyle))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d hari kerja per developer per bulan.", estimator.WorkDaysPerMonth)))
	return components.ContentCard("Estimasi Durasi", b.String(), w)
}
