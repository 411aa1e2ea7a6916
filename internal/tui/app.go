// Package tui provides the interactive Bubble Tea budget form for estimasi.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/clipboard"
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/export"
	"github.com/theirongolddev/estimasi/internal/tui/components"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Copier writes the summary text to a clipboard.
type Copier interface {
	Copy(text string) (clipboard.Method, error)
}

// Options configures NewApp.
type Options struct {
	Copier     Copier // nil uses the system clipboard
	ExportPath string // xlsx written by the export key
}

// DefaultExportPath is used when Options.ExportPath is empty.
const DefaultExportPath = "estimasi.xlsx"

// copiedMsg is sent when a clipboard write finishes.
type copiedMsg struct {
	method clipboard.Method
	err    error
}

// exportedMsg is sent when the xlsx report has been written.
type exportedMsg struct {
	path string
	err  error
}

// clearFlashMsg expires the flash message with the matching sequence.
type clearFlashMsg struct{ seq int }

// App is the root Bubble Tea model.
type App struct {
	est        *estimator.Estimator
	copier     Copier
	exportPath string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	project  projectState
	team     listState
	ops      listState
	settings settingsState

	// Row edit form (huh), shared by the team and operational tabs
	form *rowForm

	flash    components.Flash
	flashSeq int
}

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
	flashDuration    = 3 * time.Second
)

// NewApp creates a TUI model over est.
func NewApp(est *estimator.Estimator, opts Options) App {
	copier := opts.Copier
	if copier == nil {
		copier = clipboard.NewCopier()
	}
	path := opts.ExportPath
	if path == "" {
		path = DefaultExportPath
	}
	return App{
		est:        est,
		copier:     copier,
		exportPath: path,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form.form = a.form.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil || a.project.editing {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			zap.S().Named("tui").Warnw("copy failed", "error", msg.err)
			return a.setFlash(fmt.Sprintf("Gagal menyalin: %s", msg.err), true)
		}
		zap.S().Named("tui").Debugw("summary copied", "method", msg.method)
		return a.setFlash(clipboard.SuccessMessage, false)

	case exportedMsg:
		if msg.err != nil {
			zap.S().Named("tui").Warnw("export failed", "error", msg.err)
			return a.setFlash(fmt.Sprintf("Ekspor gagal: %s", msg.err), true)
		}
		return a.setFlash("Diekspor ke "+msg.path, false)

	case clearFlashMsg:
		if msg.seq == a.flashSeq {
			a.flash = components.Flash{}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Open edit form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Inline project field editor
		if a.project.editing {
			return a.updateProjectInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if model, cmd, handled := a.updateTab(key); handled {
			return model, cmd
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "m":
			a.est.ToggleMode()
			a.project.clampCursor(a.est)
			return a, nil
		case "i":
			a.est.ToggleIncludeTax()
			return a, nil
		case "y":
			return a, a.copyCmd()
		case "e":
			return a, a.exportCmd()
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}
		if idx := components.TabIdxByKey(key); idx >= 0 {
			a.activeTab = idx
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks etc.) to the active editor
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.project.editing {
		var cmd tea.Cmd
		a.project.input, cmd = a.project.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// updateTab routes keys owned by the active tab. handled is false when the
// key should fall through to the global bindings.
func (a App) updateTab(key string) (tea.Model, tea.Cmd, bool) {
	switch a.activeTab {
	case components.TabProject:
		return a.updateProjectKeys(key)
	case components.TabTeam:
		return a.updateTeamKeys(key)
	case components.TabOperational:
		return a.updateOpsKeys(key)
	case components.TabSettings:
		return a.updateSettingsKeys(key)
	}
	return a, nil, false
}

func (a App) setFlash(text string, isErr bool) (tea.Model, tea.Cmd) {
	a.flashSeq++
	a.flash = components.Flash{Text: text, Error: isErr}
	seq := a.flashSeq
	return a, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

func (a App) copyCmd() tea.Cmd {
	p := a.est.Params()
	text := clipboard.Summary(p.DurationMonths, a.est.Totals().GrandTotal)
	copier := a.copier
	return func() tea.Msg {
		method, err := copier.Copy(text)
		return copiedMsg{method: method, err: err}
	}
}

func (a App) exportCmd() tea.Cmd {
	report := export.Report{Input: a.est.Input(), Totals: a.est.Totals()}
	path := a.exportPath
	return func() tea.Msg {
		return exportedMsg{path: path, err: export.WriteFile(path, report)}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  estimasi needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Info).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	type binding struct{ key, desc string }
	sections := []struct {
		title string
		binds []binding
	}{
		{"Navigation", []binding{
			{"p t o s x", "Jump to tab"},
			{"← → Tab", "Previous / Next tab"},
			{"j k", "Move cursor"},
		}},
		{"Editing", []binding{
			{"Enter", "Edit field / row"},
			{"+ -", "Step slider or number"},
			{"", "Slider values stay in range (testing 10–50%, risk 0–50%)"},
			{"n", "Add row"},
			{"d Del", "Remove row"},
			{"Esc", "Cancel edit"},
		}},
		{"Estimate", []binding{
			{"m", "Toggle manual / feature mode"},
			{"i", "Toggle PPN"},
			{"y", "Copy summary"},
			{"e", "Export xlsx"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.binds {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) statusHints() string {
	if a.form != nil {
		return "[Tab] next field  [Enter] confirm  [Esc] cancel"
	}
	if a.project.editing {
		if hint := projectFields(a.est)[a.project.cursor].rangeHint(); hint != "" {
			return "[Enter] apply, clamped to " + hint + "  [Esc] cancel"
		}
		return "[Enter] apply  [Esc] cancel"
	}
	switch a.activeTab {
	case components.TabProject:
		return "[j/k] move  [Enter] edit  [+/-] step  [m] mode  [?] help  [q] quit"
	case components.TabTeam, components.TabOperational:
		return "[j/k] move  [Enter] edit  [n] add  [d] remove  [?] help  [q] quit"
	case components.TabSummary:
		return "[i] PPN  [y] copy  [e] export  [?] help  [q] quit"
	}
	return "[Enter] next theme  [?] help  [q] quit"
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// Header: tab bar plus a grand-total pill
	p := a.est.Params()
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	pill := pillStyle.Render(" "+p.Mode.Label()+" │ ") +
		pillAccent.Render(cli.FormatMonths(p.DurationMonths)+" bulan") +
		pillStyle.Render(" │ Total ") +
		pillAccent.Render(cli.FormatRupiah(a.est.Totals().GrandTotal)) +
		pillStyle.Render(" ")
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(pill)

	statusBar := components.RenderStatusBar(w, a.statusHints(), a.flash)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.form != nil {
		content = a.renderForm(cw)
	} else {
		switch a.activeTab {
		case components.TabProject:
			content = a.renderProjectTab(cw)
		case components.TabTeam:
			content = a.renderTeamTab(cw)
		case components.TabOperational:
			content = a.renderOpsTab(cw)
		case components.TabSummary:
			content = a.renderSummaryTab(cw)
		case components.TabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// listCursor moves cursor within [0, n) for j/k style keys and reports
// whether key was a movement key.
func listCursor(cursor, n int, key string) (int, bool) {
	switch key {
	case "j", "down":
		if cursor < n-1 {
			cursor++
		}
		return cursor, true
	case "k", "up":
		if cursor > 0 {
			cursor--
		}
		return cursor, true
	case "g", "home":
		return 0, true
	case "G", "end":
		if n > 0 {
			return n - 1, true
		}
		return 0, true
	}
	return cursor, false
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

// formDone reports whether a huh form has finished either way.
func formDone(f *huh.Form) bool {
	return f.State == huh.StateCompleted || f.State == huh.StateAborted
}
