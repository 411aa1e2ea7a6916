package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report colors (Flexoki Dark)
var (
	colorBorder = lipgloss.Color("#403E3C")
	colorDim    = lipgloss.Color("#575653")
	colorMuted  = lipgloss.Color("#878580")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorMoney  = lipgloss.Color("#A3B859")
	colorWarn   = lipgloss.Color("#DA702C")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	textStyle   = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	moneyStyle  = lipgloss.NewStyle().Foreground(colorMoney)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	ruleStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// SeparatorRow in Table.Rows draws a horizontal rule.
const SeparatorRow = "---"

// Table is a bordered text table for CLI output. Columns whose cells are
// all amounts (Rupiah, plain numbers, percentages) are right-aligned, and
// Rupiah cells are coloured. A row whose first cell starts with "Total"
// is rendered bold.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(60).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(colorText).
		Render(title)
}

// RenderTable renders t, or "" when it has neither headers nor rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	cols := len(t.Headers)
	for _, row := range t.Rows {
		if !isSeparator(row) {
			cols = max(cols, len(row))
		}
	}
	widths := make([]int, cols)
	numeric := make([]bool, cols)
	for i := range numeric {
		numeric[i] = i > 0
	}
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
			if cell != "" && !IsAmount(cell) {
				numeric[i] = false
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, widths, numeric, func(string) lipgloss.Style { return headerStyle }))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		total := len(row) > 0 && strings.HasPrefix(strings.ToLower(row[0]), "total")
		b.WriteString(line(row, widths, numeric, func(cell string) lipgloss.Style {
			s := textStyle
			if isRupiah(cell) {
				s = moneyStyle
			}
			return s.Bold(total)
		}))
	}
	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == SeparatorRow
}

func rule(widths []int, left, mid, right string) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w+2)
	}
	return ruleStyle.Render(left+strings.Join(segs, mid)+right) + "\n"
}

func line(cells []string, widths []int, numeric []bool, style func(string) lipgloss.Style) string {
	bar := ruleStyle.Render("│")
	var b strings.Builder
	b.WriteString(bar)
	for i, w := range widths {
		raw := ""
		if i < len(cells) {
			raw = cells[i]
		}
		pad := strings.Repeat(" ", w-lipgloss.Width(raw))
		cell := raw + pad
		if numeric[i] {
			cell = pad + raw
		}
		b.WriteString(style(raw).Render(" " + cell + " "))
		b.WriteString(bar)
	}
	b.WriteString("\n")
	return b.String()
}

func isRupiah(s string) bool {
	return strings.HasPrefix(strings.TrimPrefix(s, "-"), "Rp")
}

// IsAmount reports whether s is a formatted Rupiah amount, a grouped
// number or a percentage.
func IsAmount(s string) bool {
	if isRupiah(s) {
		return true
	}
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// RenderShareBar renders a labelled horizontal bar for value's share of
// maxValue, padded to maxWidth so consecutive bars line up.
func RenderShareBar(label string, labelWidth int, value, maxValue float64, maxWidth int) string {
	barLen := 0
	if maxValue > 0 {
		barLen = int(value / maxValue * float64(maxWidth))
	}
	barLen = min(max(barLen, 0), maxWidth)
	bar := moneyStyle.Render(strings.Repeat("█", barLen)) +
		ruleStyle.Render(strings.Repeat("░", maxWidth-barLen))
	label += strings.Repeat(" ", max(labelWidth-lipgloss.Width(label), 0))
	return "  " + mutedStyle.Render(label) + " " + bar
}

// RenderNote renders an indented warning line.
func RenderNote(msg string) string {
	return "  " + warnStyle.Render(msg)
}
