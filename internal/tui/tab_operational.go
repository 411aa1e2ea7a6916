package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/model"
	"github.com/theirongolddev/estimasi/internal/tui/components"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a App) updateOpsKeys(key string) (tea.Model, tea.Cmd, bool) {
	items := a.est.Operational()
	if cur, ok := listCursor(a.ops.cursor, len(items), key); ok {
		a.ops.cursor = cur
		return a, nil, true
	}

	switch key {
	case "n", "a":
		a.est.AddOperational(estimator.NewItemTemplate)
		a.ops.cursor = len(a.est.Operational()) - 1
		return a, nil, true
	case "enter":
		if len(items) == 0 {
			return a, nil, true
		}
		return a.openForm(newItemForm(items[a.ops.cursor], components.CardInnerWidth(a.contentWidth())))
	case "d", "delete", "backspace":
		if len(items) == 0 {
			return a, nil, true
		}
		a.est.RemoveOperational(items[a.ops.cursor].ID)
		a.ops.clamp(len(a.est.Operational()))
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderOpsTab(cw int) string {
	t := theme.Active
	items := a.est.Operational()
	d := a.est.Params().DurationMonths
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	costStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)
	monthlyStyle := lipgloss.NewStyle().Foreground(t.Info).Background(t.Surface)
	oneTimeStyle := lipgloss.NewStyle().Foreground(t.Warn).Background(t.Surface)
	selBg := t.SurfaceBright

	const (
		typeW = 13
		costW = 16
		totW  = 18
	)
	nameW := innerW - 2 - typeW - costW - totW - 3
	if nameW < 12 {
		nameW = 12
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %-*s %*s %*s",
		nameW, "Nama", typeW, "Tipe", costW, "Biaya", totW, "Total")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	if len(items) == 0 {
		body.WriteString(mutedStyle.Render("  Belum ada biaya operasional. Tekan [n] untuk menambah."))
		body.WriteString("\n")
	}

	for i, item := range items {
		selected := i == a.ops.cursor
		rs, cs, ms := rowStyle, costStyle, mutedStyle
		ts := oneTimeStyle
		if item.Type == model.CostMonthly {
			ts = monthlyStyle
		}
		marker := "  "
		if selected {
			rs, cs, ms, ts = rs.Background(selBg).Bold(true), cs.Background(selBg), ms.Background(selBg), ts.Background(selBg)
			marker = "▸ "
		}

		line := ms.Render(marker) +
			rs.Render(fmt.Sprintf("%-*s ", nameW, truncStr(item.Name, nameW))) +
			ts.Render(fmt.Sprintf("%-*s ", typeW, item.Type.Label())) +
			ms.Render(fmt.Sprintf("%*s ", costW, cli.FormatRupiah(item.Cost))) +
			cs.Render(fmt.Sprintf("%*s", totW, cli.FormatRupiah(estimator.ItemCost(item, d))))
		if selected {
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(selBg).Render(strings.Repeat(" ", pad))
			}
		}
		body.WriteString(line)
		body.WriteString("\n")
	}

	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	totalLabel := fmt.Sprintf("  Total operasional (bulanan × %s bulan)", cli.FormatMonths(d))
	total := cli.FormatRupiah(a.est.Totals().Operational)
	gap := innerW - lipgloss.Width(totalLabel) - lipgloss.Width(total)
	if gap < 1 {
		gap = 1
	}
	body.WriteString(mutedStyle.Render(totalLabel + strings.Repeat(" ", gap)))
	body.WriteString(costStyle.Bold(true).Render(total))

	return components.ContentCard("Biaya Operasional & Infrastruktur", body.String(), cw)
}
