package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/clipboard"
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/tui/components"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	tot := a.est.Totals()
	p := a.est.Params()
	var b strings.Builder

	// Row 1: metric cards
	taxNote := "tidak termasuk"
	if p.IncludeTax {
		taxNote = cli.FormatPercent(p.TaxPercent) + " dari DPP"
	}
	metrics := []components.Metric{
		{Label: "Tenaga Kerja", Value: cli.FormatRupiahShort(tot.Manpower), Note: cli.FormatMonths(p.DurationMonths) + " bulan"},
		{Label: "Operasional", Value: cli.FormatRupiahShort(tot.Operational), Note: fmt.Sprintf("%d item", len(a.est.Operational()))},
		{Label: "Risk Buffer", Value: cli.FormatRupiahShort(tot.BufferAmount), Note: cli.FormatPercent(p.RiskBufferPercent)},
		{Label: "PPN", Value: cli.FormatRupiahShort(tot.TaxAmount), Note: taxNote},
		{Label: "Total Estimasi", Value: cli.FormatRupiahShort(tot.GrandTotal), Note: "[y] salin  [e] ekspor"},
	}
	if a.isCompactLayout() {
		metrics = []components.Metric{metrics[0], metrics[1], metrics[4]}
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: itemised breakdown | cost share
	leftW, rightW := cw, cw
	if !a.isCompactLayout() {
		halves := components.LayoutRow(cw, 2)
		leftW, rightW = halves[0], halves[1]
	}

	breakdown := a.renderBreakdownCard(leftW)
	share := a.renderShareCard(rightW)
	if a.isCompactLayout() {
		b.WriteString(breakdown)
		b.WriteString("\n")
		b.WriteString(share)
	} else {
		b.WriteString(components.CardRow([]string{breakdown, share}))
	}
	b.WriteString("\n")

	// Row 3: clipboard preview
	preview := clipboard.Summary(p.DurationMonths, tot.GrandTotal)
	previewStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	b.WriteString(components.ContentCard("Teks Ringkasan", previewStyle.Render(preview), cw))

	return b.String()
}

func (a App) renderBreakdownCard(w int) string {
	t := theme.Active
	tot := a.est.Totals()
	p := a.est.Params()
	innerW := components.CardInnerWidth(w)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Strikethrough(true)

	line := func(label, value string, vs lipgloss.Style) string {
		gap := innerW - lipgloss.Width(label) - lipgloss.Width(value)
		if gap < 1 {
			gap = 1
		}
		return labelStyle.Render(label+strings.Repeat(" ", gap)) + vs.Render(value) + "\n"
	}

	var body strings.Builder
	body.WriteString(line("Biaya Tenaga Kerja", cli.FormatRupiah(tot.Manpower), valueStyle))
	body.WriteString(line("Biaya Operasional", cli.FormatRupiah(tot.Operational), valueStyle))
	body.WriteString(ruleStyle.Render(strings.Repeat("─", innerW)) + "\n")
	body.WriteString(line("Subtotal", cli.FormatRupiah(tot.Subtotal), valueStyle))
	body.WriteString(line(fmt.Sprintf("Risk Buffer (%s)", cli.FormatPercent(p.RiskBufferPercent)), cli.FormatRupiah(tot.BufferAmount), valueStyle))
	body.WriteString(line("DPP (subtotal + buffer)", cli.FormatRupiah(tot.Taxable()), valueStyle))
	taxLabel := fmt.Sprintf("PPN (%s)", cli.FormatPercent(p.TaxPercent))
	if p.IncludeTax {
		body.WriteString(line(taxLabel, cli.FormatRupiah(tot.TaxAmount), valueStyle))
	} else {
		body.WriteString(line(taxLabel+" [i]", cli.FormatRupiah(0), offStyle))
	}
	body.WriteString(ruleStyle.Render(strings.Repeat("═", innerW)) + "\n")
	body.WriteString(line("TOTAL ESTIMASI", cli.FormatRupiah(tot.GrandTotal), totalStyle))

	return components.ContentCard("Rincian Biaya", strings.TrimRight(body.String(), "\n"), w)
}

// renderShareCard shows each cost component's share of the grand total.
func (a App) renderShareCard(w int) string {
	t := theme.Active
	tot := a.est.Totals()
	p := a.est.Params()
	innerW := components.CardInnerWidth(w)

	const labelW = 12
	barW := innerW - labelW - 1 - 5 - 2 - 12
	if barW < 6 {
		barW = 6
	}

	share := func(v float64) float64 {
		if tot.GrandTotal <= 0 {
			return 0
		}
		return v / tot.GrandTotal
	}

	var body strings.Builder
	for _, cc := range estimator.ManpowerByCategory(a.est.Team(), p.DurationMonths) {
		body.WriteString(components.ShareBar(string(cc.Category), share(cc.Amount),
			cli.FormatRupiahShort(cc.Amount), t.Category(cc.Category), labelW, barW))
		body.WriteString("\n")
	}
	body.WriteString(components.ShareBar("Operasional", share(tot.Operational),
		cli.FormatRupiahShort(tot.Operational), t.Warn, labelW, barW))
	body.WriteString("\n")
	body.WriteString(components.ShareBar("Buffer", share(tot.BufferAmount),
		cli.FormatRupiahShort(tot.BufferAmount), t.Danger, labelW, barW))
	body.WriteString("\n")
	body.WriteString(components.ShareBar("PPN", share(tot.TaxAmount),
		cli.FormatRupiahShort(tot.TaxAmount), t.TextMuted, labelW, barW))

	return components.ContentCard("Komposisi Biaya", body.String(), w)
}
