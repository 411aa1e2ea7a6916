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

// listState tracks the cursor of a row list tab.
type listState struct {
	cursor int
}

func (s *listState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (a App) updateTeamKeys(key string) (tea.Model, tea.Cmd, bool) {
	team := a.est.Team()
	if cur, ok := listCursor(a.team.cursor, len(team), key); ok {
		a.team.cursor = cur
		return a, nil, true
	}

	switch key {
	case "n", "a":
		a.est.AddMember(estimator.NewMemberTemplate)
		a.team.cursor = len(a.est.Team()) - 1
		return a, nil, true
	case "enter":
		if len(team) == 0 {
			return a, nil, true
		}
		return a.openForm(newMemberForm(team[a.team.cursor], components.CardInnerWidth(a.contentWidth())))
	case "d", "delete", "backspace":
		if len(team) == 0 {
			return a, nil, true
		}
		a.est.RemoveMember(team[a.team.cursor].ID)
		a.team.clamp(len(a.est.Team()))
		return a, nil, true
	}
	return a, nil, false
}

func (a App) renderTeamTab(cw int) string {
	t := theme.Active
	team := a.est.Team()
	p := a.est.Params()
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	costStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)
	selBg := t.SurfaceBright

	const (
		catW   = 12
		countW = 6
		rateW  = 16
		subW   = 18
	)
	compact := a.isCompactLayout()
	fixed := catW + countW + subW + 3
	if !compact {
		fixed += rateW + 1
	}
	roleW := innerW - 2 - fixed
	if roleW < 12 {
		roleW = 12
	}

	var body strings.Builder
	hdr := fmt.Sprintf("  %-*s %-*s %*s", roleW, "Role", catW, "Kategori", countW, "Orang")
	if !compact {
		hdr += fmt.Sprintf(" %*s", rateW, "Gaji/Bulan")
	}
	hdr += fmt.Sprintf(" %*s", subW, "Subtotal")
	body.WriteString(headerStyle.Render(hdr))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	if len(team) == 0 {
		body.WriteString(mutedStyle.Render("  Belum ada anggota tim. Tekan [n] untuk menambah."))
		body.WriteString("\n")
	}

	for i, m := range team {
		selected := i == a.team.cursor
		rs, cs, ms := rowStyle, costStyle, mutedStyle
		catStyle := lipgloss.NewStyle().Foreground(t.Category(m.Category)).Background(t.Surface)
		marker := "  "
		if selected {
			rs, cs, ms = rs.Background(selBg).Bold(true), cs.Background(selBg), ms.Background(selBg)
			catStyle = catStyle.Background(selBg)
			marker = "▸ "
		}

		line := ms.Render(marker) +
			rs.Render(fmt.Sprintf("%-*s ", roleW, truncStr(m.Role, roleW))) +
			catStyle.Render(fmt.Sprintf("%-*s ", catW, string(m.Category))) +
			rs.Render(fmt.Sprintf("%*d", countW, m.Count))
		if !compact {
			line += ms.Render(fmt.Sprintf(" %*s", rateW, cli.FormatRupiah(m.MonthlyRate)))
		}
		line += cs.Render(fmt.Sprintf(" %*s", subW, cli.FormatRupiah(estimator.MemberSubtotal(m, p.DurationMonths))))
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
	totalLabel := fmt.Sprintf("  Total tenaga kerja × %s bulan", cli.FormatMonths(p.DurationMonths))
	total := cli.FormatRupiah(a.est.Totals().Manpower)
	gap := innerW - lipgloss.Width(totalLabel) - lipgloss.Width(total)
	if gap < 1 {
		gap = 1
	}
	body.WriteString(mutedStyle.Render(totalLabel + strings.Repeat(" ", gap)))
	body.WriteString(costStyle.Bold(true).Render(total))

	title := fmt.Sprintf("Tim Proyek (%d orang, %d developer)", headcount(team), estimator.DeveloperCount(team))
	return components.ContentCard(title, body.String(), cw)
}

func headcount(team []model.TeamMember) int {
	n := 0
	for _, m := range team {
		n += m.Count
	}
	return n
}
