package cmd

import (
	"fmt"

	"github.com/theirongolddev/estimasi/internal/model"
	"github.com/theirongolddev/estimasi/internal/tui"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagExportPath string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive estimation form",
	RunE:  runTUI,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().StringVar(&flagExportPath, "export-path", tui.DefaultExportPath, "File written by [e] export")
	}
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	est, err := loadEstimator(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(cfg.Appearance.Theme)

	log := zap.S().Named("tui")
	last := est.Totals().GrandTotal
	est.OnChange(func(t model.Totals) {
		if t.GrandTotal != last {
			log.Infow("total changed", "from", last, "to", t.GrandTotal)
			last = t.GrandTotal
		}
	})

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(est, tui.Options{ExportPath: flagExportPath})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
