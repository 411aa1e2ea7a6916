package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/estimasi/internal/config"
	"github.com/theirongolddev/estimasi/internal/model"
	"github.com/theirongolddev/estimasi/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Start from the file alone so environment overrides are not persisted.
	fileCfg, _ := config.Load()

	p := fileCfg.Project
	themeName := fileCfg.Appearance.Theme
	mode := p.Mode
	duration := strconv.FormatFloat(p.DurationMonths, 'f', -1, 64)
	risk := strconv.FormatFloat(p.RiskBufferPercent, 'f', -1, 64)
	tax := strconv.FormatFloat(p.TaxPercent, 'f', -1, 64)
	includeTax := p.IncludeTax

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeName),
			huh.NewSelect[string]().
				Title("Duration mode").
				Options(
					huh.NewOption(model.ModeManual.Label(), string(model.ModeManual)),
					huh.NewOption(model.ModeFeatures.Label(), string(model.ModeFeatures)),
				).
				Value(&mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Default duration (months)").
				Value(&duration).
				Validate(nonNegativeNumber),
			huh.NewInput().
				Title("Risk buffer (%)").
				Value(&risk).
				Validate(nonNegativeNumber),
			huh.NewInput().
				Title("PPN (%)").
				Value(&tax).
				Validate(nonNegativeNumber),
			huh.NewConfirm().
				Title("Include PPN in the total?").
				Value(&includeTax),
		),
	)

	fmt.Println()
	fmt.Println("  Welcome to estimasi!")
	fmt.Println()

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}

	fileCfg.Appearance.Theme = themeName
	fileCfg.Project.Mode = mode
	fileCfg.Project.DurationMonths = mustFloat(duration)
	fileCfg.Project.RiskBufferPercent = mustFloat(risk)
	fileCfg.Project.TaxPercent = mustFloat(tax)
	fileCfg.Project.IncludeTax = includeTax

	if err := config.Save(fileCfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `estimasi setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func nonNegativeNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("enter a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// mustFloat parses a value already accepted by nonNegativeNumber.
func mustFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
