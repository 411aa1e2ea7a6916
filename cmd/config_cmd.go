// Package cmd implements the estimasi CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	if env := setEnvOverrides(); len(env) > 0 {
		fmt.Printf("  Environment: %s\n", strings.Join(env, ", "))
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Log level: %s\n", cfg.General.LogLevel)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	p := cfg.Project
	fmt.Println("  [Project]")
	fmt.Printf("    Mode:          %s\n", p.Mode)
	fmt.Printf("    Duration:      %s months\n", cli.FormatMonths(p.DurationMonths))
	fmt.Printf("    Risk buffer:   %s\n", cli.FormatPercent(p.RiskBufferPercent))
	fmt.Printf("    PPN:           %s (included: %v)\n", cli.FormatPercent(p.TaxPercent), p.IncludeTax)
	fmt.Printf("    Testing ratio: %s\n", cli.FormatPercent(p.TestingRatioPercent))
	fmt.Printf("    Staging:       %s weeks\n", cli.FormatMonths(p.StagingWeeks))
	fmt.Println()

	f := cfg.Features
	fmt.Println("  [Features]")
	fmt.Printf("    Simple:  %d × %s days\n", f.SimpleCount, cli.FormatMonths(f.SimpleEffort))
	fmt.Printf("    Medium:  %d × %s days\n", f.MediumCount, cli.FormatMonths(f.MediumEffort))
	fmt.Printf("    Complex: %d × %s days\n", f.ComplexCount, cli.FormatMonths(f.ComplexEffort))
	fmt.Println()

	fmt.Printf("  [[team]] %d rows\n", len(cfg.Team))
	for _, m := range cfg.Team {
		fmt.Printf("    %-24s %-12s %2d × %s\n", m.Role, m.Category, m.Count, cli.FormatRupiah(m.MonthlyRate))
	}
	fmt.Println()

	fmt.Printf("  [[operational]] %d rows\n", len(cfg.Operational))
	for _, item := range cfg.Operational {
		fmt.Printf("    %-28s %-9s %s\n", item.Name, item.Type, cli.FormatRupiah(item.Cost))
	}
	fmt.Println()

	fmt.Println("  Run `estimasi setup` to reconfigure.")
	return nil
}

// setEnvOverrides lists the ESTIMASI_* variables present in the environment.
func setEnvOverrides() []string {
	prefix := strings.ToUpper(config.EnvPrefix) + "_"
	var names []string
	for _, kv := range os.Environ() {
		if name, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}
