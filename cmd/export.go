package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/export"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the budget breakdown to an xlsx spreadsheet",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "estimasi.xlsx", `Output file ("-" for stdout)`)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	est, err := loadEstimator(cmd)
	if err != nil {
		return err
	}

	report := export.Report{Input: est.Input(), Totals: est.Totals()}
	if flagOutput == "-" {
		return export.Write(os.Stdout, report)
	}

	if err := export.WriteFile(flagOutput, report); err != nil {
		return err
	}
	fmt.Printf("  Exported %s to %s\n", cli.FormatRupiah(est.Totals().GrandTotal), flagOutput)
	return nil
}
