package cmd

import (
	"fmt"

	"github.com/theirongolddev/estimasi/internal/clipboard"

	"github.com/spf13/cobra"
)

var flagPrintOnly bool

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the duration and total summary to the clipboard",
	RunE:  runCopy,
}

func init() {
	copyCmd.Flags().BoolVarP(&flagPrintOnly, "print", "p", false, "Print the summary instead of copying it")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, _ []string) error {
	est, err := loadEstimator(cmd)
	if err != nil {
		return err
	}

	text := clipboard.Summary(est.Params().DurationMonths, est.Totals().GrandTotal)
	if flagPrintOnly {
		fmt.Println(text)
		return nil
	}

	method, err := clipboard.NewCopier().Copy(text)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(text)
	fmt.Println()
	fmt.Printf("  %s (%s)\n", clipboard.SuccessMessage, method)
	return nil
}
