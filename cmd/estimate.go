package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/estimasi/internal/cli"
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/model"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:     "estimate",
	Aliases: []string{"est"},
	Short:   "Print the full budget breakdown",
	RunE:    runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	est, err := loadEstimator(cmd)
	if err != nil {
		return err
	}
	p := est.Params()
	tot := est.Totals()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ESTIMASI BUDGET  %s bulan", cli.FormatMonths(p.DurationMonths))))
	fmt.Println()

	fmt.Print(cli.RenderTable(parameterTable(est)))
	fmt.Println()
	fmt.Print(cli.RenderTable(teamTable(est)))
	fmt.Println()
	fmt.Print(cli.RenderTable(operationalTable(est)))
	fmt.Println()

	taxLabel := fmt.Sprintf("PPN (%s)", cli.FormatPercent(p.TaxPercent))
	if !p.IncludeTax {
		taxLabel += " tidak termasuk"
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Rincian",
		Headers: []string{"Komponen", "Jumlah", "Porsi"},
		Rows: [][]string{
			{"Biaya Tenaga Kerja", cli.FormatRupiah(tot.Manpower), cli.FormatShare(tot.Manpower, tot.GrandTotal)},
			{"Biaya Operasional", cli.FormatRupiah(tot.Operational), cli.FormatShare(tot.Operational, tot.GrandTotal)},
			{cli.SeparatorRow},
			{"Subtotal", cli.FormatRupiah(tot.Subtotal), ""},
			{fmt.Sprintf("Risk Buffer (%s)", cli.FormatPercent(p.RiskBufferPercent)), cli.FormatRupiah(tot.BufferAmount), cli.FormatShare(tot.BufferAmount, tot.GrandTotal)},
			{taxLabel, cli.FormatRupiah(tot.TaxAmount), cli.FormatShare(tot.TaxAmount, tot.GrandTotal)},
			{cli.SeparatorRow},
			{"TOTAL ESTIMASI", cli.FormatRupiah(tot.GrandTotal), ""},
		},
	}))

	if tot.GrandTotal > 0 {
		fmt.Println()
		for _, cc := range estimator.ManpowerByCategory(est.Team(), p.DurationMonths) {
			fmt.Println(cli.RenderShareBar(string(cc.Category), 12, cc.Amount, tot.GrandTotal, 40))
		}
		fmt.Println(cli.RenderShareBar("Operasional", 12, tot.Operational, tot.GrandTotal, 40))
		fmt.Println(cli.RenderShareBar("Buffer", 12, tot.BufferAmount, tot.GrandTotal, 40))
		fmt.Println(cli.RenderShareBar("PPN", 12, tot.TaxAmount, tot.GrandTotal, 40))
	}

	if p.Mode == model.ModeFeatures && estimator.DeveloperCount(est.Team()) == 0 {
		fmt.Println()
		fmt.Println(cli.RenderNote("No Development members: duration assumes one developer."))
	}
	return nil
}

func parameterTable(est *estimator.Estimator) cli.Table {
	p := est.Params()
	rows := [][]string{
		{"Mode", p.Mode.Label()},
	}

	if p.Mode == model.ModeFeatures {
		f := est.Features()
		for _, tier := range model.Tiers {
			rows = append(rows, []string{
				fmt.Sprintf("Fitur %s", tier.Label()),
				fmt.Sprintf("%d × %s hari", f.Count(tier), cli.FormatMonths(f.Effort(tier))),
			})
		}
		steps := estimator.ExplainDuration(f, est.Team(), p.TestingRatioPercent, p.StagingWeeks)
		rows = append(rows,
			[]string{cli.SeparatorRow},
			[]string{"Total effort", cli.FormatMonths(steps.EffortDays) + " hari"},
			[]string{"Developer", strconv.Itoa(steps.Developers)},
			[]string{"Rasio testing", cli.FormatPercent(p.TestingRatioPercent)},
			[]string{"Staging", cli.FormatMonths(p.StagingWeeks) + " minggu"},
		)
	}

	rows = append(rows,
		[]string{"Durasi", cli.FormatMonths(p.DurationMonths) + " bulan"},
		[]string{"Risk buffer", cli.FormatPercent(p.RiskBufferPercent)},
		[]string{"PPN", cli.FormatPercent(p.TaxPercent)},
		[]string{"Termasuk PPN", yesNo(p.IncludeTax)},
	)

	return cli.Table{
		Title:   "Parameter Proyek",
		Headers: []string{"Parameter", "Nilai"},
		Rows:    rows,
	}
}

func teamTable(est *estimator.Estimator) cli.Table {
	d := est.Params().DurationMonths
	rows := make([][]string, 0, len(est.Team())+2)
	for _, m := range est.Team() {
		rows = append(rows, []string{
			m.Role,
			string(m.Category),
			strconv.Itoa(m.Count),
			cli.FormatRupiah(m.MonthlyRate),
			cli.FormatRupiah(estimator.MemberSubtotal(m, d)),
		})
	}
	rows = append(rows,
		[]string{cli.SeparatorRow},
		[]string{"Total", "", "", "", cli.FormatRupiah(est.Totals().Manpower)},
	)

	return cli.Table{
		Title:   "Tim Proyek",
		Headers: []string{"Role", "Kategori", "Orang", "Gaji/Bulan", "Subtotal"},
		Rows:    rows,
	}
}

func operationalTable(est *estimator.Estimator) cli.Table {
	d := est.Params().DurationMonths
	rows := make([][]string, 0, len(est.Operational())+2)
	for _, item := range est.Operational() {
		rows = append(rows, []string{
			item.Name,
			item.Type.Label(),
			cli.FormatRupiah(item.Cost),
			cli.FormatRupiah(estimator.ItemCost(item, d)),
		})
	}
	rows = append(rows,
		[]string{cli.SeparatorRow},
		[]string{"Total", "", "", cli.FormatRupiah(est.Totals().Operational)},
	)

	return cli.Table{
		Title:   "Biaya Operasional",
		Headers: []string{"Nama", "Tipe", "Biaya", "Total"},
		Rows:    rows,
	}
}

func yesNo(b bool) string {
	if b {
		return "Ya"
	}
	return "Tidak"
}
