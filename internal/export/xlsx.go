// Package export writes a one-way spreadsheet report of an estimate.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/model"
)

// Sheet names, in workbook order.
const (
	SheetSummary     = "Ringkasan"
	SheetTeam        = "Tim"
	SheetOperational = "Operasional"
)

// Built-in excelize number format 3 is "#,##0".
const numFmtThousands = 3

// Report is the data behind one workbook.
type Report struct {
	Input  model.Input
	Totals model.Totals
}

// WriteFile saves the report as an xlsx workbook at path.
func WriteFile(path string, r Report) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	zap.S().Named("export").Infow("workbook written", "path", path)
	return nil
}

// Write streams the report as an xlsx workbook to w.
func Write(w io.Writer, r Report) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

type sheetWriter struct {
	f      *excelize.File
	header int
	money  int
}

func build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("creating number style: %w", err)
	}
	sw := &sheetWriter{f: f, header: header, money: money}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetTeam, SheetOperational} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	steps := []func(Report) error{sw.summary, sw.team, sw.operational}
	for _, step := range steps {
		if err := step(r); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func (sw *sheetWriter) row(sheet string, n int, values ...any) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := sw.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, n, err)
	}
	return nil
}

func (sw *sheetWriter) style(sheet, from, to string, style int) error {
	if err := sw.f.SetCellStyle(sheet, from, to, style); err != nil {
		return fmt.Errorf("styling %s!%s:%s: %w", sheet, from, to, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Ya"
	}
	return "Tidak"
}

func (sw *sheetWriter) summary(r Report) error {
	p := r.Input.Params
	t := r.Totals
	rows := [][]any{
		{"Parameter", "Nilai"},
		{"Mode", p.Mode.Label()},
		{"Durasi (bulan)", p.DurationMonths},
		{"Risk Buffer (%)", p.RiskBufferPercent},
		{"PPN (%)", p.TaxPercent},
		{"Termasuk PPN", yesNo(p.IncludeTax)},
	}
	if p.Mode == model.ModeFeatures {
		for _, tier := range model.Tiers {
			rows = append(rows, []any{
				fmt.Sprintf("Fitur %s (jumlah × hari)", tier.Label()),
				fmt.Sprintf("%d × %g", r.Input.Features.Count(tier), r.Input.Features.Effort(tier)),
			})
		}
		rows = append(rows,
			[]any{"Rasio Testing (%)", p.TestingRatioPercent},
			[]any{"Staging (minggu)", p.StagingWeeks},
		)
	}
	rows = append(rows, []any{})
	moneyStart := len(rows) + 1
	rows = append(rows,
		[]any{"Biaya Tenaga Kerja", t.Manpower},
		[]any{"Biaya Operasional", t.Operational},
		[]any{"Subtotal", t.Subtotal},
		[]any{"Risk Buffer", t.BufferAmount},
		[]any{"PPN", t.TaxAmount},
		[]any{"Total Estimasi", t.GrandTotal},
	)

	for i, values := range rows {
		if err := sw.row(SheetSummary, i+1, values...); err != nil {
			return err
		}
	}
	last := len(rows)
	if err := sw.style(SheetSummary, "A1", "B1", sw.header); err != nil {
		return err
	}
	if err := sw.style(SheetSummary, fmt.Sprintf("B%d", moneyStart), fmt.Sprintf("B%d", last), sw.money); err != nil {
		return err
	}
	if err := sw.style(SheetSummary, fmt.Sprintf("A%d", last), fmt.Sprintf("A%d", last), sw.header); err != nil {
		return err
	}
	return sw.f.SetColWidth(SheetSummary, "A", "A", 32)
}

func (sw *sheetWriter) team(r Report) error {
	d := r.Input.Params.DurationMonths
	if err := sw.row(SheetTeam, 1, "ID", "Role", "Kategori", "Jumlah", "Gaji/Bulan", "Subtotal"); err != nil {
		return err
	}
	for i, m := range r.Input.Team {
		if err := sw.row(SheetTeam, i+2,
			m.ID, m.Role, string(m.Category), m.Count, m.MonthlyRate,
			estimator.MemberSubtotal(m, d),
		); err != nil {
			return err
		}
	}
	if err := sw.style(SheetTeam, "A1", "F1", sw.header); err != nil {
		return err
	}
	if n := len(r.Input.Team); n > 0 {
		if err := sw.style(SheetTeam, "E2", fmt.Sprintf("F%d", n+1), sw.money); err != nil {
			return err
		}
	}
	return sw.f.SetColWidth(SheetTeam, "B", "B", 28)
}

func (sw *sheetWriter) operational(r Report) error {
	d := r.Input.Params.DurationMonths
	if err := sw.row(SheetOperational, 1, "ID", "Nama", "Tipe", "Biaya", "Total"); err != nil {
		return err
	}
	for i, item := range r.Input.Operational {
		if err := sw.row(SheetOperational, i+2,
			item.ID, item.Name, item.Type.Label(), item.Cost,
			estimator.ItemCost(item, d),
		); err != nil {
			return err
		}
	}
	if err := sw.style(SheetOperational, "A1", "E1", sw.header); err != nil {
		return err
	}
	if n := len(r.Input.Operational); n > 0 {
		if err := sw.style(SheetOperational, "D2", fmt.Sprintf("E%d", n+1), sw.money); err != nil {
			return err
		}
	}
	return sw.f.SetColWidth(SheetOperational, "B", "B", 30)
}
