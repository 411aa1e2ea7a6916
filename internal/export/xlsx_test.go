package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/estimasi/internal/config"
)

func defaultReport() Report {
	est := config.DefaultConfig().NewEstimator()
	return Report{Input: est.Input(), Totals: est.Totals()}
}

func TestWriteFile_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimasi.xlsx")
	require.NoError(t, WriteFile(path, defaultReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetTeam, SheetOperational}, f.GetSheetList())
}

func TestWrite_SummaryTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, defaultReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	last := rows[len(rows)-1]
	require.Len(t, last, 2)
	assert.Equal(t, "Total Estimasi", last[0])

	raw, err := f.GetCellValue(SheetSummary, fmt.Sprintf("B%d", len(rows)), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	total, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.InDelta(t, 297_702_000, total, 1e-3)
}

func TestWrite_TeamAndOperationalRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, defaultReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	team, err := f.GetRows(SheetTeam)
	require.NoError(t, err)
	assert.Len(t, team, 6) // header + 5 members
	assert.Equal(t, "Project Manager", team[1][1])

	ops, err := f.GetRows(SheetOperational)
	require.NoError(t, err)
	assert.Len(t, ops, 3)
	assert.Equal(t, "Bulanan", ops[1][2])
	assert.Equal(t, "Sekali Bayar", ops[2][2])
}

func TestWrite_EmptyLists(t *testing.T) {
	r := defaultReport()
	r.Input.Team = nil
	r.Input.Operational = nil

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
}
