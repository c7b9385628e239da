package chart

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/shaper"
)

func plantView(format string) *models.View {
	table := models.Table{
		{"Name", "Type", "Score"},
		{"A", "Flowering", "10"},
		{"B", "Tree", "x"},
	}
	v := &models.View{Dataset: "plants", Format: format, Table: table}
	if format != "table" {
		c := shaper.Shape(table)
		v.Chart = &c
	}
	return v
}

// readChartXML returns the first chart part of an xlsx file, or nil.
func readChartXML(t *testing.T, path string) []byte {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "xl/charts/chart1.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return data
	}
	return nil
}

func TestSaveWorkbookTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	require.NoError(t, SaveWorkbook(path, plantView("table")))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DataSheet}, f.GetSheetList())
	rows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Name", "Type", "Score"},
		{"A", "Flowering", "10"},
		{"B", "Tree", "x"},
	}, rows)

	assert.Nil(t, readChartXML(t, path), "table format has no chart")
}

func TestSaveWorkbookCharts(t *testing.T) {
	tests := []struct {
		format   string
		grouping string
	}{
		{"bar", `c:grouping val="clustered"`},
		{"stacked-bar", `c:grouping val="stacked"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "plants.xlsx")
			require.NoError(t, SaveWorkbook(path, plantView(tt.format)))

			f, err := excelize.OpenFile(path)
			require.NoError(t, err)
			defer f.Close()

			assert.Equal(t, []string{DataSheet, SkippedSheet}, f.GetSheetList())

			typ, err := f.GetCellType(DataSheet, "C2")
			require.NoError(t, err)
			assert.NotEqual(t, excelize.CellTypeSharedString, typ, "numeric cells are stored as numbers")

			skipped, err := f.GetRows(SkippedSheet)
			require.NoError(t, err)
			assert.Equal(t, [][]string{{"Skipped Columns"}, {"Type"}, {"Score"}}, skipped)

			chartXML := readChartXML(t, path)
			require.NotNil(t, chartXML)
			assert.Contains(t, string(chartXML), tt.grouping)
			assert.Contains(t, string(chartXML), "Data!$A$2:$A$3")
			assert.Contains(t, string(chartXML), "Data!$C$2:$C$3")
		})
	}
}

func TestWriteWorkbookWithoutRows(t *testing.T) {
	table := models.Table{{"Name", "GPA"}}
	c := shaper.Shape(table)
	v := &models.View{Dataset: "empty", Format: "bar", Table: table, Chart: &c}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, v))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(DataSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Name", "GPA"}}, rows)
}

func TestSaveWorkbookOverflowingNumber(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	table := models.Table{{"Name", "N"}, {"a", huge}, {"b", "2"}}
	c := shaper.Shape(table)
	v := &models.View{Dataset: "big", Format: "bar", Table: table, Chart: &c}

	path := filepath.Join(t.TempDir(), "big.xlsx")
	require.NoError(t, SaveWorkbook(path, v))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(DataSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, huge, value, "overflowing cell is kept as text")
	value, err = f.GetCellValue(DataSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}
