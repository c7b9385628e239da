// Package chart writes views as xlsx workbooks, with a native column chart
// for chart formats.
package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/shaper"
)

// Sheet names used in exported workbooks.
const (
	DataSheet    = "Data"
	SkippedSheet = "Skipped"
)

// chartTypes maps view formats to excelize chart types.
var chartTypes = map[string]excelize.ChartType{
	"bar":         excelize.Col,
	"stacked-bar": excelize.ColStacked,
}

// WriteWorkbook writes v as an xlsx workbook to w.
func WriteWorkbook(w io.Writer, v *models.View) error {
	f, err := build(v)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// SaveWorkbook writes v as an xlsx workbook to path.
func SaveWorkbook(path string, v *models.View) error {
	f, err := build(v)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func build(v *models.View) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTable(f, v.Table); err != nil {
		f.Close()
		return nil, fmt.Errorf("write table: %w", err)
	}

	chartType, ok := chartTypes[v.Format]
	if !ok || v.Chart == nil {
		return f, nil
	}
	if err := addChart(f, v, chartType); err != nil {
		f.Close()
		return nil, fmt.Errorf("add chart: %w", err)
	}
	if err := writeSkipped(f, v.Chart.SkippedColumns); err != nil {
		f.Close()
		return nil, fmt.Errorf("write skipped columns: %w", err)
	}
	return f, nil
}

// writeTable writes the header as text and numeric data cells as numbers.
// The label column always stays text.
func writeTable(f *excelize.File, t models.Table) error {
	for r, row := range t {
		values := make([]interface{}, len(row))
		for c, cell := range row {
			values[c] = cell
			if r == 0 || c == 0 {
				continue
			}
			// Overflowing cells stay text; a spreadsheet cannot hold ±Inf.
			if n, ok := shaper.ParseNumber(cell); ok && !math.IsInf(n, 0) {
				values[c] = n
			}
		}
		start, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(DataSheet, start, &values); err != nil {
			return err
		}
	}
	return nil
}

func addChart(f *excelize.File, v *models.View, chartType excelize.ChartType) error {
	rows := len(v.Chart.Labels)
	if rows == 0 || len(v.Chart.Series) == 0 {
		return nil
	}

	categories, err := columnRange(1, rows)
	if err != nil {
		return err
	}

	series := make([]excelize.ChartSeries, 0, len(v.Chart.Series))
	for i := range v.Chart.Series {
		col := i + 2
		name, err := excelize.CoordinatesToCellName(col, 1, true)
		if err != nil {
			return err
		}
		values, err := columnRange(col, rows)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       DataSheet + "!" + name,
			Categories: categories,
			Values:     values,
		})
	}

	anchor, err := excelize.CoordinatesToCellName(v.Table.Width()+2, 1)
	if err != nil {
		return err
	}
	return f.AddChart(DataSheet, anchor, &excelize.Chart{
		Type:         chartType,
		Series:       series,
		Title:        []excelize.RichTextRun{{Text: v.Dataset}},
		Legend:       excelize.ChartLegend{Position: "top"},
		ShowBlanksAs: "gap",
	})
}

// columnRange returns the absolute data range of a column, e.g. Data!$B$2:$B$5.
func columnRange(col, rows int) (string, error) {
	first, err := excelize.CoordinatesToCellName(col, 2, true)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(col, rows+1, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", DataSheet, first, last), nil
}

func writeSkipped(f *excelize.File, skipped []string) error {
	if _, err := f.NewSheet(SkippedSheet); err != nil {
		return err
	}
	if err := f.SetCellValue(SkippedSheet, "A1", "Skipped Columns"); err != nil {
		return err
	}
	for i, name := range skipped {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SkippedSheet, cell, name); err != nil {
			return err
		}
	}
	return nil
}
