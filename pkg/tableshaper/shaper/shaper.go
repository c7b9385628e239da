package shaper

import (
	"math"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// Shape converts a table into chart data.
//
// Labels are taken from column 0 of each data row. Every other header
// column becomes a series with one value per data row; cells that are
// absent or not numeric are stored as NaN and the column name is added to
// SkippedColumns. Shape never fails and keeps no state between calls.
func Shape(t models.Table) models.ChartData {
	header := t.Header()
	rows := t.Rows()

	out := models.ChartData{
		Labels:         []string{},
		Series:         []models.Series{},
		SkippedColumns: []string{},
	}
	if len(header) == 0 {
		return out
	}

	out.Labels = make([]string, len(rows))
	for i, row := range rows {
		if len(row) > 0 {
			out.Labels[i] = row[0]
		}
	}

	skipped := make(map[string]bool)
	for col := 1; col < len(header); col++ {
		name := header[col]
		values := make([]float64, len(rows))
		for r := range rows {
			v, ok := cellNumber(rows[r], col)
			values[r] = v
			if !ok && !skipped[name] {
				skipped[name] = true
				out.SkippedColumns = append(out.SkippedColumns, name)
			}
		}
		out.Series = append(out.Series, models.Series{Name: name, Values: values})
	}

	return out
}

func cellNumber(row []string, col int) (float64, bool) {
	if col >= len(row) {
		return math.NaN(), false
	}
	return ParseNumber(row[col])
}
