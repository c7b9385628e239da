package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// readWorkbook reads the first sheet of an xlsx file and trims it to the
// bounding box of its non-empty cells.
func readWorkbook(path string, logger *zap.Logger) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	if len(sheets) > 1 {
		logger.Debug("Reading first sheet only",
			zap.String("path", path),
			zap.String("sheet", sheets[0]),
			zap.Int("sheets", len(sheets)))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return trimToBounds(rows), nil
}

// trimToBounds drops the blank rows and columns surrounding the data.
func trimToBounds(rows [][]string) models.Table {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return models.Table{}
	}

	out := make(models.Table, 0, maxRow-minRow+1)
	for _, row := range rows[minRow : maxRow+1] {
		end := min(len(row), maxCol+1)
		if minCol >= end {
			out = append(out, []string{})
			continue
		}
		out = append(out, append([]string(nil), row[minCol:end]...))
	}
	return out
}

// findDataBounds finds the bounding box of non-empty cells.
// All results are -1 when there are none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
