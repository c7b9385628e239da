package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// Search returns the header followed by every data row that has a cell
// equal to term, ignoring case.
func Search(t models.Table, term string) models.Table {
	if len(t) == 0 {
		return models.Table{}
	}
	out := models.Table{t.Header()}
	for _, row := range t.Rows() {
		for _, cell := range row {
			if strings.EqualFold(cell, term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// SearchColumn is Search restricted to one column. column is either a
// zero-based index or a header name (case-insensitive); an index that is out
// of range is retried as a header name.
func SearchColumn(t models.Table, term, column string) (models.Table, error) {
	if len(t) == 0 {
		return models.Table{}, nil
	}
	col, err := columnIndex(t.Header(), column)
	if err != nil {
		return nil, err
	}
	out := models.Table{t.Header()}
	for _, row := range t.Rows() {
		if col < len(row) && strings.EqualFold(row[col], term) {
			out = append(out, row)
		}
	}
	return out, nil
}

func columnIndex(header []string, column string) (int, error) {
	if i, err := strconv.Atoi(column); err == nil && i >= 0 && i < len(header) {
		return i, nil
	}
	for i, name := range header {
		if strings.EqualFold(name, column) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
}
