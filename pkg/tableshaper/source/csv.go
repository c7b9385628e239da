package source

import (
	"encoding/csv"
	"io"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// readCSV reads every record of r. Rows may have differing lengths.
func readCSV(r io.Reader) (models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return models.Table{}, nil
	}
	return models.Table(rows), nil
}
