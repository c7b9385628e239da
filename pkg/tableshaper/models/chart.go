package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Series is one named numeric column of a table.
type Series struct {
	// Name is the header cell the series was taken from.
	Name string `json:"name"`
	// Values holds one value per data row. NaN marks a cell that did not
	// parse as a number.
	Values []float64 `json:"values"`
}

// Infinite values are encoded as these strings since JSON has no number form for them.
const (
	jsonPosInf = "Infinity"
	jsonNegInf = "-Infinity"
)

// MarshalJSON encodes NaN values as null and infinite values as
// "Infinity" or "-Infinity".
func (s Series) MarshalJSON() ([]byte, error) {
	values := make([]interface{}, len(s.Values))
	for i, v := range s.Values {
		switch {
		case math.IsNaN(v):
			values[i] = nil
		case math.IsInf(v, 1):
			values[i] = jsonPosInf
		case math.IsInf(v, -1):
			values[i] = jsonNegInf
		default:
			values[i] = v
		}
	}
	return json.Marshal(struct {
		Name   string        `json:"name"`
		Values []interface{} `json:"values"`
	}{s.Name, values})
}

// UnmarshalJSON reverses MarshalJSON.
func (s *Series) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string            `json:"name"`
		Values []json.RawMessage `json:"values"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = raw.Name
	s.Values = make([]float64, len(raw.Values))
	for i, v := range raw.Values {
		f, err := decodeValue(v)
		if err != nil {
			return fmt.Errorf("series %q value %d: %w", raw.Name, i, err)
		}
		s.Values[i] = f
	}
	return nil
}

func decodeValue(v json.RawMessage) (float64, error) {
	if string(v) == "null" {
		return math.NaN(), nil
	}
	var str string
	if err := json.Unmarshal(v, &str); err == nil {
		switch str {
		case jsonPosInf:
			return math.Inf(1), nil
		case jsonNegInf:
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("unexpected string %q", str)
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, err
	}
	return f, nil
}

// ChartData is the chart-ready form of a table.
type ChartData struct {
	// Labels holds the first column of every data row, in row order.
	Labels []string `json:"labels"`
	// Series holds one entry per header column after the first.
	Series []Series `json:"series"`
	// SkippedColumns lists the column names with at least one non-numeric
	// cell, in header order and without duplicates.
	SkippedColumns []string `json:"skipped_columns"`
}

// IsSkipped reports whether name is listed in SkippedColumns.
func (c ChartData) IsSkipped(name string) bool {
	for _, s := range c.SkippedColumns {
		if s == name {
			return true
		}
	}
	return false
}
