// Package models defines the in-memory shapes exchanged between dataset
// retrieval, shaping and presentation.
package models

// Table is a rectangular-ish grid of text cells. Row 0 is the header,
// rows 1..N are data rows. Rows may be shorter than the header.
type Table [][]string

// Header returns the header row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns the data rows (everything after the header).
func (t Table) Rows() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// Width returns the number of header columns.
func (t Table) Width() int {
	return len(t.Header())
}

// Cell returns the text at data row r (0-based, header excluded) and
// column c. The second result is false when the cell is absent.
func (t Table) Cell(r, c int) (string, bool) {
	rows := t.Rows()
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return "", false
	}
	return rows[r][c], true
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = append([]string(nil), row...)
	}
	return out
}
