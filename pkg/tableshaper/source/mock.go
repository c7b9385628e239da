package source

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

//go:embed mockdata/*.csv
var mockFS embed.FS

// Mock serves a fixed set of in-memory datasets.
type Mock struct {
	tables map[string]models.Table
}

// NewMock returns the built-in demo datasets: the embedded student and
// plant records plus the generated "Table A" and "Lost of Data" tables.
func NewMock() (*Mock, error) {
	tables := map[string]models.Table{
		"Table A":      generatedTableA(),
		"Lost of Data": generatedLostOfData(),
	}

	entries, err := fs.ReadDir(mockFS, "mockdata")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		f, err := mockFS.Open(path.Join("mockdata", e.Name()))
		if err != nil {
			return nil, err
		}
		table, err := readCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("mock dataset %s: %w", e.Name(), err)
		}
		tables[mockName(e.Name())] = table
	}

	return &Mock{tables: tables}, nil
}

// NewMockFrom serves the given tables.
func NewMockFrom(tables map[string]models.Table) *Mock {
	m := &Mock{tables: make(map[string]models.Table, len(tables))}
	for name, t := range tables {
		m.tables[name] = t.Clone()
	}
	return m
}

// Fetch returns a copy of the named table.
func (m *Mock) Fetch(ctx context.Context, dataset string) (models.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, ok := m.tables[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, dataset)
	}
	return t.Clone(), nil
}

// Datasets returns the dataset names in sorted order.
func (m *Mock) Datasets(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// mockName maps "student_record.csv" to "Student Record".
func mockName(file string) string {
	words := strings.Split(strings.TrimSuffix(file, path.Ext(file)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func generatedTableA() models.Table {
	t := models.Table{{"Label 1", "Label 2", "Label 3"}}
	for i := 0; i < 40; i++ {
		t = append(t, []string{itoa(i + 1), itoa(i - 1), itoa(i * 3)})
	}
	return t
}

func generatedLostOfData() models.Table {
	header := make([]string, 12)
	for i := range header {
		header[i] = itoa(i + 1)
	}
	t := models.Table{header}
	for i := 0; i < 40; i++ {
		half := strconv.FormatFloat(float64(i)/2, 'f', -1, 64)
		t = append(t, []string{
			itoa(i + 1), itoa(i - 1), itoa(i * 3), itoa(i), half, itoa(i * 4),
			itoa(i), itoa(i), itoa(i), itoa(i), itoa(i), itoa(i),
		})
	}
	return t
}

func itoa(i int) string { return strconv.Itoa(i) }
