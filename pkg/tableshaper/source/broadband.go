package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// Broadband looks up the broadband record of a county.
type Broadband interface {
	Lookup(ctx context.Context, state, county string) (models.BroadbandRecord, error)
}

// BroadbandTable answers lookups from a table whose header contains the
// columns of models.BroadbandHeader, in any order and case.
type BroadbandTable struct {
	table models.Table
	// cols maps each BroadbandHeader position to a table column.
	cols []int
}

// NewBroadbandTable validates the header of t.
func NewBroadbandTable(t models.Table) (*BroadbandTable, error) {
	cols := make([]int, len(models.BroadbandHeader))
	for i, name := range models.BroadbandHeader {
		idx, err := columnIndex(t.Header(), name)
		if err != nil {
			return nil, fmt.Errorf("broadband table: %w", err)
		}
		cols[i] = idx
	}
	return &BroadbandTable{table: t.Clone(), cols: cols}, nil
}

// LoadBroadband fetches a broadband dataset from src.
func LoadBroadband(ctx context.Context, src Source, dataset string) (*BroadbandTable, error) {
	t, err := src.Fetch(ctx, dataset)
	if err != nil {
		return nil, NewRetrievalError(dataset, err)
	}
	b, err := NewBroadbandTable(t)
	if err != nil {
		return nil, NewRetrievalError(dataset, err)
	}
	return b, nil
}

// Lookup finds the row named "<county>, <state>", ignoring case. The
// " County" suffix of county is optional.
func (b *BroadbandTable) Lookup(ctx context.Context, state, county string) (models.BroadbandRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.BroadbandRecord{}, err
	}
	state, county = strings.TrimSpace(state), strings.TrimSpace(county)
	if state == "" || county == "" {
		return models.BroadbandRecord{}, fmt.Errorf("%w: state and county are required", ErrMissingParameter)
	}
	if !strings.HasSuffix(strings.ToLower(county), " county") {
		county += " County"
	}
	want := county + ", " + state

	nameCol := b.cols[3]
	for _, row := range b.table.Rows() {
		if nameCol < len(row) && strings.EqualFold(row[nameCol], want) {
			return b.record(row), nil
		}
	}
	return models.BroadbandRecord{}, fmt.Errorf("%w: %q", ErrNotFound, want)
}

func (b *BroadbandTable) record(row []string) models.BroadbandRecord {
	get := func(i int) string {
		if c := b.cols[i]; c < len(row) {
			return row[c]
		}
		return ""
	}
	return models.BroadbandRecord{
		Date:       get(0),
		CountyCode: get(1),
		Broadband:  get(2),
		Name:       get(3),
		StateCode:  get(4),
	}
}
