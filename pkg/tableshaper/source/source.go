// Package source provides the dataset retrieval capability: named tables
// from memory or from a directory of CSV and xlsx files, with row search.
package source

import (
	"context"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// Source retrieves tables by dataset name.
type Source interface {
	// Fetch returns the full table, header included.
	Fetch(ctx context.Context, dataset string) (models.Table, error)
	// Datasets lists the dataset names Fetch accepts.
	Datasets(ctx context.Context) ([]string, error)
}

// Query selects a dataset and an optional search.
type Query struct {
	Dataset string
	// Search keeps only rows containing this value. Empty means no filtering.
	Search string
	// Column restricts Search to one column, by header name or index.
	Column string
}

// Retrieve fetches a dataset and applies the query's search.
// Failures are returned as *RetrievalError.
func Retrieve(ctx context.Context, src Source, q Query) (models.Table, error) {
	table, err := src.Fetch(ctx, q.Dataset)
	if err != nil {
		return nil, NewRetrievalError(q.Dataset, err)
	}
	if q.Search == "" {
		return table, nil
	}
	if q.Column == "" {
		return Search(table, q.Search), nil
	}
	found, err := SearchColumn(table, q.Search, q.Column)
	if err != nil {
		return nil, NewRetrievalError(q.Dataset, err)
	}
	return found, nil
}
