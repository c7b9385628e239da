package tableshaper

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/shaper"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/source"
)

// Load retrieves a dataset from src and prepares it for opts.Format.
// Retrieval failures are returned as *source.RetrievalError; an empty
// result is not an error and is reported through View.Message.
func Load(ctx context.Context, src source.Source, dataset string, opts Options) (*models.View, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}

	table, err := source.Retrieve(ctx, src, source.Query{
		Dataset: dataset,
		Search:  opts.Search,
		Column:  opts.Column,
	})
	if err != nil {
		return nil, err
	}

	view := &models.View{
		Dataset: dataset,
		Search:  opts.Search,
		Format:  string(format),
		Table:   table,
	}

	switch {
	case opts.Search == "" && len(table) == 0:
		view.Message = fmt.Sprintf("No data available for %s", dataset)
	case opts.Search != "" && len(table.Rows()) == 0:
		view.Message = fmt.Sprintf("No matches found for %s in %s", opts.Search, dataset)
	case opts.Search != "":
		view.Message = fmt.Sprintf("Showing matches found for %s in %s", opts.Search, dataset)
	}

	if format.IsChart() {
		chart := shaper.Shape(table)
		view.Chart = &chart
	}

	return view, nil
}

// LoadBroadband looks up one county and presents it as a table.
func LoadBroadband(ctx context.Context, b source.Broadband, state, county string) (*models.View, error) {
	rec, err := b.Lookup(ctx, state, county)
	if err != nil {
		return nil, source.NewRetrievalError("broadband", err)
	}
	return &models.View{
		Dataset: "broadband",
		Format:  string(FormatTable),
		Message: fmt.Sprintf("Broadband for county %s in state %s loaded.",
			strings.TrimSpace(county), strings.TrimSpace(state)),
		Table:   rec.Table(),
	}, nil
}
