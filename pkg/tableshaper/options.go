// Package tableshaper loads datasets and prepares them for table or chart
// presentation.
package tableshaper

import (
	"fmt"
	"strings"
)

// Format represents how a loaded dataset is presented.
type Format string

const (
	// FormatTable presents the raw table.
	FormatTable Format = "table"
	// FormatBar presents one clustered bar per series.
	FormatBar Format = "bar"
	// FormatStackedBar presents the series stacked per label.
	FormatStackedBar Format = "stacked-bar"
)

// IsChart reports whether the format needs chart data.
func (f Format) IsChart() bool {
	return f == FormatBar || f == FormatStackedBar
}

// ParseFormat parses a format name. Besides the Format values it accepts
// the display names "Table", "Bar Chart" and "Stacked Bar Chart".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "bar", "bar chart":
		return FormatBar, nil
	case "stacked-bar", "stacked", "stacked bar chart":
		return FormatStackedBar, nil
	default:
		return "", fmt.Errorf("%w: %q (must be table, bar, or stacked-bar)", ErrUnknownFormat, s)
	}
}

// Options configures loading.
type Options struct {
	// Format selects table or chart presentation.
	Format Format
	// Search keeps only rows with a cell equal to this value (ignoring case).
	Search string
	// Column restricts Search to one column, by header name or index.
	Column string
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{
		Format: FormatTable,
	}
}
