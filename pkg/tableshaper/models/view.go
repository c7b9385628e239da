package models

// View is a loaded dataset ready for presentation.
type View struct {
	// Dataset is the dataset identifier the table was retrieved by.
	Dataset string `json:"dataset"`
	// Search is the search term applied, if any.
	Search string `json:"search,omitempty"`
	// Format is the requested presentation (table, bar, stacked-bar).
	Format string `json:"format"`
	// Message is a user-facing status line.
	Message string `json:"message,omitempty"`
	// Table is the retrieved table, header included.
	Table Table `json:"table"`
	// Chart is set for chart formats only.
	Chart *ChartData `json:"chart,omitempty"`
}
