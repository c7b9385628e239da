// Package output serializes views for the command line.
package output

import (
	"encoding/json"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
)

// ToJSON serializes a view.
func ToJSON(v *models.View, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

// ChartToJSON serializes chart data only.
func ChartToJSON(c *models.ChartData, pretty bool) ([]byte, error) {
	return marshal(c, pretty)
}

// NamesToJSON serializes a dataset listing.
func NamesToJSON(names []string, pretty bool) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	return marshal(names, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
