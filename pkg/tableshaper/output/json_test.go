package output

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataviewhub/tableshaper/pkg/tableshaper/models"
	"github.com/dataviewhub/tableshaper/pkg/tableshaper/shaper"
)

func TestToJSON(t *testing.T) {
	v := &models.View{
		Dataset: "plants",
		Format:  "bar",
		Table:   models.Table{{"Name", "Score"}, {"B", "x"}},
		Chart: &models.ChartData{
			Labels:         []string{"B"},
			Series:         []models.Series{{Name: "Score", Values: []float64{math.NaN()}}},
			SkippedColumns: []string{"Score"},
		},
	}

	data, err := ToJSON(v, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dataset": "plants",
		"format": "bar",
		"table": [["Name","Score"],["B","x"]],
		"chart": {
			"labels": ["B"],
			"series": [{"name":"Score","values":[null]}],
			"skipped_columns": ["Score"]
		}
	}`, string(data))

	pretty, err := ToJSON(v, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"dataset\"")
}

func TestNamesToJSON(t *testing.T) {
	data, err := NamesToJSON(nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestChartToJSONOverflowingNumber(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	data := shaper.Shape(models.Table{{"Name", "N"}, {"a", huge}, {"b", "-" + huge}})
	assert.Empty(t, data.SkippedColumns, "overflowing digits are still numeric")

	out, err := ChartToJSON(&data, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"labels": ["a","b"],
		"series": [{"name":"N","values":["Infinity","-Infinity"]}],
		"skipped_columns": []
	}`, string(out))
}
