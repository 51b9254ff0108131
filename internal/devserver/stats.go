package devserver

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

// Column contract shared with the real backend.
var (
	requiredColumns = []string{
		"asset_category", "business_context", "asset_value",
		"confidentiality", "integrity", "availability", "risk_category",
	}
	featureColumns = []string{
		"confidentiality", "integrity", "availability",
		"cia_average", "cia_max", "value_impact",
	}
	numericStatColumns = []string{"confidentiality", "integrity", "availability"}
)

const targetColumn = "risk_category"

// parseRecords turns raw CSV records (header first) into row maps and checks
// the column contract.
func parseRecords(records [][]string) ([]map[string]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %v", missing)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for col, i := range index {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// computeStatistics builds the same summary the real backend stores alongside
// an uploaded dataset.
func computeStatistics(rows []map[string]string) (int, []string, map[string]int, map[string]models.FeatureStats) {
	distribution := make(map[string]int)
	for _, row := range rows {
		distribution[row[targetColumn]]++
	}

	classes := make([]string, 0, len(distribution))
	for class := range distribution {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	featureStats := make(map[string]models.FeatureStats, len(numericStatColumns))
	for _, col := range numericStatColumns {
		var sum float64
		stats := models.FeatureStats{}
		for i, row := range rows {
			v := cast.ToFloat64(row[col])
			if i == 0 {
				stats.Min, stats.Max = v, v
			}
			if v < stats.Min {
				stats.Min = v
			}
			if v > stats.Max {
				stats.Max = v
			}
			sum += v
		}
		if len(rows) > 0 {
			stats.Mean = sum / float64(len(rows))
		}
		featureStats[col] = stats
	}

	return len(rows), classes, distribution, featureStats
}

// availableFeatures intersects the backend's feature contract with the
// columns present in the uploaded header.
func availableFeatures(rows []map[string]string) []string {
	if len(rows) == 0 {
		return nil
	}
	var out []string
	for _, col := range featureColumns {
		if _, ok := rows[0][col]; ok {
			out = append(out, col)
		}
	}
	return out
}
