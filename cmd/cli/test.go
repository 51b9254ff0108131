package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cast"
)

func RunTest(configPath, modelID, dataFile string) {
	log, _, client := setup("test", configPath)

	rows, err := loadRows(dataFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", dataFile).Msg("Failed to load test rows")
	}
	if len(rows) == 0 {
		log.Fatal().Str("file", dataFile).Msg("Test data file contains no rows")
	}

	result, err := client.TestModel(context.Background(), modelID, rows)
	if err != nil {
		log.Fatal().Err(err).Str("model_id", modelID).Msg("Testing failed")
	}

	log.Info().
		Str("model_id", result.ModelID).
		Str("kind", result.ModelInfo.ModelType).
		Int("predictions", len(result.Predictions)).
		Msg("Predictions received")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tPREDICTION\tPROBABILITIES")
	for i, p := range result.Predictions {
		parts := make([]string, 0, len(p.Probabilities))
		for _, class := range result.ModelInfo.TargetClasses {
			if prob, ok := p.Probabilities[class]; ok {
				parts = append(parts, fmt.Sprintf("%s=%.3f", class, prob))
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, p.Prediction, strings.Join(parts, " "))
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to render prediction table")
	}
}

// loadRows reads feature rows from a JSON array of objects or a CSV with a
// header row. Values are coerced to float64 either way.
func loadRows(path string) ([]map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var raw []map[string]interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON rows: %w", err)
		}
		rows := make([]map[string]float64, 0, len(raw))
		for _, obj := range raw {
			row := make(map[string]float64, len(obj))
			for k, v := range obj {
				f, err := cast.ToFloat64E(v)
				if err != nil {
					continue // non-numeric columns are not features
				}
				row[k] = f
			}
			rows = append(rows, row)
		}
		return rows, nil
	case ".csv":
		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV rows: %w", err)
		}
		if len(records) < 2 {
			return nil, fmt.Errorf("CSV needs a header row and at least one data row")
		}
		header := records[0]
		rows := make([]map[string]float64, 0, len(records)-1)
		for _, record := range records[1:] {
			row := make(map[string]float64, len(header))
			for i, col := range header {
				if i >= len(record) {
					continue
				}
				f, err := cast.ToFloat64E(record[i])
				if err != nil {
					continue
				}
				row[col] = f
			}
			rows = append(rows, row)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported test data format %q, want .json or .csv", filepath.Ext(path))
	}
}
