// Package metrics derives display values from trained-model collections. It
// never touches the network.
package metrics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

var titleCaser = cases.Title(language.English)

// BestModel selects the model with the highest testing accuracy. Ties go to
// whichever entry comes first in the scan. Returns nil for an empty slice.
func BestModel(candidates []models.TrainedModel) *models.TrainedModel {
	if len(candidates) == 0 {
		return nil
	}

	best := &candidates[0]
	for i := range candidates[1:] {
		if candidates[i+1].TestingAccuracy > best.TestingAccuracy {
			best = &candidates[i+1]
		}
	}
	return best
}

// ModelPerformance carries the human-readable rendering of one model's raw
// metrics.
type ModelPerformance struct {
	ModelID          string
	ModelType        string
	TrainingAccuracy string
	TestingAccuracy  string
	CVAccuracy       string
	CVStd            string
	TrainingTime     string
}

// FormatPerformance renders the model's accuracy fields as percentages with
// one decimal place, humanizes the kind label, and suffixes the training
// time. The input model is never mutated.
func FormatPerformance(m models.TrainedModel) ModelPerformance {
	return ModelPerformance{
		ModelID:          m.ModelID,
		ModelType:        HumanizeKind(m.ModelType),
		TrainingAccuracy: formatPercent(m.TrainingAccuracy),
		TestingAccuracy:  formatPercent(m.TestingAccuracy),
		CVAccuracy:       formatPercent(m.CVAccuracy),
		CVStd:            formatPercent(m.CVStd),
		TrainingTime:     strconv.FormatFloat(m.TrainingTime, 'f', -1, 64) + " seconds",
	}
}

// HumanizeKind turns a machine label like "random_forest" into "Random
// Forest".
func HumanizeKind(kind string) string {
	label := strings.NewReplacer("_", " ", "-", " ").Replace(kind)
	return titleCaser.String(label)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
