package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/assetsentry/riskml-console/internal/metrics"
)

func RunModels(configPath string) {
	log, _, client := setup("models", configPath)

	trained, err := client.ListModels(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list models")
	}
	if len(trained) == 0 {
		log.Info().Msg("No models trained yet")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL ID\tKIND\tTEST ACC\tCV ACC\tSAMPLES\tTRAINED")
	for _, m := range trained {
		perf := metrics.FormatPerformance(m)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			m.ModelID, perf.ModelType, perf.TestingAccuracy, perf.CVAccuracy,
			m.TrainingSamples+m.TestingSamples, m.TrainingDate)
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to render model table")
	}

	best := metrics.BestModel(trained)
	if best != nil {
		perf := metrics.FormatPerformance(*best)
		log.Info().
			Str("model_id", best.ModelID).
			Str("kind", perf.ModelType).
			Str("testing_accuracy", perf.TestingAccuracy).
			Msg("Best performing model")
	}
}
