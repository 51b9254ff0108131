package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/assetsentry/riskml-console/internal/metrics"
)

func RunTrain(configPath, datasetID string, kinds []string) {
	log, _, client := setup("train", configPath)

	result, err := client.Train(context.Background(), datasetID, kinds)
	if err != nil {
		log.Fatal().Err(err).Str("dataset_id", datasetID).Msg("Training failed")
	}

	log.Info().
		Str("dataset_id", result.DatasetID).
		Int("models_trained", len(result.Results)).
		Msg("Training complete")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tMODEL ID\tTRAIN ACC\tTEST ACC\tCV ACC\tTIME")
	for _, m := range result.Results {
		perf := metrics.FormatPerformance(m)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			perf.ModelType, perf.ModelID,
			perf.TrainingAccuracy, perf.TestingAccuracy, perf.CVAccuracy, perf.TrainingTime)
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to render training table")
	}
}
