package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

func RunDatasets(configPath string) {
	log, _, client := setup("datasets", configPath)

	datasets, err := client.ListDatasets(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list datasets")
	}
	if len(datasets) == 0 {
		log.Info().Msg("No datasets uploaded yet")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATASET ID\tTYPE\tMODEL\tRECORDS\tCLASSES\tUPLOADED")
	for _, ds := range datasets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			ds.DatasetID, ds.DatasetType, ds.ModelName,
			ds.TotalRecords, len(ds.TargetClasses), ds.UploadDate)
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to render dataset table")
	}
}

func RunStats(configPath, datasetID string) {
	log, _, client := setup("stats", configPath)

	ds, err := client.GetStatistics(context.Background(), datasetID)
	if err != nil {
		log.Fatal().Err(err).Str("dataset_id", datasetID).Msg("Failed to fetch statistics")
	}

	log.Info().
		Str("dataset_id", ds.DatasetID).
		Str("type", string(ds.DatasetType)).
		Int("total_records", ds.TotalRecords).
		Int("features", ds.FeaturesCount).
		Strs("classes", ds.TargetClasses).
		Msg("Dataset statistics")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tCOUNT")
	for _, class := range ds.TargetClasses {
		fmt.Fprintf(w, "%s\t%d\n", class, ds.ClassDistribution[class])
	}
	if len(ds.FeatureStatistics) > 0 {
		fmt.Fprintln(w, "\nFEATURE\tMIN\tMAX\tMEAN")
		for name, stats := range ds.FeatureStatistics {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\n", name, stats.Min, stats.Max, stats.Mean)
		}
	}
	if err := w.Flush(); err != nil {
		log.Error().Err(err).Msg("Failed to render statistics table")
	}
}
