package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/theblitlabs/gologger"

	"github.com/assetsentry/riskml-console/cmd/cli"
)

var (
	logMode    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "riskml",
	Short: "Riskml Console",
	Long:  `Console for the asset-risk classification ML backend: upload datasets, train models, run predictions and export reports`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch logMode {
		case "debug", "pretty", "info", "prod", "test":
			gologger.InitWithMode(gologger.LogMode(logMode))
		default:
			gologger.InitWithMode(gologger.LogModePretty)
		}
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a labeled CSV dataset",
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		modelName, _ := cmd.Flags().GetString("model-name")
		datasetType, _ := cmd.Flags().GetString("type")
		cli.RunUpload(configPath, file, modelName, datasetType)
	},
}

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List uploaded datasets",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunDatasets(configPath)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for one dataset",
	Run: func(cmd *cobra.Command, args []string) {
		datasetID, _ := cmd.Flags().GetString("dataset")
		cli.RunStats(configPath, datasetID)
	},
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train models against an uploaded dataset",
	Run: func(cmd *cobra.Command, args []string) {
		datasetID, _ := cmd.Flags().GetString("dataset")
		kinds, _ := cmd.Flags().GetStringSlice("models")
		cli.RunTrain(configPath, datasetID, kinds)
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List trained models and highlight the best performer",
	Run: func(cmd *cobra.Command, args []string) {
		cli.RunModels(configPath)
	},
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run predictions against a trained model",
	Run: func(cmd *cobra.Command, args []string) {
		modelID, _ := cmd.Flags().GetString("model")
		dataFile, _ := cmd.Flags().GetString("data")
		cli.RunTest(configPath, modelID, dataFile)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Download a model performance report",
	Run: func(cmd *cobra.Command, args []string) {
		modelID, _ := cmd.Flags().GetString("model")
		outDir, _ := cmd.Flags().GetString("out")
		cli.RunReport(configPath, modelID, outDir)
	},
}

var devserverCmd = &cobra.Command{
	Use:   "devserver",
	Short: "Serve an in-memory stand-in for the ML backend",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		cli.RunDevServer(addr)
	},
}

func main() {
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(devserverCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logMode, "log", "pretty", "Log mode: debug, pretty, info, prod, test")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "Path to config file")

	uploadCmd.Flags().String("file", "", "Path to the CSV file to upload")
	uploadCmd.Flags().String("model-name", "", "Owning model name for the dataset")
	uploadCmd.Flags().String("type", "training", "Dataset type: training or testing")
	if err := uploadCmd.MarkFlagRequired("file"); err != nil {
		log.Error().Err(err).Msg("Failed to mark file flag as required")
	}

	statsCmd.Flags().String("dataset", "", "Dataset identifier")
	if err := statsCmd.MarkFlagRequired("dataset"); err != nil {
		log.Error().Err(err).Msg("Failed to mark dataset flag as required")
	}

	trainCmd.Flags().String("dataset", "", "Dataset identifier")
	trainCmd.Flags().StringSlice("models", nil, "Model kinds to train (default: random_forest,svm,decision_tree)")
	if err := trainCmd.MarkFlagRequired("dataset"); err != nil {
		log.Error().Err(err).Msg("Failed to mark dataset flag as required")
	}

	testCmd.Flags().String("model", "", "Trained model identifier")
	testCmd.Flags().String("data", "", "Path to a JSON or CSV file of feature rows")
	if err := testCmd.MarkFlagRequired("model"); err != nil {
		log.Error().Err(err).Msg("Failed to mark model flag as required")
	}
	if err := testCmd.MarkFlagRequired("data"); err != nil {
		log.Error().Err(err).Msg("Failed to mark data flag as required")
	}

	reportCmd.Flags().String("model", "", "Trained model identifier")
	reportCmd.Flags().String("out", "", "Directory to save the report into (default: reports dir from config)")
	if err := reportCmd.MarkFlagRequired("model"); err != nil {
		log.Error().Err(err).Msg("Failed to mark model flag as required")
	}

	devserverCmd.Flags().String("addr", ":8000", "Listen address")
}
