package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

func RunUpload(configPath, filePath, modelName, datasetType string) {
	log, _, client := setup("upload", configPath)

	file, err := os.Open(filePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("Failed to open upload file")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Fatal().Err(err).Str("file", filePath).Msg("Failed to stat upload file")
	}

	result, err := client.UploadDataset(
		context.Background(),
		file,
		filepath.Base(filePath),
		info.Size(),
		modelName,
		models.DatasetType(datasetType),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Upload failed")
	}

	log.Info().
		Str("dataset_id", result.DatasetID).
		Int("total_records", result.Statistics.TotalRecords).
		Int("features", result.Statistics.FeaturesCount).
		Strs("classes", result.Statistics.TargetClasses).
		Msg("Dataset uploaded")
}
