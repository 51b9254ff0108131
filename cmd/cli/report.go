package cli

import (
	"context"
)

func RunReport(configPath, modelID, outDir string) {
	log, cfg, client := setup("report", configPath)

	if outDir == "" {
		outDir = cfg.Reports.Dir
	}

	path, err := client.DownloadReport(context.Background(), modelID, outDir)
	if err != nil {
		log.Fatal().Err(err).Str("model_id", modelID).Msg("Report download failed")
	}

	log.Info().
		Str("model_id", modelID).
		Str("path", path).
		Msg("Report saved")
}
