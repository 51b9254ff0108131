package cli

import (
	"github.com/rs/zerolog"
	"github.com/theblitlabs/gologger"

	"github.com/assetsentry/riskml-console/internal/config"
	"github.com/assetsentry/riskml-console/internal/mlclient"
)

// setup loads the config and builds the backend client shared by every
// command. Config problems are fatal; there is nothing useful to do without
// a backend URL.
func setup(component, configPath string) (zerolog.Logger, *config.Config, *mlclient.Client) {
	log := gologger.Get().With().Str("component", component).Logger()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}

	client := mlclient.NewClient(
		cfg.Backend.BaseURL,
		mlclient.WithTimeout(cfg.Backend.RequestTimeout),
	)
	return log, cfg, client
}
