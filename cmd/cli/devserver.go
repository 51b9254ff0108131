package cli

import (
	"net/http"
	"time"

	"github.com/theblitlabs/gologger"

	"github.com/assetsentry/riskml-console/internal/devserver"
)

func RunDevServer(addr string) {
	log := gologger.Get().With().Str("component", "devserver").Logger()

	srv := &http.Server{
		Addr:              addr,
		Handler:           devserver.NewServer(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("Serving in-memory ML backend")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Devserver stopped")
	}
}
