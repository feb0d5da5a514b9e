package server

import (
	"log/slog"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/config"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/logging"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers/fixture"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers/rotowire"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.LineupProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "rotowire", "":
		return rotowire.NewClient(rotowire.Config{
			URL:     cfg.Rotowire.URL,
			Timeout: cfg.Rotowire.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown lineup provider, falling back to rotowire", slog.String(logging.FieldProvider, cfg.Provider))
		}
		return rotowire.NewClient(rotowire.Config{
			URL:     cfg.Rotowire.URL,
			Timeout: cfg.Rotowire.Timeout,
		})
	}
}
