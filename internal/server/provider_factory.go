package server

import (
	"log/slog"

	"github.com/dfsstartinglineups/nbastartingingfive/internal/config"
	"github.com/dfsstartinglineups/nbastartingingfive/internal/providers"
)

// providerFactory assembles the lineup provider with the shared retry wrapper.
type providerFactory struct {
	logger *slog.Logger
}

func newProviderFactory(logger *slog.Logger) providerFactory {
	return providerFactory{logger: logger}
}

func (f providerFactory) build(cfg config.Config) providers.LineupProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, 0, 0)
}
