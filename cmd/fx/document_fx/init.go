package document_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cougcuts/internal/config"
	"cougcuts/internal/services"
	mem "cougcuts/pkg/memcache"
)

var Module = fx.Provide(provideDocumentService)

func provideDocumentService(cfg *config.Config, tokens mem.LinkTokenStore, logger *zap.Logger) (services.RoutineDocumentService, error) {
	return services.NewRoutineDocumentService(services.DocumentConfig{
		Dir:     cfg.DocumentDir,
		BaseURL: cfg.AppBaseURL,
		LinkTTL: cfg.DocumentLinkTTL,
	}, tokens, logger.Named("document"))
}
