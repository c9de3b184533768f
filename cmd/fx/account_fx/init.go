package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cougcuts/internal/config"
	"cougcuts/internal/services"
	"cougcuts/pkg/utils"
)

var Module = fx.Provide(
	provideJWTSigner, provideAccountService)

func provideJWTSigner(cfg *config.Config) *utils.JWTSigner {
	return utils.NewJWTSigner(cfg.JWTSecret)
}

func provideAccountService(cfg *config.Config, signer *utils.JWTSigner, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(services.AdminCredentials{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
	}, signer, logger.Named("account"))
}
