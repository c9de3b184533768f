package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cougcuts/internal/config"
	"cougcuts/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, logger *zap.Logger) (services.IMailService, error) {
	if !cfg.SMTPEnabled() {
		logger.Warn("SMTP credentials not set, routine emails are disabled")
		return services.NewDisabledMailService(logger), nil
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		FromName:   cfg.SMTP.FromName,
		UseSSL:     cfg.SMTP.UseSSL,
		RequireTLS: !cfg.IsDevelopment(),
		BookingURL: cfg.BookingURL,
	}, logger.Named("mail"))
}
