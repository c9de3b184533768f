package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cougcuts/internal/config"
	"cougcuts/internal/repositories"
	"cougcuts/internal/services"
)

var Module = fx.Provide(
	provideLeadRepo, provideSessionRepo, provideEmailEventRepo, provideQuizService)

func provideLeadRepo(db *gorm.DB) repositories.LeadRepositoryInterface {
	return repositories.NewLeadRepository(db)
}

func provideSessionRepo(db *gorm.DB) repositories.QuizSessionRepositoryInterface {
	return repositories.NewQuizSessionRepository(db)
}

func provideEmailEventRepo(db *gorm.DB) repositories.EmailEventRepositoryInterface {
	return repositories.NewEmailEventRepository(db)
}

func provideQuizService(
	cfg *config.Config,
	leads repositories.LeadRepositoryInterface,
	sessions repositories.QuizSessionRepositoryInterface,
	events repositories.EmailEventRepositoryInterface,
	mail services.IMailService,
	documents services.RoutineDocumentService,
	logger *zap.Logger,
) services.QuizServiceInterface {
	return services.NewQuizService(leads, sessions, events, mail, documents, cfg.DefaultBudget, logger.Named("quiz"))
}
