package dashboard

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cougcuts/internal/repositories"
	"cougcuts/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(dashboardRepo repositories.DashboardRepository, leadRepo repositories.LeadRepositoryInterface) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, leadRepo)
}
