package controllers_fx

import (
	"go.uber.org/fx"

	"cougcuts/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewProductController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewDocumentController))
