package product_fx

import (
	"go.uber.org/fx"

	"cougcuts/internal/services"
)

var Module = fx.Provide(services.NewProductService)
