package controllers_fx

import (
	"go.uber.org/fx"

	"dongseon/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewRegionsController,
	controllers.NewVenuesController,
	controllers.NewPlanController,
)
