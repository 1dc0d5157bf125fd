package planner_fx

import (
	"go.uber.org/fx"

	"dongseon/internal/services"
)

var Module = fx.Provide(provideRouteService, provideScheduleService)

func provideRouteService(geo services.GeoServiceInterface) services.RouteServiceInterface {
	return services.NewRouteService(geo)
}

func provideScheduleService(
	geo services.GeoServiceInterface,
	filter services.CandidateFilterInterface,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(geo, filter)
}
