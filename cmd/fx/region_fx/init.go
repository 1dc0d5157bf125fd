package region_fx

import (
	"go.uber.org/fx"

	"dongseon/internal/services"
)

var Module = fx.Provide(provideRegionService, provideCandidateFilter)

func provideRegionService() services.RegionServiceInterface {
	return services.NewRegionService(services.DefaultRegionResolverConfig())
}

func provideCandidateFilter() services.CandidateFilterInterface {
	return services.NewCandidateFilter()
}
