package venues_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dongseon/internal/repositories"
	"dongseon/internal/services"
)

var Module = fx.Provide(provideVenueRepo, provideVenueService)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideVenueService(
	venueRepo repositories.VenueRepository,
	regions services.RegionServiceInterface,
	filter services.CandidateFilterInterface,
) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo, regions, filter)
}
