package geo_fx

import (
	"go.uber.org/fx"

	"dongseon/internal/services"
)

var Module = fx.Provide(provideGeoProvider, provideGeoService)

func provideGeoProvider() services.GeoProvider {
	return services.NewGoogleGeoClient()
}

func provideGeoService(provider services.GeoProvider) services.GeoServiceInterface {
	return services.NewGeoService(provider, services.DefaultGeoConfig())
}
