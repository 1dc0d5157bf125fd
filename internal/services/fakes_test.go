package services

import (
	"context"
	"fmt"
	"time"

	"dongseon/internal/models/plan_models"
	"dongseon/pkg/utils"
)

// fakeProvider is a deterministic GeoProvider double.
type fakeProvider struct {
	coords   map[string]plan_models.Coordinate
	routeFn  func(origin, destination, mode string) (RouteLeg, error)
	geocoded []string
}

func (f *fakeProvider) Geocode(ctx context.Context, query string) (plan_models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return plan_models.Coordinate{}, err
	}
	f.geocoded = append(f.geocoded, query)
	if c, ok := f.coords[query]; ok {
		return c, nil
	}
	return plan_models.Coordinate{}, fmt.Errorf("%w: %q", utils.ErrGeocodeNotFound, query)
}

func (f *fakeProvider) Route(ctx context.Context, origin, destination, mode string, departAt time.Time) (RouteLeg, error) {
	if err := ctx.Err(); err != nil {
		return RouteLeg{}, err
	}
	if f.routeFn != nil {
		return f.routeFn(origin, destination, mode)
	}
	return RouteLeg{}, fmt.Errorf("%w: %q -> %q", utils.ErrRouteNotFound, origin, destination)
}

// fakeGeoService is a GeoServiceInterface double backed by fixed tables.
type fakeGeoService struct {
	coords map[string]plan_models.Coordinate
	// legs maps "origin|destination" to a duration in minutes
	legs      map[string]int
	legErrs   map[string]error
	matrix    [][]float64
	matrixErr error
}

func legKeyOf(origin, destination string) string { return origin + "|" + destination }

func (f *fakeGeoService) Geocode(ctx context.Context, place string) (plan_models.Coordinate, error) {
	if c, ok := f.coords[place]; ok {
		return c, nil
	}
	return plan_models.Coordinate{}, utils.ErrGeocodeNotFound
}

func (f *fakeGeoService) Route(ctx context.Context, origin, destination, mode string, departAt time.Time) (RouteLeg, error) {
	if err, ok := f.legErrs[legKeyOf(origin, destination)]; ok {
		return RouteLeg{}, err
	}
	minutes, ok := f.legs[legKeyOf(origin, destination)]
	if !ok {
		return RouteLeg{}, utils.ErrRouteNotFound
	}
	return RouteLeg{
		DurationSeconds: minutes * 60,
		DurationText:    fmt.Sprintf("%d min", minutes),
		DistanceMeters:  minutes * 500,
		DistanceText:    fmt.Sprintf("%.1f km", float64(minutes)*0.5),
		Mode:            mode,
		Steps:           []string{"[Bus] 1002"},
	}, nil
}

func (f *fakeGeoService) DurationMatrix(ctx context.Context, places []string, mode string) ([][]float64, error) {
	if f.matrixErr != nil {
		return nil, f.matrixErr
	}
	return f.matrix, nil
}
