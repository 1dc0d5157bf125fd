package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"dongseon/internal/models/plan_models"
	"dongseon/pkg/utils"
)

// RouteLeg is one resolved travel leg between two named places.
type RouteLeg struct {
	DurationSeconds int
	DurationText    string
	DistanceMeters  int
	DistanceText    string
	Mode            string
	Steps           []string
	// Estimated marks legs derived from the geometric fallback rather
	// than a real provider path.
	Estimated bool
}

// GeoProvider is the raw geocoding/directions backend. Injected so tests
// can substitute deterministic doubles for the network client.
type GeoProvider interface {
	Geocode(ctx context.Context, query string) (plan_models.Coordinate, error)
	Route(ctx context.Context, origin, destination, mode string, departAt time.Time) (RouteLeg, error)
}

type GeoConfig struct {
	WalkingSpeedKmh float64
	VehicleSpeedKmh float64
	RequestTimeout  time.Duration
	MaxConcurrency  int
	PairCacheTTL    time.Duration
	DefaultMode     string
}

func DefaultGeoConfig() GeoConfig {
	return GeoConfig{
		WalkingSpeedKmh: 4,
		VehicleSpeedKmh: 28,
		RequestTimeout:  8 * time.Second,
		MaxConcurrency:  4,
		PairCacheTTL:    7 * 24 * time.Hour,
		DefaultMode:     "transit",
	}
}

// --------- in-memory caches keyed by place / (mode, origin, dest) ---------

type legKey struct {
	Mode string
	A    string
	B    string
}

type legCacheEntry struct {
	Leg       RouteLeg
	ExpiresAt time.Time
}

type geoCache struct {
	mu     sync.RWMutex
	coords map[string]plan_models.Coordinate
	legs   map[legKey]legCacheEntry
}

func newGeoCache() *geoCache {
	return &geoCache{
		coords: make(map[string]plan_models.Coordinate),
		legs:   make(map[legKey]legCacheEntry),
	}
}

func (c *geoCache) getCoord(place string) (plan_models.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.coords[place]
	return v, ok
}

func (c *geoCache) setCoord(place string, v plan_models.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coords[place] = v
}

func (c *geoCache) getLeg(k legKey) (RouteLeg, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.legs[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return RouteLeg{}, false
	}
	return it.Leg, true
}

func (c *geoCache) setLeg(k legKey, v RouteLeg, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.legs[k] = legCacheEntry{Leg: v, ExpiresAt: time.Now().Add(ttl)}
}

// --------- geo distance service ---------

// Unreachable marks a matrix pair with no route and no usable estimate.
var Unreachable = math.Inf(1)

type GeoServiceInterface interface {
	// Geocode resolves a place name, retrying with each canonical region
	// prefixed once the bare query misses.
	Geocode(ctx context.Context, place string) (plan_models.Coordinate, error)

	// Route resolves a travel leg, degrading to a great-circle estimate
	// when the provider fails and both endpoints have coordinates.
	Route(ctx context.Context, origin, destination, mode string, departAt time.Time) (RouteLeg, error)

	// DurationMatrix computes the full pairwise duration matrix in
	// seconds. Failed pairs resolve to the geometric fallback; pairs with
	// an unresolvable endpoint are Unreachable. Never contains holes.
	DurationMatrix(ctx context.Context, places []string, mode string) ([][]float64, error)
}

type GeoService struct {
	provider GeoProvider
	cfg      GeoConfig
	cache    *geoCache
}

func NewGeoService(provider GeoProvider, cfg GeoConfig) GeoServiceInterface {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultGeoConfig().MaxConcurrency
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = DefaultGeoConfig().DefaultMode
	}
	return &GeoService{
		provider: provider,
		cfg:      cfg,
		cache:    newGeoCache(),
	}
}

func (g *GeoService) Geocode(ctx context.Context, place string) (plan_models.Coordinate, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return plan_models.Coordinate{}, utils.ErrInvalidInput
	}
	if coord, ok := g.cache.getCoord(place); ok {
		return coord, nil
	}

	coord, err := g.geocodeOnce(ctx, place)
	if err == nil {
		g.cache.setCoord(place, coord)
		return coord, nil
	}

	// widen the query with each canonical region, first hit wins
	for _, region := range plan_models.AllRegions() {
		if ctx.Err() != nil {
			return plan_models.Coordinate{}, ctx.Err()
		}
		coord, err = g.geocodeOnce(ctx, string(region)+" "+place)
		if err == nil {
			g.cache.setCoord(place, coord)
			return coord, nil
		}
	}

	return plan_models.Coordinate{}, fmt.Errorf("%w: %q", utils.ErrGeocodeNotFound, place)
}

func (g *GeoService) geocodeOnce(ctx context.Context, query string) (plan_models.Coordinate, error) {
	callCtx, cancel := g.callContext(ctx)
	defer cancel()
	return g.provider.Geocode(callCtx, query)
}

func (g *GeoService) Route(ctx context.Context, origin, destination, mode string, departAt time.Time) (RouteLeg, error) {
	if mode == "" {
		mode = g.cfg.DefaultMode
	}
	key := legKey{Mode: mode, A: origin, B: destination}
	if leg, ok := g.cache.getLeg(key); ok {
		return leg, nil
	}

	callCtx, cancel := g.callContext(ctx)
	leg, err := g.provider.Route(callCtx, origin, destination, mode, departAt)
	cancel()
	if err == nil && leg.DurationSeconds > 0 {
		leg.Mode = mode
		g.cache.setLeg(key, leg, g.cfg.PairCacheTTL)
		return leg, nil
	}

	estimate, estErr := g.estimateLeg(ctx, origin, destination, mode)
	if estErr != nil {
		return RouteLeg{}, estErr
	}
	g.cache.setLeg(key, estimate, g.cfg.PairCacheTTL)
	return estimate, nil
}

// estimateLeg is the geometric fallback: great-circle distance over an
// assumed speed per mode. Requires both endpoints to geocode; a missing
// endpoint is a hard failure for this leg.
func (g *GeoService) estimateLeg(ctx context.Context, origin, destination, mode string) (RouteLeg, error) {
	from, err := g.Geocode(ctx, origin)
	if err != nil {
		return RouteLeg{}, err
	}
	to, err := g.Geocode(ctx, destination)
	if err != nil {
		return RouteLeg{}, err
	}

	meters := haversineMeters(from, to)
	speedKmh := g.cfg.VehicleSpeedKmh
	if mode == "walking" {
		speedKmh = g.cfg.WalkingSpeedKmh
	}
	if speedKmh <= 0 {
		speedKmh = DefaultGeoConfig().VehicleSpeedKmh
	}

	seconds := int(meters / (speedKmh * 1000 / 3600))
	if seconds < 60 {
		seconds = 60
	}

	return RouteLeg{
		DurationSeconds: seconds,
		DurationText:    fmt.Sprintf("about %d min", (seconds+59)/60),
		DistanceMeters:  int(meters),
		DistanceText:    fmt.Sprintf("%.1f km", meters/1000),
		Mode:            mode,
		Estimated:       true,
	}, nil
}

func (g *GeoService) DurationMatrix(ctx context.Context, places []string, mode string) ([][]float64, error) {
	n := len(places)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.MaxConcurrency)

	var mu sync.Mutex
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			i, j := i, j
			eg.Go(func() error {
				leg, err := g.Route(egCtx, places[i], places[j], mode, time.Time{})
				if err != nil {
					// a cancelled caller aborts the whole matrix; only a
					// genuine geocode/route failure degrades the pair
					if ctxErr := egCtx.Err(); ctxErr != nil {
						return ctxErr
					}
					log.Printf("matrix pair %q -> %q unresolved: %v", places[i], places[j], err)
					mu.Lock()
					matrix[i][j] = Unreachable
					mu.Unlock()
					return nil
				}
				mu.Lock()
				matrix[i][j] = float64(leg.DurationSeconds)
				mu.Unlock()
				return nil
			})
		}
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return matrix, nil
}

func (g *GeoService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := g.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultGeoConfig().RequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

const earthRadiusMeters = 6371000

func haversineMeters(a, b plan_models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// --------- Google geocoding/directions client ---------

type GoogleGeoClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGoogleGeoClient() *GoogleGeoClient {
	key := os.Getenv("GOOGLE_MAPS_API_KEY")
	if key == "" {
		panic("GOOGLE_MAPS_API_KEY is empty")
	}
	return &GoogleGeoClient{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		APIKey:  key,
		BaseURL: "https://maps.googleapis.com",
	}
}

func (c *GoogleGeoClient) Geocode(ctx context.Context, query string) (plan_models.Coordinate, error) {
	q := url.Values{}
	q.Set("address", query)
	q.Set("language", "ko")
	q.Set("region", "KR")
	q.Set("key", c.APIKey)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := c.getJSON(ctx, "/maps/api/geocode/json", q, &payload); err != nil {
		return plan_models.Coordinate{}, err
	}
	if payload.Status != "OK" || len(payload.Results) == 0 {
		return plan_models.Coordinate{}, fmt.Errorf("%w: %q", utils.ErrGeocodeNotFound, query)
	}

	loc := payload.Results[0].Geometry.Location
	return plan_models.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func (c *GoogleGeoClient) Route(ctx context.Context, origin, destination, mode string, departAt time.Time) (RouteLeg, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", mode)
	q.Set("language", "ko")
	q.Set("region", "KR")
	q.Set("key", c.APIKey)
	if !departAt.IsZero() {
		q.Set("departure_time", fmt.Sprintf("%d", departAt.Unix()))
	}

	var payload struct {
		Status string `json:"status"`
		Routes []struct {
			Legs []struct {
				Duration struct {
					Value int    `json:"value"`
					Text  string `json:"text"`
				} `json:"duration"`
				Distance struct {
					Value int    `json:"value"`
					Text  string `json:"text"`
				} `json:"distance"`
				Steps []struct {
					TravelMode string `json:"travel_mode"`
					Duration   struct {
						Text string `json:"text"`
					} `json:"duration"`
					TransitDetails struct {
						Line struct {
							ShortName string `json:"short_name"`
							Name      string `json:"name"`
							Vehicle   struct {
								Name string `json:"name"`
							} `json:"vehicle"`
						} `json:"line"`
					} `json:"transit_details"`
				} `json:"steps"`
			} `json:"legs"`
		} `json:"routes"`
	}
	if err := c.getJSON(ctx, "/maps/api/directions/json", q, &payload); err != nil {
		return RouteLeg{}, err
	}
	if payload.Status != "OK" || len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return RouteLeg{}, fmt.Errorf("%w: %q -> %q", utils.ErrRouteNotFound, origin, destination)
	}

	leg := payload.Routes[0].Legs[0]
	steps := make([]string, 0, len(leg.Steps))
	for _, step := range leg.Steps {
		switch step.TravelMode {
		case "TRANSIT":
			line := step.TransitDetails.Line.ShortName
			if line == "" {
				line = step.TransitDetails.Line.Name
			}
			vehicle := step.TransitDetails.Line.Vehicle.Name
			if vehicle == "" {
				vehicle = "Transit"
			}
			steps = append(steps, fmt.Sprintf("[%s] %s", vehicle, line))
		case "WALKING":
			steps = append(steps, fmt.Sprintf("Walk %s", step.Duration.Text))
		default:
			steps = append(steps, step.TravelMode)
		}
	}

	return RouteLeg{
		DurationSeconds: leg.Duration.Value,
		DurationText:    leg.Duration.Text,
		DistanceMeters:  leg.Distance.Value,
		DistanceText:    leg.Distance.Text,
		Mode:            mode,
		Steps:           steps,
	}, nil
}

func (c *GoogleGeoClient) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := c.BaseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("geo provider http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("geo provider bad status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geo provider decode: %w", err)
	}
	return nil
}
