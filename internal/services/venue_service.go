package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"dongseon/internal/models/db_models"
	"dongseon/internal/models/plan_models"
	"dongseon/internal/models/request_models"
	"dongseon/internal/repositories"
	"dongseon/pkg/utils"
)

// VenueRetriever is the candidate-source port: ranked candidates for a
// query, optionally constrained to a category and trimmed of excluded
// names. The gorm-backed venue service is the production implementation;
// orchestration layers may swap in their own.
type VenueRetriever interface {
	SearchCandidates(ctx context.Context, query, category string, excludeNames []string, k int) ([]plan_models.VenueCandidate, error)
}

type VenueServiceInterface interface {
	VenueRetriever

	CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (string, error)
	GetVenueByID(ctx context.Context, id string) (*plan_models.VenueCandidate, error)
	ListVenues(ctx context.Context, region string, page, pageSize int) ([]plan_models.VenueCandidate, error)
}

type VenueService struct {
	venueRepo repositories.VenueRepository
	regions   RegionServiceInterface
	filter    CandidateFilterInterface
}

func NewVenueService(
	venueRepo repositories.VenueRepository,
	regions RegionServiceInterface,
	filter CandidateFilterInterface,
) VenueServiceInterface {
	return &VenueService{
		venueRepo: venueRepo,
		regions:   regions,
		filter:    filter,
	}
}

// SearchCandidates runs the selection pipeline: resolve the query's
// regions, over-fetch from the store, then cut by region, category and
// exclusions. Fetching wide before filtering keeps broad queries from
// starving on district-level address noise. A resolution that yields
// several regions ("capital area") is a set of alternatives, so the cut
// accepts a venue matching any one of them.
func (v *VenueService) SearchCandidates(ctx context.Context, query, category string, excludeNames []string, k int) ([]plan_models.VenueCandidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}
	if k <= 0 {
		k = 5
	}

	regions := v.regions.Normalize(query)
	regionTokens := make([]string, 0, len(regions))
	for _, r := range regions.Slice() {
		regionTokens = append(regionTokens, string(r))
	}

	cat := plan_models.Category("")
	if strings.TrimSpace(category) != "" {
		var ok bool
		if cat, ok = plan_models.ParseCategory(category); !ok {
			cat = v.filter.Classify(category)
		}
	}

	rows, err := v.venueRepo.SearchByKeywords(ctx, strings.Fields(query), k*10)
	if err != nil {
		log.Printf("Error searching venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	candidates := make([]plan_models.VenueCandidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, v.toCandidate(row))
	}

	filtered := v.filter.FilterAny(candidates, regionTokens, cat, excludeNames)
	if len(filtered) > k {
		filtered = filtered[:k]
	}
	return filtered, nil
}

func (v *VenueService) CreateVenue(ctx context.Context, req request_models.CreateVenueRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", utils.ErrInvalidInput
	}

	region := ""
	if resolved := v.regions.Normalize(req.RegionText); len(resolved) == 1 {
		region = string(resolved.Slice()[0])
	}

	venue := &db_models.Venue{
		Name:        req.Name,
		Category:    string(v.filter.Classify(req.Category)),
		Region:      region,
		RegionText:  req.RegionText,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Keywords:    req.Keywords,
	}

	id, err := v.venueRepo.Create(ctx, venue)
	if err != nil {
		log.Printf("Error creating venue: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (v *VenueService) GetVenueByID(ctx context.Context, id string) (*plan_models.VenueCandidate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}

	venue, err := v.venueRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching venue: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if venue == nil {
		return nil, utils.ErrVenueNotFound
	}

	cand := v.toCandidate(*venue)
	return &cand, nil
}

func (v *VenueService) ListVenues(ctx context.Context, region string, page, pageSize int) ([]plan_models.VenueCandidate, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	var rows []db_models.Venue
	var err error
	if region != "" {
		rows, err = v.venueRepo.ListByRegion(ctx, region, page, pageSize)
	} else {
		rows, err = v.venueRepo.List(ctx, page, pageSize)
	}
	if err != nil {
		log.Printf("Error listing venues: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]plan_models.VenueCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, v.toCandidate(row))
	}
	return out, nil
}

func (v *VenueService) toCandidate(row db_models.Venue) plan_models.VenueCandidate {
	cand := plan_models.VenueCandidate{
		Name:        row.Name,
		Category:    v.filter.Classify(row.Category),
		RawCategory: row.Category,
		RegionText:  row.RegionText,
		Description: row.Description,
	}
	if row.Latitude != 0 || row.Longitude != 0 {
		cand.Coordinate = &plan_models.Coordinate{Lat: row.Latitude, Lng: row.Longitude}
	}
	return cand
}
