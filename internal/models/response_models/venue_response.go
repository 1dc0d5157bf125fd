package response_models

import "dongseon/internal/models/plan_models"

type VenueResponse struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	RegionText  string  `json:"region_text"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
}

func VenueResponseFrom(c plan_models.VenueCandidate) VenueResponse {
	out := VenueResponse{
		Name:        c.Name,
		Category:    string(c.Category),
		RegionText:  c.RegionText,
		Description: c.Description,
	}
	if c.Coordinate != nil {
		out.Latitude = c.Coordinate.Lat
		out.Longitude = c.Coordinate.Lng
	}
	return out
}

type RegionResponse struct {
	Regions []string `json:"regions"`
}
