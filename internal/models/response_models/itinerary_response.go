package response_models

import "dongseon/internal/models/plan_models"

type ItineraryResponse struct {
	Days  int                         `json:"days"`
	Items []plan_models.ItineraryItem `json:"items"`
}

type RouteLegResponse struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DurationText    string `json:"duration_text"`
	DistanceText    string `json:"distance_text"`
	TransportDetail string `json:"transport_detail,omitempty"`
	Estimated       bool   `json:"estimated,omitempty"`
}

type RouteOrderResponse struct {
	Order                []string           `json:"order"`
	TotalDurationMinutes int                `json:"total_duration_minutes"`
	Feasible             bool               `json:"feasible"`
	Legs                 []RouteLegResponse `json:"legs,omitempty"`
}
