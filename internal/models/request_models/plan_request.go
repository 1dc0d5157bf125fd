package request_models

import "dongseon/internal/models/plan_models"

type OptimizeRouteRequest struct {
	Places []string `json:"places" binding:"required"`
	// StartLocation, when set, is pinned to the front of the tour.
	StartLocation string `json:"start_location"`
	Mode          string `json:"mode"`
}

type PlanItineraryRequest struct {
	// StartTime ("HH:MM") applies to day 1 only.
	StartTime string                  `json:"start_time"`
	Items     []plan_models.DraftItem `json:"items" binding:"required"`
}
