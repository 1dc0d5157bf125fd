package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dongseon/internal/models/request_models"
	"dongseon/internal/models/response_models"
	"dongseon/internal/services"
	"dongseon/pkg/utils"
)

type PlanController struct {
	routeService    services.RouteServiceInterface
	scheduleService services.ScheduleServiceInterface
	geoService      services.GeoServiceInterface
}

func NewPlanController(
	routeService services.RouteServiceInterface,
	scheduleService services.ScheduleServiceInterface,
	geoService services.GeoServiceInterface,
) *PlanController {
	return &PlanController{
		routeService:    routeService,
		scheduleService: scheduleService,
		geoService:      geoService,
	}
}

// OptimizeRoute godoc
// @Summary Compute a low-cost visiting order
// @Description Start location, when given, is pinned to position 0. An
// @Description infeasible optimization returns the input order with feasible=false.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.OptimizeRouteRequest true "Places"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/optimize [post]
func (p *PlanController) OptimizeRoute(c *gin.Context) {
	var req request_models.OptimizeRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	places, fixedStart := placesWithStart(req.Places, req.StartLocation)
	if len(places) < 2 {
		utils.RespondError(c, http.StatusBadRequest, "At least two places are required")
		return
	}

	order, err := p.routeService.Solve(c.Request.Context(), places, fixedStart, req.Mode)
	feasible := true
	if err != nil {
		if !errors.Is(err, utils.ErrOptimizationInfeasible) {
			utils.HandleServiceError(c, err)
			return
		}
		// soft failure: identity order, flagged
		feasible = false
	}

	resp := response_models.RouteOrderResponse{
		Order:                order.Places,
		TotalDurationMinutes: int(order.TotalDuration.Minutes()),
		Feasible:             feasible,
	}

	if feasible {
		for i := 0; i+1 < len(order.Places); i++ {
			leg, legErr := p.geoService.Route(c.Request.Context(), order.Places[i], order.Places[i+1], req.Mode, time.Now())
			if legErr != nil {
				resp.Legs = append(resp.Legs, response_models.RouteLegResponse{
					From: order.Places[i], To: order.Places[i+1], Estimated: true,
				})
				continue
			}
			resp.Legs = append(resp.Legs, response_models.RouteLegResponse{
				From:            order.Places[i],
				To:              order.Places[i+1],
				DurationText:    leg.DurationText,
				DistanceText:    leg.DistanceText,
				TransportDetail: joinSteps(leg.Steps),
				Estimated:       leg.Estimated,
			})
		}
	}

	utils.RespondSuccess(c, resp, "Route optimized successfully")
}

// PlanItinerary godoc
// @Summary Build a multi-day timeline
// @Description Day 1 honors start_time; later days reset to the canonical morning start.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.PlanItineraryRequest true "Draft items grouped by day"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/itinerary [post]
func (p *PlanController) PlanItinerary(c *gin.Context) {
	var req request_models.PlanItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := p.scheduleService.Plan(c.Request.Context(), req.Items, req.StartTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	days := 0
	for _, item := range itinerary {
		if item.Day > days {
			days = item.Day
		}
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Days:  days,
		Items: itinerary,
	}, "Itinerary planned successfully")
}

// placesWithStart pins start at position 0 whenever it is given: an
// entry already in the list is moved to the front, anything else is
// prepended. The returned flag tells the solver to hold that position.
func placesWithStart(places []string, start string) ([]string, bool) {
	if start == "" {
		return places, false
	}

	out := make([]string, 0, len(places)+1)
	out = append(out, start)
	for _, p := range places {
		if p != start {
			out = append(out, p)
		}
	}
	return out, true
}

func joinSteps(steps []string) string {
	out := ""
	for i, s := range steps {
		if i > 0 {
			out += " -> "
		}
		out += s
	}
	return out
}
