package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"dongseon/internal/models/request_models"
	"dongseon/internal/models/response_models"
	"dongseon/internal/services"
	"dongseon/pkg/utils"
)

type VenuesController struct {
	venueService services.VenueServiceInterface
}

func NewVenuesController(venueService services.VenueServiceInterface) *VenuesController {
	return &VenuesController{
		venueService: venueService,
	}
}

// SearchVenues godoc
// @Summary Search venue candidates
// @Description Selection pipeline: resolve regions from the query, retrieve, filter
// @Tags Venues
// @Produce json
// @Param q query string true "Search query"
// @Param category query string false "Category filter (canonical value or free text)"
// @Param exclude query string false "Comma-separated venue names to exclude"
// @Param k query int false "Result count (default: 5)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /venues/search [get]
func (v *VenuesController) SearchVenues(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	k, err := strconv.Atoi(c.DefaultQuery("k", "5"))
	if err != nil || k < 1 || k > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid k (must be 1-50)")
		return
	}

	var excludeNames []string
	if raw := c.Query("exclude"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				excludeNames = append(excludeNames, name)
			}
		}
	}

	candidates, err := v.venueService.SearchCandidates(c.Request.Context(), query, c.Query("category"), excludeNames, k)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.VenueResponse, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, response_models.VenueResponseFrom(cand))
	}
	utils.RespondSuccess(c, out, "Venues fetched successfully")
}

// GetVenueById godoc
// @Summary Get a venue by id
// @Tags Venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /venues/{id} [get]
func (v *VenuesController) GetVenueById(c *gin.Context) {
	venue, err := v.venueService.GetVenueByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.VenueResponseFrom(*venue), "Venue fetched successfully")
}

// ListVenues godoc
// @Summary List venues
// @Tags Venues
// @Produce json
// @Param region query string false "Region filter"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 5, max: 100)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /venues [get]
func (v *VenuesController) ListVenues(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "5"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	venues, err := v.venueService.ListVenues(c.Request.Context(), c.Query("region"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.VenueResponse, 0, len(venues))
	for _, venue := range venues {
		out = append(out, response_models.VenueResponseFrom(venue))
	}
	utils.RespondSuccess(c, out, "Venues fetched successfully")
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags Venues
// @Accept json
// @Produce json
// @Param request body request_models.CreateVenueRequest true "Venue"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /venues [post]
func (v *VenuesController) CreateVenue(c *gin.Context) {
	var req request_models.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := v.venueService.CreateVenue(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"id": id}, "Venue created successfully")
}
