package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dongseon/internal/models/response_models"
	"dongseon/internal/services"
	"dongseon/pkg/utils"
)

type RegionsController struct {
	regionService services.RegionServiceInterface
}

func NewRegionsController(regionService services.RegionServiceInterface) *RegionsController {
	return &RegionsController{
		regionService: regionService,
	}
}

// ListRegions godoc
// @Summary List canonical regions
// @Tags Regions
// @Produce json
// @Success 200 {object} response_models.RegionResponse
// @Router /regions [get]
func (r *RegionsController) ListRegions(c *gin.Context) {
	regions := r.regionService.ListAll()
	names := make([]string, 0, len(regions))
	for _, reg := range regions {
		names = append(names, string(reg))
	}
	utils.RespondSuccess(c, response_models.RegionResponse{Regions: names}, "Regions fetched successfully")
}

// ResolveRegions godoc
// @Summary Resolve free text to canonical regions
// @Description An empty result means the query carries no region constraint
// @Tags Regions
// @Produce json
// @Param q query string true "Free-text place or region mention"
// @Success 200 {object} response_models.RegionResponse
// @Failure 400 {object} utils.APIResponse
// @Router /regions/resolve [get]
func (r *RegionsController) ResolveRegions(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	resolved := r.regionService.Normalize(query)
	names := make([]string, 0, len(resolved))
	for _, reg := range resolved.Slice() {
		names = append(names, string(reg))
	}
	utils.RespondSuccess(c, response_models.RegionResponse{Regions: names}, "Regions resolved successfully")
}
