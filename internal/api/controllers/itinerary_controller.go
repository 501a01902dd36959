package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"locallens/internal/models/request_models"
	"locallens/internal/services"
	"locallens/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a sightseeing itinerary
// @Description Build a multi-day plan for the authenticated user from their saved preferences and current position
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Generation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 412 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}

// GetCurrentItinerary godoc
// @Summary Get the latest itinerary
// @Description Fetch the most recently generated itinerary for the authenticated user
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/current [get]
func (i *ItineraryController) GetCurrentItinerary(c *gin.Context) {
	userId := c.GetString("user_id")

	itinerary, err := i.itineraryService.GetCurrentItinerary(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}
