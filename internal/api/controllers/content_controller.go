package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"locallens/internal/models/response_models"
	"locallens/internal/services"
	"locallens/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetStoriesByLocation godoc
// @Summary Get local stories for a location
// @Tags Content
// @Produce json
// @Param location query string true "Planning location, e.g. Visakhapatnam"
// @Success 200 {object} utils.APIResponse
// @Router /stories [get]
func (ct *ContentController) GetStoriesByLocation(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "location query parameter is required")
		return
	}

	stories, err := ct.contentService.GetStoriesByLocation(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stories, "Stories fetched successfully")
}

// GetStoryByID godoc
// @Summary Get a single local story
// @Tags Content
// @Produce json
// @Param id path string true "Story ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /stories/{id} [get]
func (ct *ContentController) GetStoryByID(c *gin.Context) {
	story, err := ct.contentService.GetStoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, story, "Story fetched successfully")
}

// GetRecommendationsByLocation godoc
// @Summary Get local recommendations for a location
// @Tags Content
// @Produce json
// @Param location query string true "Planning location"
// @Success 200 {object} utils.APIResponse
// @Router /recommendations [get]
func (ct *ContentController) GetRecommendationsByLocation(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		utils.RespondError(c, http.StatusBadRequest, "location query parameter is required")
		return
	}

	recs, err := ct.contentService.GetRecommendationsByLocation(c.Request.Context(), location)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recs, "Recommendations fetched successfully")
}

// CreateStory godoc
// @Summary Create a local story
// @Tags Content
// @Accept json
// @Produce json
// @Param request body response_models.LocalStory true "Story payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /stories [post]
func (ct *ContentController) CreateStory(c *gin.Context) {
	var story response_models.LocalStory
	if err := c.ShouldBindJSON(&story); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.contentService.CreateStory(c.Request.Context(), story); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Story created successfully")
}

// CreateRecommendation godoc
// @Summary Create a local recommendation
// @Tags Content
// @Accept json
// @Produce json
// @Param request body response_models.LocalRecommendation true "Recommendation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /recommendations [post]
func (ct *ContentController) CreateRecommendation(c *gin.Context) {
	var rec response_models.LocalRecommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.contentService.CreateRecommendation(c.Request.Context(), rec); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Recommendation created successfully")
}
