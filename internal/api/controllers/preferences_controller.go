package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"locallens/internal/models/request_models"
	"locallens/internal/services"
	"locallens/pkg/utils"
)

type PreferencesController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferencesController(preferenceService services.PreferenceServiceInterface) *PreferencesController {
	return &PreferencesController{
		preferenceService: preferenceService,
	}
}

// SavePreferences godoc
// @Summary Save travel preferences
// @Description Store the authenticated user's questionnaire answers, replacing any previous ones
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.SavePreferencesRequest true "Preferences payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /preferences [put]
func (p *PreferencesController) SavePreferences(c *gin.Context) {
	var req request_models.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	if err := p.preferenceService.SavePreferences(c.Request.Context(), userId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Preferences saved successfully")
}

// GetPreferences godoc
// @Summary Get travel preferences
// @Description Fetch the authenticated user's saved preferences, or an empty set if never saved
// @Tags Preferences
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /preferences [get]
func (p *PreferencesController) GetPreferences(c *gin.Context) {
	userId := c.GetString("user_id")

	prefs, err := p.preferenceService.GetPreferences(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prefs, "Preferences fetched successfully")
}
