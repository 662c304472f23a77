package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
	"github.com/jenaralee/StoryStash/internal/validation"
)

type PreferencesController struct {
	store     store.PreferencesStore
	validator *validation.Validator
}

func NewPreferencesController(store store.PreferencesStore, v *validation.Validator) *PreferencesController {
	return &PreferencesController{store: store, validator: v}
}

// UpdatePreferencesRequest merges into the stored preferences; omitted
// fields keep their current value.
type UpdatePreferencesRequest struct {
	PreferredCategories  *[]string `json:"preferredCategories" validate:"omitempty,dive,category"`
	PreferredAgeRanges   *[]string `json:"preferredAgeRanges" validate:"omitempty,dive,agerange"`
	NotificationsEnabled *bool     `json:"notificationsEnabled"`
}

// GetPreferences handles GET /api/preferences
func (pc *PreferencesController) GetPreferences(c *gin.Context) {
	prefs, err := pc.store.GetUserPreferences(c.Request.Context(), GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "get preferences")
		return
	}
	if prefs == nil {
		prefs = entities.DefaultPreferences(GetUserID(c))
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /api/preferences
func (pc *PreferencesController) UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if !bindJSON(c, pc.validator, &req) {
		return
	}

	prefs, err := pc.store.UpdateUserPreferences(c.Request.Context(), GetUserID(c), entities.PreferencesUpdate{
		PreferredCategories:  req.PreferredCategories,
		PreferredAgeRanges:   req.PreferredAgeRanges,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		respondInternalError(c, err, "update preferences")
		return
	}
	c.JSON(http.StatusOK, prefs)
}
