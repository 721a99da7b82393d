// README: Preference endpoints for stored vehicle and locale.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwatch/internal/modules/preference"
)

type PreferenceHandler struct {
	prefs *preference.Service
}

func NewPreferenceHandler(prefs *preference.Service) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

type preferencesResponse struct {
	Vehicle string `json:"vehicle"`
	Locale  string `json:"locale"`
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	user := userID(c)
	ctx := c.Request.Context()
	writeJSON(c, http.StatusOK, preferencesResponse{
		Vehicle: string(h.prefs.Vehicle(ctx, user)),
		Locale:  h.prefs.Locale(ctx, user),
	})
}

type updatePreferencesRequest struct {
	Vehicle string `json:"vehicle"`
	Locale  string `json:"locale"`
}

// Update sets whichever fields the body carries; absent fields keep their
// stored value.
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user := userID(c)
	ctx := c.Request.Context()
	if req.Vehicle != "" {
		if err := h.prefs.SetVehicle(ctx, user, req.Vehicle); err != nil {
			writePreferenceError(c, err)
			return
		}
	}
	if req.Locale != "" {
		if err := h.prefs.SetLocale(ctx, user, req.Locale); err != nil {
			writePreferenceError(c, err)
			return
		}
	}
	writeJSON(c, http.StatusOK, preferencesResponse{
		Vehicle: string(h.prefs.Vehicle(ctx, user)),
		Locale:  h.prefs.Locale(ctx, user),
	})
}
