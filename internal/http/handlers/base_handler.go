// README: Shared handler utilities (JSON helpers, error mapping, user scoping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwatch/internal/modules/preference"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePreferenceError(c *gin.Context, err error) {
	switch err {
	case preference.ErrUnknownVehicle, preference.ErrUnknownLocale:
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// userID scopes preferences per caller. The display is single-user by
// default; anything multi-user sets X-User-ID.
func userID(c *gin.Context) string {
	if v := c.GetHeader("X-User-ID"); v != "" {
		return v
	}
	return preference.DefaultUser
}
