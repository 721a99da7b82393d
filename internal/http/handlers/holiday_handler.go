// README: Holiday oracle endpoints: resolved date list and cache refresh.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tollwatch/internal/modules/holiday"
)

type HolidayHandler struct {
	holidays *holiday.Service
}

func NewHolidayHandler(holidays *holiday.Service) *HolidayHandler {
	return &HolidayHandler{holidays: holidays}
}

func (h *HolidayHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"dates": h.holidays.Dates(c.Request.Context())})
}

// Refresh drops the memoized date list and resolves the sources again.
func (h *HolidayHandler) Refresh(c *gin.Context) {
	h.holidays.Invalidate()
	dates := h.holidays.Dates(c.Request.Context())
	writeJSON(c, http.StatusOK, gin.H{"dates": len(dates)})
}
