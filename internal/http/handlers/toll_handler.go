// README: Toll endpoints: live list, single tunnel, pure quote, vehicle options.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tollwatch/internal/modules/preference"
	"tollwatch/internal/modules/toll"
)

type TollHandler struct {
	tolls *toll.Service
	prefs *preference.Service
}

func NewTollHandler(tolls *toll.Service, prefs *preference.Service) *TollHandler {
	return &TollHandler{tolls: tolls, prefs: prefs}
}

type currentResponse struct {
	Input   toll.Input  `json:"input"`
	Tunnels []toll.Item `json:"tunnels"`
}

func (h *TollHandler) Current(c *gin.Context) {
	user := userID(c)
	in, items := h.tolls.Current(c.Request.Context(), h.vehicle(c, user), h.locale(c, user))
	writeJSON(c, http.StatusOK, currentResponse{Input: in, Tunnels: items})
}

type currentOneResponse struct {
	Input  toll.Input `json:"input"`
	Tunnel toll.Item  `json:"tunnel"`
}

func (h *TollHandler) CurrentOne(c *gin.Context) {
	user := userID(c)
	in, item, err := h.tolls.CurrentOne(c.Request.Context(), c.Param("id"), h.vehicle(c, user), h.locale(c, user))
	if err == toll.ErrUnknownTunnel {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, currentOneResponse{Input: in, Tunnel: item})
}

type quoteRequest struct {
	Time            string `json:"time" binding:"required"`
	DayOfWeek       int    `json:"day_of_week"`
	IsPublicHoliday bool   `json:"is_public_holiday"`
	Vehicle         string `json:"vehicle"`
	Locale          string `json:"locale"`
}

// Quote evaluates a caller-supplied input instead of the live clock; the
// resolver is pure, so the same body always yields the same fares. Vehicle
// strings outside the enumeration deliberately degrade to private_car.
func (h *TollHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validHHMM(req.Time) {
		writeError(c, http.StatusBadRequest, "time must be HH:MM")
		return
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		writeError(c, http.StatusBadRequest, "day_of_week must be 0-6")
		return
	}
	locale := toll.LocaleZH
	if l, ok := toll.ParseLocale(req.Locale); ok {
		locale = l
	}
	in := toll.Input{
		Time:            req.Time,
		DayOfWeek:       time.Weekday(req.DayOfWeek),
		IsPublicHoliday: req.IsPublicHoliday,
		Vehicle:         toll.Vehicle(req.Vehicle),
	}
	writeJSON(c, http.StatusOK, currentResponse{Input: in, Tunnels: toll.List(in, locale)})
}

func (h *TollHandler) Vehicles(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"vehicles": toll.Vehicles(h.locale(c, userID(c)))})
}

// vehicle resolves the evaluation vehicle: explicit query parameter first,
// stored preference otherwise. Unknown values degrade to private_car.
func (h *TollHandler) vehicle(c *gin.Context, user string) toll.Vehicle {
	if raw := c.Query("vehicle"); raw != "" {
		if v, ok := toll.ParseVehicle(raw); ok {
			return v
		}
		return toll.VehiclePrivateCar
	}
	return h.prefs.Vehicle(c.Request.Context(), user)
}

func (h *TollHandler) locale(c *gin.Context, user string) string {
	if raw := c.Query("locale"); raw != "" {
		if l, ok := toll.ParseLocale(raw); ok {
			return l
		}
		return toll.LocaleZH
	}
	return h.prefs.Locale(c.Request.Context(), user)
}

func validHHMM(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	h := int(t[0]-'0')*10 + int(t[1]-'0')
	m := int(t[3]-'0')*10 + int(t[4]-'0')
	return h <= 23 && m <= 59
}
