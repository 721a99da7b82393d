// README: API surface; registers routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tollwatch/internal/http/handlers"
	"tollwatch/internal/http/middleware"
	"tollwatch/internal/modules/holiday"
	"tollwatch/internal/modules/preference"
	"tollwatch/internal/modules/toll"
)

type ServerDeps struct {
	Tolls       *toll.Service
	Holidays    *holiday.Service
	Preferences *preference.Service
	Logger      *zap.Logger
}

type Server struct {
	tolls    *toll.Service
	holidays *holiday.Service
	prefs    *preference.Service
	log      *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		tolls:    deps.Tolls,
		holidays: deps.Holidays,
		prefs:    deps.Preferences,
		log:      deps.Logger,
	}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(s.log), middleware.Recovery(s.log))

	tollHandler := handlers.NewTollHandler(s.tolls, s.prefs)
	r.GET("/api/tolls/current", tollHandler.Current)
	r.GET("/api/tolls/:id/current", tollHandler.CurrentOne)
	r.POST("/api/tolls/quote", tollHandler.Quote)
	r.GET("/api/vehicles", tollHandler.Vehicles)

	holidayHandler := handlers.NewHolidayHandler(s.holidays)
	r.GET("/api/holidays", holidayHandler.List)
	r.POST("/api/holidays/refresh", holidayHandler.Refresh)

	prefHandler := handlers.NewPreferenceHandler(s.prefs)
	r.GET("/api/preferences", prefHandler.Get)
	r.PUT("/api/preferences", prefHandler.Update)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
