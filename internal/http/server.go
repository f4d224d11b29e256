// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roam/internal/http/handlers"
	"roam/internal/http/middleware"
	"roam/internal/maps"
	"roam/internal/modules/planner"
)

type ServerDeps struct {
	Planner *planner.Service
	Places  *maps.PlacesService
	Routes  *maps.RouteService
}

type Server struct {
	planner *planner.Service
	places  *maps.PlacesService
	routes  *maps.RouteService
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner: deps.Planner,
		places:  deps.Places,
		routes:  deps.Routes,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	plannerHandler := handlers.NewPlannerHandler(s.planner)
	mapsHandler := handlers.NewMapsHandler(s.places, s.routes)

	v1 := r.Group("/api/v1/planner")
	v1.GET("/models", plannerHandler.Models)
	v1.POST("/generate", plannerHandler.Generate)
	v1.POST("/refine", plannerHandler.Refine)
	v1.GET("/sessions/:id", plannerHandler.GetSession)
	v1.DELETE("/sessions/:id", plannerHandler.DeleteSession)
	v1.POST("/save", plannerHandler.Save)
	v1.POST("/config/model", plannerHandler.ConfigModel)
	v1.GET("/places", mapsHandler.Places)
	v1.GET("/travel-time", mapsHandler.TravelTime)

	return r
}
