// README: Maps handlers for place lookups and travel-time estimates.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roam/internal/maps"
)

// MapsHandler serves place lookups. Both services are optional; endpoints
// answer 503 when the maps API key is not configured.
type MapsHandler struct {
	places *maps.PlacesService
	routes *maps.RouteService
}

func NewMapsHandler(places *maps.PlacesService, routes *maps.RouteService) *MapsHandler {
	return &MapsHandler{places: places, routes: routes}
}

// Places handles GET /api/v1/planner/places?query=...
func (h *MapsHandler) Places(c *gin.Context) {
	if h.places == nil {
		writeError(c, http.StatusServiceUnavailable, "maps lookups are not configured")
		return
	}
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	places, err := h.places.Lookup(c.Request.Context(), query)
	if err != nil {
		writeError(c, http.StatusBadGateway, "places lookup failed")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"places": places})
}

// TravelTime handles GET /api/v1/planner/travel-time?origin=...&destination=...
func (h *MapsHandler) TravelTime(c *gin.Context) {
	if h.routes == nil {
		writeError(c, http.StatusServiceUnavailable, "maps lookups are not configured")
		return
	}
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	duration, distance, err := h.routes.TravelEstimate(c.Request.Context(), origin, destination)
	if err != nil {
		writeError(c, http.StatusBadGateway, "travel estimate failed")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"duration_minutes": int(duration.Minutes()),
		"distance":         distance,
	})
}
