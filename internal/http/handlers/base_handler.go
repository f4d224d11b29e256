// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roam/internal/llm"
	"roam/internal/modules/planner"
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

// writePlannerError maps service errors onto HTTP statuses. A failing
// upstream model call is the provider's fault, not the caller's, so it maps
// to 502 rather than 4xx.
func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, llm.ErrProviderUnavailable):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrProviderCall):
		writeError(c, http.StatusBadGateway, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
