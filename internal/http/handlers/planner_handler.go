// README: Planner handlers for generate/refine/session/save/config.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roam/internal/modules/planner"
)

// modelCallTimeout bounds one upstream completion; large itineraries can take
// a while on slower providers.
const modelCallTimeout = 120 * time.Second

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

type generateReq struct {
	Description string `json:"description"`
	Provider    string `json:"provider"`
	Model       string `json:"model"`
}

// Generate handles POST /api/v1/planner/generate.
func (h *PlannerHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), modelCallTimeout)
	defer cancel()

	res, err := h.planner.Generate(ctx, planner.GenerateInput{
		Description: req.Description,
		Provider:    req.Provider,
		Model:       req.Model,
	})
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

type refineReq struct {
	SessionID string `json:"session_id"`
	Feedback  string `json:"feedback"`
}

// Refine handles POST /api/v1/planner/refine.
func (h *PlannerHandler) Refine(c *gin.Context) {
	var req refineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeError(c, http.StatusBadRequest, "missing session_id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), modelCallTimeout)
	defer cancel()

	res, err := h.planner.Refine(ctx, planner.RefineInput{
		SessionID: req.SessionID,
		Feedback:  req.Feedback,
	})
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// GetSession handles GET /api/v1/planner/sessions/:id.
func (h *PlannerHandler) GetSession(c *gin.Context) {
	res, err := h.planner.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// DeleteSession handles DELETE /api/v1/planner/sessions/:id.
func (h *PlannerHandler) DeleteSession(c *gin.Context) {
	if err := h.planner.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"deleted": true})
}

type modelInfoDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type providerDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	DefaultModel string         `json:"default_model"`
	Models       []modelInfoDTO `json:"models"`
}

// Models handles GET /api/v1/planner/models; only providers with credentials
// present are listed.
func (h *PlannerHandler) Models(c *gin.Context) {
	providers := h.planner.Providers()
	out := make([]providerDTO, 0, len(providers))
	for _, p := range providers {
		models := make([]modelInfoDTO, 0, len(p.Models))
		for _, m := range p.Models {
			models = append(models, modelInfoDTO{ID: m.ID, Name: m.Name})
		}
		out = append(out, providerDTO{
			ID:           p.ID,
			Name:         p.Name,
			DefaultModel: p.DefaultModel,
			Models:       models,
		})
	}
	writeJSON(c, http.StatusOK, map[string]any{"providers": out})
}

type saveReq struct {
	SessionID string `json:"session_id"`
	Filename  string `json:"filename"`
}

// Save handles POST /api/v1/planner/save. The response confirms the filename;
// the write happens in the background.
func (h *PlannerHandler) Save(c *gin.Context) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		writeError(c, http.StatusBadRequest, "missing session_id")
		return
	}

	name, err := h.planner.Save(c.Request.Context(), req.SessionID, req.Filename)
	if err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusAccepted, map[string]any{"filename": name})
}

type configModelReq struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// ConfigModel handles POST /api/v1/planner/config/model; it switches the
// default provider/model pair for subsequent requests.
func (h *PlannerHandler) ConfigModel(c *gin.Context) {
	var req configModelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Provider) == "" {
		writeError(c, http.StatusBadRequest, "missing provider")
		return
	}

	if err := h.planner.SetDefaults(req.Provider, req.Model); err != nil {
		writePlannerError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"provider": req.Provider, "model": req.Model})
}
