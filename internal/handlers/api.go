package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
)

type APIHandler struct {
	assistant interfaces.AssistantService
	schemes   interfaces.SchemeService
	logger    arbor.ILogger
}

func NewAPIHandler(assistant interfaces.AssistantService, schemes interfaces.SchemeService) *APIHandler {
	return &APIHandler{
		assistant: assistant,
		schemes:   schemes,
		logger:    common.GetLogger(),
	}
}

// VersionHandler returns version information
func (h *APIHandler) VersionHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version":    common.GetVersion(),
		"build":      common.GetBuild(),
		"git_commit": common.GetGitCommit(),
	})
}

// HealthHandler returns health check status
func (h *APIHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	status := "ok"
	if err := h.assistant.HealthCheck(r.Context()); err != nil {
		status = "degraded"
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":       status,
		"scheme_count": h.schemes.Count(),
	})
}

// NotFoundHandler handles 404 errors with JSON response
func (h *APIHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusNotFound, map[string]interface{}{
		"error":   "Not Found",
		"path":    r.URL.Path,
		"message": "The requested endpoint does not exist",
	})
}
