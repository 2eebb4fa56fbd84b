package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
)

// DiagnosisHandler runs the crop diagnosis agent and manages the persisted
// diagnosis history. Photo payloads are never stored, only the structured
// diagnosis.
type DiagnosisHandler struct {
	agents  interfaces.AgentService
	storage interfaces.DiagnosisStorage
	logger  arbor.ILogger
}

func NewDiagnosisHandler(agents interfaces.AgentService, storage interfaces.DiagnosisStorage) *DiagnosisHandler {
	return &DiagnosisHandler{
		agents:  agents,
		storage: storage,
		logger:  common.GetLogger(),
	}
}

// DiagnoseHandler handles POST /api/tools/crop-diagnosis. A successful
// diagnosis is persisted before the response is written.
func (h *DiagnosisHandler) DiagnoseHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.CropDiagnosisInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.DiagnoseCrop(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Crop diagnosis failed")
		WriteAgentError(w, err)
		return
	}

	record := &models.DiagnosisRecord{
		Diagnosis:       *output,
		LandSize:        input.LandSize,
		AdditionalNotes: input.AdditionalNotes,
		UserID:          input.UserID,
		CreatedAt:       time.Now(),
	}
	if err := h.storage.SaveDiagnosis(record); err != nil {
		// The diagnosis itself succeeded; history loss is not fatal
		h.logger.Warn().Err(err).Msg("Failed to persist diagnosis record")
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":        record.ID,
		"diagnosis": output,
	})
}

// ListHandler handles GET /api/diagnoses
func (h *DiagnosisHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	records, err := h.storage.ListDiagnoses()
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to list diagnosis records")
		WriteError(w, http.StatusInternalServerError, "Failed to list diagnoses")
		return
	}
	if records == nil {
		records = []*models.DiagnosisRecord{}
	}
	WriteJSON(w, http.StatusOK, records)
}

// GetHandler handles GET /api/diagnoses/{id}
func (h *DiagnosisHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/diagnoses/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Diagnosis ID is required")
		return
	}

	record, err := h.storage.GetDiagnosis(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Diagnosis not found")
		return
	}
	WriteJSON(w, http.StatusOK, record)
}
