package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
)

// AgentHandler exposes each specialized agent as a POST endpoint. The request
// body is the agent's input model; the response is its structured output.
type AgentHandler struct {
	agents interfaces.AgentService
	logger arbor.ILogger
}

func NewAgentHandler(agents interfaces.AgentService) *AgentHandler {
	return &AgentHandler{
		agents: agents,
		logger: common.GetLogger(),
	}
}

// MarketAnalysisHandler handles POST /api/tools/market-analysis
func (h *AgentHandler) MarketAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.MarketAnalysisInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.MarketAnalysis(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Market analysis failed")
		WriteAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, output)
}

// CropRecommenderHandler handles POST /api/tools/crop-recommender
func (h *AgentHandler) CropRecommenderHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.CropRecommenderInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.RecommendCrops(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Crop recommendation failed")
		WriteAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, output)
}

// GovernmentSchemesHandler handles POST /api/tools/government-schemes
func (h *AgentHandler) GovernmentSchemesHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.GovernmentSchemesInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.FindSchemes(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Scheme search failed")
		WriteAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, output)
}

// IrrigationSchedulerHandler handles POST /api/tools/irrigation-scheduler
func (h *AgentHandler) IrrigationSchedulerHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.IrrigationSchedulerInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.IrrigationSchedule(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Irrigation scheduling failed")
		WriteAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, output)
}

// PostHarvestHandler handles POST /api/tools/post-harvest
func (h *AgentHandler) PostHarvestHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.PostHarvestInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.PostHarvestAdvice(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Post-harvest advice failed")
		WriteAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, output)
}

// CropAgentHandler handles POST /api/tools/crop-agent
func (h *AgentHandler) CropAgentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	input := &models.CurrentCropAgentInput{}
	if !DecodeBody(w, r, input) {
		return
	}

	output, err := h.agents.CurrentCropAdvice(r.Context(), input)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Crop-context advice failed")
		WriteAgentError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, output)
}
