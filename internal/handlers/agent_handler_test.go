package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// validatingAgents validates inputs and returns canned outputs, standing in
// for the model-backed agent service.
type validatingAgents struct {
	schemesOutput *models.GovernmentSchemesOutput
	err           error
}

func (m *validatingAgents) MarketAnalysis(_ context.Context, input *models.MarketAnalysisInput) (*models.MarketAnalysisOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return nil, m.err
}

func (m *validatingAgents) RecommendCrops(_ context.Context, input *models.CropRecommenderInput) (*models.CropRecommenderOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return nil, m.err
}

func (m *validatingAgents) DiagnoseCrop(_ context.Context, input *models.CropDiagnosisInput) (*models.CropDiagnosisOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return nil, m.err
}

func (m *validatingAgents) IrrigationSchedule(_ context.Context, input *models.IrrigationSchedulerInput) (*models.IrrigationSchedulerOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return nil, m.err
}

func (m *validatingAgents) FindSchemes(_ context.Context, input *models.GovernmentSchemesInput) (*models.GovernmentSchemesOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return m.schemesOutput, m.err
}

func (m *validatingAgents) PostHarvestAdvice(_ context.Context, input *models.PostHarvestInput) (*models.PostHarvestOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return nil, m.err
}

func (m *validatingAgents) CurrentCropAdvice(_ context.Context, input *models.CurrentCropAgentInput) (*models.CurrentCropAgentOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}
	return nil, m.err
}

func (m *validatingAgents) RouterTools() []interfaces.AgentDescriptor { return nil }

func (m *validatingAgents) ExecuteTool(context.Context, string, map[string]any) (any, error) {
	return nil, nil
}

func TestAgentHandlerValidationFailureReturns400(t *testing.T) {
	handler := NewAgentHandler(&validatingAgents{})

	// Query below the 10-character minimum
	body := `{"query": "short"}`
	req := httptest.NewRequest("POST", "/api/tools/market-analysis", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.MarketAnalysisHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Validation failed", payload["error"])
	assert.NotEmpty(t, payload["details"])
}

func TestAgentHandlerSuccessReturns200(t *testing.T) {
	agents := &validatingAgents{
		schemesOutput: &models.GovernmentSchemesOutput{
			Schemes: []models.SchemeSummary{},
			Summary: "Nothing found.",
		},
	}
	handler := NewAgentHandler(agents)

	body := `{"query": "crop insurance"}`
	req := httptest.NewRequest("POST", "/api/tools/government-schemes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.GovernmentSchemesHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var output models.GovernmentSchemesOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.Equal(t, "Nothing found.", output.Summary)
}

func TestAgentHandlerGenerationFailureReturns500(t *testing.T) {
	agents := &validatingAgents{err: &models.GenerationError{Agent: "market analysis"}}
	handler := NewAgentHandler(agents)

	body := `{"query": "what is the price of onions today"}`
	req := httptest.NewRequest("POST", "/api/tools/market-analysis", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.MarketAnalysisHandler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload["details"], "market analysis")
}

func TestAgentHandlerRejectsBadJSON(t *testing.T) {
	handler := NewAgentHandler(&validatingAgents{})

	req := httptest.NewRequest("POST", "/api/tools/crop-recommender", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	handler.CropRecommenderHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
