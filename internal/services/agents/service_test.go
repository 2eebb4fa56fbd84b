package agents

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/services/environment"
	"github.com/neervaani/neerhub/internal/services/schemes"
)

// scriptedLLM returns canned results in order and records every request
type scriptedLLM struct {
	results  []*interfaces.GenerateResult
	requests []*interfaces.GenerateRequest
}

func (m *scriptedLLM) Generate(_ context.Context, request *interfaces.GenerateRequest) (*interfaces.GenerateResult, error) {
	i := len(m.requests)
	m.requests = append(m.requests, request)
	if i < len(m.results) {
		return m.results[i], nil
	}
	return &interfaces.GenerateResult{Kind: interfaces.ResultEmpty}, nil
}

func (m *scriptedLLM) HealthCheck(context.Context) error { return nil }
func (m *scriptedLLM) Close() error                      { return nil }

func newTestService(t *testing.T, llm *scriptedLLM) *Service {
	t.Helper()
	logger := arbor.NewLogger()
	schemeService, err := schemes.NewService(logger)
	require.NoError(t, err)
	return NewService(llm, environment.NewService(logger), schemeService, logger)
}

func textResult(t *testing.T, v any) *interfaces.GenerateResult {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return &interfaces.GenerateResult{Kind: interfaces.ResultText, Text: string(data)}
}

func validRecommenderOutput() *models.CropRecommenderOutput {
	crop := models.RecommendedCrop{
		CropName: "Soybean", CropDetails: "Kharif oilseed", SowingTime: "June",
		Dependency: "Monsoon onset", ResourceAllocation: "Moderate inputs",
		SoilRequirements: "Well drained loam", WeatherConditions: "Warm, humid",
		YieldPotential: "10 quintals per acre", MarketTrends: "Stable demand",
		Profitability: "Good", LocationSuitability: "Highly suitable",
		RegionalCropPerformance: "Strong in the region",
		PestAndDiseaseManagement: "Watch for girdle beetle", ClimateRisk: "Low",
		CostingAnalysis: models.CostingAnalysis{
			EstimatedYield: "10 quintals per acre", CostOfProduction: "INR 15,000",
			PostProductionCost: "INR 3,000", EstimatedSales: "INR 45,000",
			EstimatedProfit: "INR 27,000",
		},
	}
	return &models.CropRecommenderOutput{
		Recommendations: []models.RecommendedCrop{crop, crop, crop},
	}
}

func TestRecommendCropsBackfillsEnvironmentalData(t *testing.T) {
	llm := &scriptedLLM{results: []*interfaces.GenerateResult{
		textResult(t, validRecommenderOutput()),
	}}
	svc := newTestService(t, llm)

	output, err := svc.RecommendCrops(context.Background(), &models.CropRecommenderInput{
		Location: "Bangalore",
	})
	require.NoError(t, err)
	assert.Len(t, output.Recommendations, 3)

	require.Len(t, llm.requests, 1)
	prompt := llm.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "24.0 C")
	assert.Contains(t, prompt, "70.0%")
	assert.Contains(t, prompt, "970 mm")
	assert.Contains(t, prompt, "Red Loam")
}

func TestRecommendCropsKeepsProvidedValues(t *testing.T) {
	llm := &scriptedLLM{results: []*interfaces.GenerateResult{
		textResult(t, validRecommenderOutput()),
	}}
	svc := newTestService(t, llm)

	temp, humidity, rainfall := 31.0, 44.0, 610.0
	_, err := svc.RecommendCrops(context.Background(), &models.CropRecommenderInput{
		Location:    "Bangalore",
		Temperature: &temp,
		Humidity:    &humidity,
		Rainfall:    &rainfall,
	})
	require.NoError(t, err)

	prompt := llm.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "31.0 C")
	assert.Contains(t, prompt, "44.0%")
	assert.Contains(t, prompt, "610 mm")
}

func TestRecommendCropsRequiresLocation(t *testing.T) {
	llm := &scriptedLLM{}
	svc := newTestService(t, llm)

	_, err := svc.RecommendCrops(context.Background(), &models.CropRecommenderInput{})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, llm.requests)
}

func TestFindSchemesZeroMatchesSkipsModel(t *testing.T) {
	llm := &scriptedLLM{}
	svc := newTestService(t, llm)

	output, err := svc.FindSchemes(context.Background(), &models.GovernmentSchemesInput{
		Query: "quantum computing",
	})
	require.NoError(t, err)
	assert.Empty(t, output.Schemes)
	assert.NotEmpty(t, output.Summary)
	assert.Empty(t, llm.requests, "no generation call for an unmatched query")
}

func TestFindSchemesDiscardsFabricatedSchemes(t *testing.T) {
	fabricated := models.GovernmentSchemesOutput{
		Schemes: []models.SchemeSummary{
			{
				SchemeName: "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
				Details: "Crop insurance", Benefits: "Premium subsidy",
				Eligibility: "All farmers", ApplicationProcess: "Via bank or portal",
				DocumentsRequired: "Aadhaar, land records",
				SourceLink:        "https://pmfby.gov.in",
			},
			{
				SchemeName: "Completely Invented Scheme",
				Details: "Does not exist", Benefits: "None",
				Eligibility: "Nobody", ApplicationProcess: "N/A",
				DocumentsRequired: "N/A",
				SourceLink:        "https://example.com",
			},
		},
		Summary: "Found schemes for crop insurance.",
	}
	llm := &scriptedLLM{results: []*interfaces.GenerateResult{
		textResult(t, fabricated),
	}}
	svc := newTestService(t, llm)

	output, err := svc.FindSchemes(context.Background(), &models.GovernmentSchemesInput{
		Query: "insurance",
	})
	require.NoError(t, err)
	require.Len(t, output.Schemes, 1)
	assert.Equal(t, "Pradhan Mantri Fasal Bima Yojana (PMFBY)", output.Schemes[0].SchemeName)
}

func TestFindSchemesPromptCarriesOnlyMatchedRecords(t *testing.T) {
	llm := &scriptedLLM{results: []*interfaces.GenerateResult{
		textResult(t, models.GovernmentSchemesOutput{
			Schemes: []models.SchemeSummary{},
			Summary: "No details available.",
		}),
	}}
	svc := newTestService(t, llm)

	_, err := svc.FindSchemes(context.Background(), &models.GovernmentSchemesInput{
		Query: "irrigation",
	})
	require.NoError(t, err)

	require.Len(t, llm.requests, 1)
	prompt := llm.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "Krishi Sinchayee")
	assert.NotContains(t, prompt, "Fasal Bima")
}

func TestDiagnoseCropRequiresPhotos(t *testing.T) {
	llm := &scriptedLLM{}
	svc := newTestService(t, llm)

	_, err := svc.DiagnoseCrop(context.Background(), &models.CropDiagnosisInput{})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, llm.requests)
}

func TestDiagnoseCropAttachesPhotos(t *testing.T) {
	diagnosis := models.CropDiagnosisOutput{
		HealthStatus: models.HealthStatus{
			Status: "Healthy", Severity: "N/A", Summary: "Plant looks healthy",
		},
		DiseaseIdentification: models.DiseaseIdentification{
			Name: "N/A", Description: "No disease detected",
		},
		Symptoms: "None", Remedies: "None needed", Prevention: "Keep monitoring",
	}
	llm := &scriptedLLM{results: []*interfaces.GenerateResult{
		textResult(t, diagnosis),
	}}
	svc := newTestService(t, llm)

	photo := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes"))
	output, err := svc.DiagnoseCrop(context.Background(), &models.CropDiagnosisInput{
		PhotoDataURIs: []string{photo},
	})
	require.NoError(t, err)
	assert.Equal(t, "Healthy", output.HealthStatus.Status)

	require.Len(t, llm.requests, 1)
	require.Len(t, llm.requests[0].Media, 1)
	assert.Equal(t, "image/jpeg", llm.requests[0].Media[0].MIMEType)
	assert.Equal(t, []byte("fake-jpeg-bytes"), llm.requests[0].Media[0].Data)
}

func TestExecuteToolUnknownName(t *testing.T) {
	svc := newTestService(t, &scriptedLLM{})

	_, err := svc.ExecuteTool(context.Background(), "launchRocket", nil)
	assert.ErrorContains(t, err, "unknown tool")
}

func TestExecuteToolValidatesArguments(t *testing.T) {
	llm := &scriptedLLM{}
	svc := newTestService(t, llm)

	// getCropRecommendations without a location must fail validation
	_, err := svc.ExecuteTool(context.Background(), ToolCropRecommendations, map[string]any{})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, llm.requests)
}

func TestDecodeDataURI(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	part, err := decodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", part.MIMEType)
	assert.Equal(t, payload, part.Data)
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"http://example.com/image.png",
		"data:image/png;base64",
		"data:image/png,plain-not-base64-marker",
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, uri := range cases {
		_, err := decodeDataURI(uri)
		assert.Error(t, err, "uri %q should be rejected", uri)
	}
}
