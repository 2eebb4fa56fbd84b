package interfaces

import (
	"context"

	"google.golang.org/genai"

	"github.com/neervaani/neerhub/internal/models"
)

// AgentDescriptor describes one agent as a candidate tool for the router.
// Description is the intent-matching hint the model uses to choose a tool;
// Parameters validates the arguments the model supplies.
type AgentDescriptor struct {
	Name        string
	Description string
	Parameters  *genai.Schema
}

// AgentService exposes the specialized agents. Each typed method validates
// its input, builds the agent's prompt, performs one generation call, and
// validates the structured output. A missing required field is a
// *models.ValidationError; a model returning no usable output is a
// *models.GenerationError. Nothing is retried.
type AgentService interface {
	MarketAnalysis(ctx context.Context, input *models.MarketAnalysisInput) (*models.MarketAnalysisOutput, error)
	RecommendCrops(ctx context.Context, input *models.CropRecommenderInput) (*models.CropRecommenderOutput, error)
	DiagnoseCrop(ctx context.Context, input *models.CropDiagnosisInput) (*models.CropDiagnosisOutput, error)
	IrrigationSchedule(ctx context.Context, input *models.IrrigationSchedulerInput) (*models.IrrigationSchedulerOutput, error)
	FindSchemes(ctx context.Context, input *models.GovernmentSchemesInput) (*models.GovernmentSchemesOutput, error)
	PostHarvestAdvice(ctx context.Context, input *models.PostHarvestInput) (*models.PostHarvestOutput, error)
	CurrentCropAdvice(ctx context.Context, input *models.CurrentCropAgentInput) (*models.CurrentCropAgentOutput, error)

	// RouterTools lists the agents offered to the conversational router as
	// candidate tools.
	RouterTools() []AgentDescriptor

	// ExecuteTool runs the named agent with model-supplied arguments. The
	// arguments are validated against the agent's input schema before
	// execution; the result is the agent's structured output.
	ExecuteTool(ctx context.Context, name string, args map[string]any) (any, error)
}
