package agents

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// Tool names offered to the conversational router
const (
	ToolMarketAnalysis      = "getMarketAnalysis"
	ToolCropRecommendations = "getCropRecommendations"
	ToolGovernmentSchemes   = "findGovernmentSchemes"
)

// Service implements interfaces.AgentService. Each agent performs exactly one
// structured generation call; environmental backfill happens before the call.
type Service struct {
	llm     interfaces.LLMService
	env     interfaces.EnvironmentService
	schemes interfaces.SchemeService
	logger  arbor.ILogger
}

// NewService creates the agent service
func NewService(
	llm interfaces.LLMService,
	env interfaces.EnvironmentService,
	schemeService interfaces.SchemeService,
	logger arbor.ILogger,
) *Service {
	return &Service{
		llm:     llm,
		env:     env,
		schemes: schemeService,
		logger:  logger,
	}
}

// RouterTools lists the agents the router may invoke for a voice query
func (s *Service) RouterTools() []interfaces.AgentDescriptor {
	return []interfaces.AgentDescriptor{
		{
			Name:        ToolMarketAnalysis,
			Description: "Get current market prices, trends, supply and demand analysis for a crop or commodity. Use for questions about selling, prices, or mandi rates.",
			Parameters:  marketAnalysisToolParams(),
		},
		{
			Name:        ToolCropRecommendations,
			Description: "Recommend crops to grow based on location and conditions. Use when the farmer asks what to plant or grow. Requires a location.",
			Parameters:  cropRecommenderToolParams(),
		},
		{
			Name:        ToolGovernmentSchemes,
			Description: "Find Indian government agricultural schemes, subsidies, insurance, and credit programs relevant to a topic.",
			Parameters:  governmentSchemesToolParams(),
		},
	}
}

// ExecuteTool runs the named agent with model-supplied arguments. Arguments
// are re-validated against the agent's input model before execution.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case ToolMarketAnalysis:
		input := &models.MarketAnalysisInput{}
		if err := decodeArgs(args, input); err != nil {
			return nil, err
		}
		return s.MarketAnalysis(ctx, input)
	case ToolCropRecommendations:
		input := &models.CropRecommenderInput{}
		if err := decodeArgs(args, input); err != nil {
			return nil, err
		}
		return s.RecommendCrops(ctx, input)
	case ToolGovernmentSchemes:
		input := &models.GovernmentSchemesInput{}
		if err := decodeArgs(args, input); err != nil {
			return nil, err
		}
		return s.FindSchemes(ctx, input)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// decodeArgs converts model-supplied tool arguments into a typed input
func decodeArgs(args map[string]any, input any) error {
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to encode tool arguments: %w", err)
	}
	if err := json.Unmarshal(data, input); err != nil {
		return fmt.Errorf("failed to decode tool arguments: %w", err)
	}
	return nil
}

// generateStructured performs one schema-constrained generation call and
// decodes the result into out. An empty or tool-call result is a
// GenerationError for the named agent.
func (s *Service) generateStructured(ctx context.Context, agent, prompt string, schema *genai.Schema, media []interfaces.MediaPart, out any) error {
	result, err := s.llm.Generate(ctx, &interfaces.GenerateRequest{
		Messages:     []interfaces.Message{{Role: "user", Content: prompt}},
		OutputSchema: schema,
		Media:        media,
	})
	if err != nil {
		return fmt.Errorf("%s agent generation failed: %w", agent, err)
	}

	if result.Kind != interfaces.ResultText {
		return &models.GenerationError{Agent: agent}
	}

	if err := result.DecodeJSON(out); err != nil {
		s.logger.Warn().Err(err).Str("agent", agent).Msg("Structured output did not decode")
		return &models.GenerationError{Agent: agent}
	}

	if err := schemas.Validate(out); err != nil {
		s.logger.Warn().Err(err).Str("agent", agent).Msg("Structured output failed validation")
		return &models.GenerationError{Agent: agent}
	}

	return nil
}

// languageLine returns the response-language instruction for a prompt
func languageLine(code string) string {
	return fmt.Sprintf("Respond in %s.", common.LanguageName(code))
}

// decodeDataURI splits a "data:<mimetype>;base64,<data>" URI into a media part
func decodeDataURI(uri string) (interfaces.MediaPart, error) {
	if !strings.HasPrefix(uri, "data:") {
		return interfaces.MediaPart{}, fmt.Errorf("not a data URI")
	}

	comma := strings.Index(uri, ",")
	if comma < 0 {
		return interfaces.MediaPart{}, fmt.Errorf("malformed data URI: missing payload separator")
	}

	header := uri[len("data:"):comma]
	mimeType := header
	if semi := strings.Index(header, ";"); semi >= 0 {
		mimeType = header[:semi]
		if !strings.Contains(header[semi:], "base64") {
			return interfaces.MediaPart{}, fmt.Errorf("data URI payload is not base64 encoded")
		}
	}
	if mimeType == "" {
		mimeType = "text/plain"
	}

	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return interfaces.MediaPart{}, fmt.Errorf("failed to decode data URI payload: %w", err)
	}

	return interfaces.MediaPart{MIMEType: mimeType, Data: data}, nil
}
