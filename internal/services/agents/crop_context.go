package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// CurrentCropAdvice answers a question about a crop the farmer is currently
// growing. The agent may consult market analysis or the scheme repository as
// a tool; at most one tool runs per invocation, followed by a structured
// synthesis call.
func (s *Service) CurrentCropAdvice(ctx context.Context, input *models.CurrentCropAgentInput) (*models.CurrentCropAgentOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("crop", input.CropContext.CropName).
		Msg("Running crop-context agent")

	prompt := s.buildCropContextPrompt(input)

	first, err := s.llm.Generate(ctx, &interfaces.GenerateRequest{
		Messages: []interfaces.Message{{Role: "user", Content: prompt}},
		Tools: []interfaces.ToolDecl{
			{
				Name:        ToolMarketAnalysis,
				Description: "Get current market prices and trends for the crop. Use for price or selling questions.",
				Parameters:  marketAnalysisToolParams(),
			},
			{
				Name:        ToolGovernmentSchemes,
				Description: "Find government schemes relevant to a topic. Use for subsidy, insurance, or credit questions.",
				Parameters:  governmentSchemesToolParams(),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("crop-context agent generation failed: %w", err)
	}

	var toolContext string
	if first.Kind == interfaces.ResultToolCall {
		result, err := s.ExecuteTool(ctx, first.ToolCall.Name, first.ToolCall.Args)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tool result: %w", err)
		}
		toolContext = fmt.Sprintf("\n\nResult of the %s tool, use it to ground your answer:\n```json\n%s\n```", first.ToolCall.Name, encoded)
	}

	output := &models.CurrentCropAgentOutput{}
	if err := s.generateStructured(ctx, "crop-context", prompt+toolContext, currentCropAgentOutputSchema(), nil, output); err != nil {
		return nil, err
	}

	return output, nil
}

func (s *Service) buildCropContextPrompt(input *models.CurrentCropAgentInput) string {
	var b strings.Builder
	b.WriteString("You are an expert agronomist advising a farmer about a crop they are currently growing. ")
	b.WriteString("Answer the farmer's question directly in the summary, then break the advice into titled sections. ")
	b.WriteString("Choose each section's icon by topic: TrendingUp for market, Landmark for schemes, FlaskConical for nutrients, ")
	b.WriteString("ShieldAlert for pests and disease, Droplet for water, Info for general notes, Bot otherwise.\n\n")

	fmt.Fprintf(&b, "Crop: %s\n", input.CropContext.CropName)
	fmt.Fprintf(&b, "Field size: %s\n", input.CropContext.FieldSize)
	fmt.Fprintf(&b, "Location: %s\n", input.CropContext.Location)
	fmt.Fprintf(&b, "Sowing date: %s\n", input.CropContext.SowingDate)
	if input.CropContext.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", input.CropContext.AdditionalInfo)
	}
	fmt.Fprintf(&b, "\nFarmer's question: %s\n\n", input.Query)
	b.WriteString(languageLine(input.Language))
	return b.String()
}
