package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// MarketAnalysis answers a market question with structured price, trend, and
// supply/demand intelligence for the named commodity.
func (s *Service) MarketAnalysis(ctx context.Context, input *models.MarketAnalysisInput) (*models.MarketAnalysisOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("commodity", input.Commodity).
		Str("location", input.Location).
		Msg("Running market analysis agent")

	var b strings.Builder
	b.WriteString("You are an expert agricultural market analyst for Indian farmers. ")
	b.WriteString("Analyze the market for the farmer's question and produce a complete structured report. ")
	b.WriteString("Prices are in INR per quintal unless the commodity is customarily traded otherwise. ")
	b.WriteString("Be realistic and specific; when exact figures are uncertain, give plausible estimates for the region and season and say so in the summary.\n\n")

	fmt.Fprintf(&b, "Farmer's question: %s\n", input.Query)
	if input.Commodity != "" {
		fmt.Fprintf(&b, "Commodity: %s\n", input.Commodity)
	}
	if input.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", input.Location)
	}
	if input.Market != "" {
		fmt.Fprintf(&b, "Market: %s\n", input.Market)
	}
	if input.UserNotes != "" {
		fmt.Fprintf(&b, "Additional notes from the farmer: %s\n", input.UserNotes)
	}
	b.WriteString("\n")
	b.WriteString(languageLine(input.Language))

	output := &models.MarketAnalysisOutput{}
	if err := s.generateStructured(ctx, "market analysis", b.String(), marketAnalysisOutputSchema(), nil, output); err != nil {
		return nil, err
	}

	return output, nil
}
