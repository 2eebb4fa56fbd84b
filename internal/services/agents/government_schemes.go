package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// FindSchemes summarizes government schemes relevant to a query. The agent
// works strictly from the bundled scheme repository: the repository is
// searched first, only matched records are given to the model, and any
// scheme the model names outside that set is discarded. Zero matches
// short-circuits without a model call.
func (s *Service) FindSchemes(ctx context.Context, input *models.GovernmentSchemesInput) (*models.GovernmentSchemesOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	matches := s.schemes.Search(input.Query)
	s.logger.Info().
		Str("query", input.Query).
		Int("match_count", len(matches)).
		Msg("Running government schemes agent")

	if len(matches) == 0 {
		return &models.GovernmentSchemesOutput{
			Schemes: []models.SchemeSummary{},
			Summary: fmt.Sprintf("No government schemes matching %q were found. Try a broader topic such as insurance, credit, or irrigation.", input.Query),
		}, nil
	}

	records, err := json.Marshal(matches)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scheme records: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an assistant helping Indian farmers understand government schemes. ")
	b.WriteString("Summarize each scheme in the JSON records below for the farmer's query. ")
	b.WriteString("Use ONLY the information in the records; do not add schemes or facts from outside them. ")
	b.WriteString("For sourceLink, use the application URL found in the record's 'How to Apply' section.\n\n")
	fmt.Fprintf(&b, "Farmer's query: %s\n\n", input.Query)
	b.WriteString("Scheme records:\n```json\n")
	b.Write(records)
	b.WriteString("\n```\n\n")
	b.WriteString(languageLine(input.Language))

	output := &models.GovernmentSchemesOutput{}
	if err := s.generateStructured(ctx, "government schemes", b.String(), governmentSchemesOutputSchema(), nil, output); err != nil {
		return nil, err
	}

	// Drop anything the model invented beyond the matched records
	allowed := make(map[string]bool, len(matches))
	for _, record := range matches {
		allowed[strings.ToLower(record.SchemeName)] = true
	}
	kept := output.Schemes[:0]
	for _, summary := range output.Schemes {
		if allowed[strings.ToLower(summary.SchemeName)] {
			kept = append(kept, summary)
		} else {
			s.logger.Warn().
				Str("scheme", summary.SchemeName).
				Msg("Discarding scheme not present in repository matches")
		}
	}
	output.Schemes = kept

	return output, nil
}
