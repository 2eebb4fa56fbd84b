package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// PostHarvestAdvice produces the post-harvest guidance package for a crop the
// farmer is currently growing.
func (s *Service) PostHarvestAdvice(ctx context.Context, input *models.PostHarvestInput) (*models.PostHarvestOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("crop", input.CropContext.CropName).
		Str("location", input.CropContext.Location).
		Msg("Running post-harvest agent")

	var b strings.Builder
	b.WriteString("You are an expert in post-harvest management for Indian agriculture. ")
	b.WriteString("Give practical, region-appropriate advice for the crop below covering storage, transportation, ")
	b.WriteString("market linkages, value addition, pricing, quality control, handling, and waste management. ")
	b.WriteString("Name concrete options a smallholder farmer can actually use (FPOs, e-NAM, local mandis, cold storage). ")
	b.WriteString("All financial figures in INR.\n\n")

	fmt.Fprintf(&b, "Crop: %s\n", input.CropContext.CropName)
	fmt.Fprintf(&b, "Field size: %s\n", input.CropContext.FieldSize)
	fmt.Fprintf(&b, "Location: %s\n", input.CropContext.Location)
	fmt.Fprintf(&b, "Sowing date: %s\n", input.CropContext.SowingDate)
	if input.CropContext.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", input.CropContext.AdditionalInfo)
	}
	if input.EstimatedYield != "" {
		fmt.Fprintf(&b, "Estimated yield: %s\n", input.EstimatedYield)
	}
	b.WriteString("\n")
	b.WriteString(languageLine(input.Language))

	output := &models.PostHarvestOutput{}
	if err := s.generateStructured(ctx, "post-harvest", b.String(), postHarvestOutputSchema(), nil, output); err != nil {
		return nil, err
	}

	return output, nil
}
