package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// DiagnoseCrop examines one or more plant photos and returns a structured
// health assessment with remedies and prevention guidance.
func (s *Service) DiagnoseCrop(ctx context.Context, input *models.CropDiagnosisInput) (*models.CropDiagnosisOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	media := make([]interfaces.MediaPart, 0, len(input.PhotoDataURIs))
	for i, uri := range input.PhotoDataURIs {
		part, err := decodeDataURI(uri)
		if err != nil {
			return nil, &models.ValidationError{Details: []models.FieldError{
				{Field: fmt.Sprintf("photoDataUris[%d]", i), Rule: "datauri", Value: err.Error()},
			}}
		}
		media = append(media, part)
	}

	s.logger.Info().Int("photo_count", len(media)).Msg("Running crop diagnosis agent")

	var b strings.Builder
	b.WriteString("You are an expert plant pathologist. Examine the attached crop photos and diagnose the plant's condition. ")
	b.WriteString("Classify health status as Healthy, Infected, or At Risk with a severity of Low, Medium, High, or N/A. ")
	b.WriteString("If the plant is healthy, set the disease name to 'N/A' and describe maintenance practices instead of treatment. ")
	b.WriteString("Remedies must name specific treatments available to Indian farmers, organic options first.\n\n")

	if input.LandSize != "" {
		fmt.Fprintf(&b, "Affected land size: %s\n", input.LandSize)
	}
	if input.AdditionalNotes != "" {
		fmt.Fprintf(&b, "Farmer's notes: %s\n", input.AdditionalNotes)
	}
	b.WriteString("\n")
	b.WriteString(languageLine(input.Language))

	output := &models.CropDiagnosisOutput{}
	if err := s.generateStructured(ctx, "crop diagnosis", b.String(), cropDiagnosisOutputSchema(), media, output); err != nil {
		return nil, err
	}

	return output, nil
}
