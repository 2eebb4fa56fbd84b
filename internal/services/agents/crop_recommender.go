package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// RecommendCrops produces at least three crop recommendations for a location.
// Temperature, humidity, and rainfall are backfilled from the environmental
// lookup when the farmer did not supply them.
func (s *Service) RecommendCrops(ctx context.Context, input *models.CropRecommenderInput) (*models.CropRecommenderOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	if input.Temperature == nil || input.Humidity == nil || input.Rainfall == nil {
		record, err := s.env.Lookup(ctx, input.Location)
		if err != nil {
			return nil, &models.LocationDataError{Location: input.Location}
		}
		if input.Temperature == nil {
			input.Temperature = &record.Temperature
		}
		if input.Humidity == nil {
			input.Humidity = &record.Humidity
		}
		if input.Rainfall == nil {
			input.Rainfall = &record.Rainfall
		}
		if input.SoilType == "" {
			input.SoilType = record.SoilType
		}
		s.logger.Debug().
			Str("location", input.Location).
			Msg("Backfilled environmental data for crop recommendation")
	}

	s.logger.Info().Str("location", input.Location).Msg("Running crop recommender agent")

	var b strings.Builder
	b.WriteString("You are an expert agronomist advising Indian farmers. ")
	b.WriteString("Recommend at least three crops suited to the conditions below, ordered from most to least suitable. ")
	b.WriteString("Ground every recommendation in the stated location, climate, and soil; include realistic yield, market, and costing figures in INR.\n\n")

	fmt.Fprintf(&b, "Location: %s\n", input.Location)
	fmt.Fprintf(&b, "Average temperature: %.1f C\n", *input.Temperature)
	fmt.Fprintf(&b, "Average humidity: %.1f%%\n", *input.Humidity)
	fmt.Fprintf(&b, "Annual rainfall: %.0f mm\n", *input.Rainfall)
	if input.SoilType != "" {
		fmt.Fprintf(&b, "Soil type: %s\n", input.SoilType)
	}
	if input.SoilPh != nil {
		fmt.Fprintf(&b, "Soil pH: %.1f\n", *input.SoilPh)
	}
	if input.LandSize != "" {
		fmt.Fprintf(&b, "Land size: %s\n", input.LandSize)
	}
	if input.UserGoal != "" {
		fmt.Fprintf(&b, "Farmer's goal: %s\n", input.UserGoal)
	}
	if input.LastCropGrown != "" {
		fmt.Fprintf(&b, "Last crop grown: %s (consider rotation benefits)\n", input.LastCropGrown)
	}
	if input.TermPeriod != nil {
		fmt.Fprintf(&b, "Planning horizon: %d months\n", *input.TermPeriod)
	}
	b.WriteString("\n")
	b.WriteString(languageLine(input.Language))

	var media []interfaces.MediaPart
	if input.SoilPhotoDataURI != "" {
		part, err := decodeDataURI(input.SoilPhotoDataURI)
		if err != nil {
			return nil, &models.ValidationError{Details: []models.FieldError{
				{Field: "soilPhotoDataUri", Rule: "datauri", Value: err.Error()},
			}}
		}
		media = append(media, part)
		b.WriteString("\nA photo of the soil is attached; factor its visible texture and color into the soil assessment.")
	}

	output := &models.CropRecommenderOutput{}
	if err := s.generateStructured(ctx, "crop recommender", b.String(), cropRecommenderOutputSchema(), media, output); err != nil {
		return nil, err
	}

	return output, nil
}
