package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// IrrigationSchedule produces a dated watering plan for a crop over the
// requested term. Rainfall and soil type are backfilled from the
// environmental lookup when missing.
func (s *Service) IrrigationSchedule(ctx context.Context, input *models.IrrigationSchedulerInput) (*models.IrrigationSchedulerOutput, error) {
	if err := schemas.Validate(input); err != nil {
		return nil, err
	}

	if input.Rainfall == nil || input.SoilType == "" {
		record, err := s.env.Lookup(ctx, input.Location)
		if err != nil {
			return nil, &models.LocationDataError{Location: input.Location}
		}
		if input.Rainfall == nil {
			input.Rainfall = &record.Rainfall
		}
		if input.SoilType == "" {
			input.SoilType = record.SoilType
		}
		s.logger.Debug().
			Str("location", input.Location).
			Msg("Backfilled environmental data for irrigation schedule")
	}

	s.logger.Info().
		Str("location", input.Location).
		Str("crop", input.SelectedCrop).
		Int("term_months", input.TermPeriod).
		Msg("Running irrigation scheduler agent")

	today := time.Now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString("You are an expert irrigation planner for Indian farms. ")
	b.WriteString("Create a dated irrigation schedule for the crop and conditions below. ")
	fmt.Fprintf(&b, "Today's date is %s; every schedule entry must fall on or after this date. ", today)
	b.WriteString("Space the events according to the crop's growth stages, the soil's water retention, and the expected rainfall. ")
	b.WriteString("Prefer early morning or late evening watering windows.\n\n")

	fmt.Fprintf(&b, "Crop: %s\n", input.SelectedCrop)
	fmt.Fprintf(&b, "Location: %s\n", input.Location)
	fmt.Fprintf(&b, "Land: %s %s\n", input.LandSize, input.LandUnit)
	fmt.Fprintf(&b, "Schedule term: %d months\n", input.TermPeriod)
	fmt.Fprintf(&b, "Annual rainfall: %.0f mm\n", *input.Rainfall)
	fmt.Fprintf(&b, "Soil type: %s\n", input.SoilType)
	if input.SoilPh != nil {
		fmt.Fprintf(&b, "Soil pH: %.1f\n", *input.SoilPh)
	}
	if input.LastCrop != "" {
		fmt.Fprintf(&b, "Previous crop: %s\n", input.LastCrop)
	}
	b.WriteString("\n")
	b.WriteString(languageLine(input.Language))

	output := &models.IrrigationSchedulerOutput{}
	if err := s.generateStructured(ctx, "irrigation scheduler", b.String(), irrigationSchedulerOutputSchema(), nil, output); err != nil {
		return nil, err
	}

	return output, nil
}
