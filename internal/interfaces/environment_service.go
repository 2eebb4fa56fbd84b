package interfaces

import (
	"context"

	"github.com/neervaani/neerhub/internal/models"
)

// EnvironmentService looks up typical environmental conditions for a
// location. The bundled implementation is total: every non-empty location
// yields a record (curated values for known cities, bounded plausible values
// otherwise), so agents can treat it as an unconditionally safe backfill
// source. The error return exists for alternative implementations backed by
// real weather services.
type EnvironmentService interface {
	Lookup(ctx context.Context, location string) (*models.EnvironmentalRecord, error)
}
