package interfaces

import (
	"context"

	"github.com/neervaani/neerhub/internal/models"
)

// AssistantService is the voice-query router. Respond never returns an
// error: every failure mode maps to user-facing prose, so the reply is
// always a non-blank string.
type AssistantService interface {
	Respond(ctx context.Context, request *models.ChatRequest) string

	// HealthCheck verifies the underlying generation provider is reachable
	HealthCheck(ctx context.Context) error
}
