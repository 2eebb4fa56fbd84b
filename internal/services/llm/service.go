package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
)

// Service implements interfaces.LLMService on top of the provider factory.
// It applies the outbound rate limit and the per-call timeout; it never
// retries a failed call.
type Service struct {
	factory *ProviderFactory
	limiter *rate.Limiter
	timeout time.Duration
	logger  arbor.ILogger
}

// NewService creates an LLM service from configuration
func NewService(config *common.Config, logger arbor.ILogger) *Service {
	factory := NewProviderFactory(&config.Gemini, &config.Claude, &config.LLM, logger)

	rpm := config.LLM.RequestsPerMinute
	if rpm <= 0 {
		rpm = 15
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm)

	timeout, err := time.ParseDuration(config.LLM.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 90 * time.Second
	}

	return &Service{
		factory: factory,
		limiter: limiter,
		timeout: timeout,
		logger:  logger,
	}
}

// Generate performs a single generation round-trip
func (s *Service) Generate(ctx context.Context, request *interfaces.GenerateRequest) (*interfaces.GenerateResult, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.factory.Generate(callCtx, request)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Warn().
			Err(err).
			Dur("elapsed", elapsed).
			Msg("Generation failed")
		return nil, err
	}

	s.logger.Debug().
		Str("result_kind", string(result.Kind)).
		Dur("elapsed", elapsed).
		Msg("Generation completed")

	return result, nil
}

// HealthCheck verifies that at least one provider is configured
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.factory.geminiConfig.APIKey == "" && s.factory.claudeConfig.APIKey == "" {
		return fmt.Errorf("no LLM provider API key configured")
	}
	return nil
}

// Close releases provider clients
func (s *Service) Close() error {
	return s.factory.Close()
}
