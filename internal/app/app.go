package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/handlers"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/services/agents"
	"github.com/neervaani/neerhub/internal/services/assistant"
	"github.com/neervaani/neerhub/internal/services/environment"
	"github.com/neervaani/neerhub/internal/services/llm"
	"github.com/neervaani/neerhub/internal/services/schemes"
	"github.com/neervaani/neerhub/internal/services/speech"
	badgerstorage "github.com/neervaani/neerhub/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	ctx            context.Context
	cancelCtx      context.CancelFunc
	StorageManager interfaces.StorageManager

	// Domain services
	LLMService         interfaces.LLMService
	EnvironmentService interfaces.EnvironmentService
	SchemeService      interfaces.SchemeService
	AgentService       interfaces.AgentService
	AssistantService   interfaces.AssistantService
	SpeechService      interfaces.SpeechService

	// HTTP handlers
	APIHandler       *handlers.APIHandler
	AgentHandler     *handlers.AgentHandler
	AssistantHandler *handlers.AssistantHandler
	DiagnosisHandler *handlers.DiagnosisHandler
	CropHandler      *handlers.CropHandler
	WSHandler        *handlers.WebSocketHandler
}

// New creates the application with all services and handlers wired
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		Config:    config,
		Logger:    logger,
		ctx:       ctx,
		cancelCtx: cancel,
	}

	storageManager, err := badgerstorage.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.StorageManager = storageManager

	schemeService, err := schemes.NewService(logger)
	if err != nil {
		storageManager.Close()
		cancel()
		return nil, fmt.Errorf("failed to load scheme repository: %w", err)
	}
	app.SchemeService = schemeService

	app.LLMService = llm.NewService(config, logger)
	app.EnvironmentService = environment.NewService(logger)
	app.AgentService = agents.NewService(app.LLMService, app.EnvironmentService, app.SchemeService, logger)
	app.AssistantService = assistant.NewService(app.LLMService, app.AgentService, app.EnvironmentService, logger)
	app.SpeechService = speech.NewService(config, logger)

	app.APIHandler = handlers.NewAPIHandler(app.AssistantService, app.SchemeService)
	app.AgentHandler = handlers.NewAgentHandler(app.AgentService)
	app.AssistantHandler = handlers.NewAssistantHandler(app.AssistantService, app.SpeechService)
	app.DiagnosisHandler = handlers.NewDiagnosisHandler(app.AgentService, storageManager.Diagnoses())
	app.CropHandler = handlers.NewCropHandler(storageManager.Crops())
	app.WSHandler = handlers.NewWebSocketHandler(app.AssistantService, app.SpeechService)

	logger.Info().
		Int("scheme_count", schemeService.Count()).
		Msg("Application initialized")

	return app, nil
}

// Close shuts down application services
func (a *App) Close() error {
	a.cancelCtx()

	if err := a.LLMService.Close(); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to close LLM service")
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	return nil
}
