package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
	"github.com/neervaani/neerhub/internal/schemas"
)

// ToolEnvironmentalData is the router-only tool that reads the environmental
// lookup directly, without invoking an agent.
const ToolEnvironmentalData = "getEnvironmentalData"

// Service implements interfaces.AssistantService. A turn makes exactly one
// generation call when the model answers directly, or two calls with one tool
// execution between them when it routes to a tool. Respond never returns an
// error; every failure maps to a fixed spoken fallback.
type Service struct {
	llm    interfaces.LLMService
	agents interfaces.AgentService
	env    interfaces.EnvironmentService
	logger arbor.ILogger
}

// NewService creates the assistant router
func NewService(
	llm interfaces.LLMService,
	agentService interfaces.AgentService,
	env interfaces.EnvironmentService,
	logger arbor.ILogger,
) *Service {
	return &Service{
		llm:    llm,
		agents: agentService,
		env:    env,
		logger: logger,
	}
}

// Respond routes one voice query and returns the spoken answer
func (s *Service) Respond(ctx context.Context, request *models.ChatRequest) string {
	if err := schemas.Validate(request); err != nil {
		s.logger.Warn().Err(err).Msg("Assistant request failed validation")
		return fallbackGeneric
	}

	messages := make([]interfaces.Message, 0, len(request.History)+1)
	for _, msg := range request.History {
		messages = append(messages, interfaces.Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, interfaces.Message{Role: "user", Content: request.Query})

	first, err := s.llm.Generate(ctx, &interfaces.GenerateRequest{
		Messages:          messages,
		SystemInstruction: routingSystemPrompt(request.Language),
		Tools:             s.routerTools(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Routing call failed")
		return fallbackGeneric
	}

	switch first.Kind {
	case interfaces.ResultText:
		if strings.TrimSpace(first.Text) == "" {
			s.logger.Warn().Msg("Routing call returned blank text")
			return fallbackNoResponse
		}
		return first.Text

	case interfaces.ResultToolCall:
		return s.respondWithTool(ctx, request, first.ToolCall)

	default:
		s.logger.Warn().Msg("Routing call produced neither text nor a tool call")
		return fallbackNoResponse
	}
}

// respondWithTool executes the routed tool and synthesizes its result into a
// spoken answer with a second generation call.
func (s *Service) respondWithTool(ctx context.Context, request *models.ChatRequest, call *interfaces.ToolCall) string {
	s.logger.Info().
		Str("tool", call.Name).
		Msg("Router selected a tool")

	result, err := s.executeTool(ctx, call)
	if err != nil {
		if isLocationError(err) {
			s.logger.Info().Err(err).Msg("Tool failed on environmental data lookup")
			return fallbackLocationData
		}
		s.logger.Warn().Err(err).Str("tool", call.Name).Msg("Tool execution failed")
		return fallbackGeneric
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to encode tool result")
		return fallbackGeneric
	}

	// The synthesis call carries the conversation history so follow-up
	// questions keep their referents.
	messages := make([]interfaces.Message, 0, len(request.History)+1)
	for _, msg := range request.History {
		messages = append(messages, interfaces.Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, interfaces.Message{
		Role:    "user",
		Content: synthesisPrompt(request.Query, request.Language, call.Name, encoded),
	})

	second, err := s.llm.Generate(ctx, &interfaces.GenerateRequest{Messages: messages})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Synthesis call failed")
		return fallbackGeneric
	}

	if second.Kind != interfaces.ResultText || strings.TrimSpace(second.Text) == "" {
		return fallbackSummaryFailed
	}
	return second.Text
}

// executeTool dispatches the tool call. getEnvironmentalData is answered
// directly from the environmental lookup; everything else runs an agent.
func (s *Service) executeTool(ctx context.Context, call *interfaces.ToolCall) (any, error) {
	if call.Name == ToolEnvironmentalData {
		location, _ := call.Args["location"].(string)
		if strings.TrimSpace(location) == "" {
			return nil, &models.LocationDataError{Location: location}
		}
		return s.env.Lookup(ctx, location)
	}
	return s.agents.ExecuteTool(ctx, call.Name, call.Args)
}

// routerTools is the agent tool set plus the direct environmental lookup
func (s *Service) routerTools() []interfaces.ToolDecl {
	descriptors := s.agents.RouterTools()
	tools := make([]interfaces.ToolDecl, 0, len(descriptors)+1)
	for _, d := range descriptors {
		tools = append(tools, interfaces.ToolDecl{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  d.Parameters,
		})
	}
	tools = append(tools, interfaces.ToolDecl{
		Name:        ToolEnvironmentalData,
		Description: "Get average temperature, humidity, rainfall, and soil type for a location. Use for questions about local growing conditions.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"location": {Type: genai.TypeString, Description: "City or district to look up"},
			},
			Required: []string{"location"},
		},
	})
	return tools
}

// isLocationError recognizes environmental lookup failures, both the typed
// error and agent errors whose message carries the lookup failure text.
func isLocationError(err error) bool {
	if models.IsLocationDataError(err) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "environmental data") && strings.Contains(msg, "location")
}

// HealthCheck verifies the underlying model provider is available
func (s *Service) HealthCheck(ctx context.Context) error {
	return s.llm.HealthCheck(ctx)
}
