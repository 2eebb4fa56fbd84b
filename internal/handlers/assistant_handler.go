package handlers

import (
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
)

// AssistantHandler exposes the voice-query router. The endpoint always
// answers 200 with spoken prose; failures inside the turn surface as the
// router's fallback responses, not as HTTP errors.
type AssistantHandler struct {
	assistant interfaces.AssistantService
	speech    interfaces.SpeechService
	logger    arbor.ILogger
}

func NewAssistantHandler(assistant interfaces.AssistantService, speech interfaces.SpeechService) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		speech:    speech,
		logger:    common.GetLogger(),
	}
}

// RespondHandler handles POST /api/assistant
func (h *AssistantHandler) RespondHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	request := &models.ChatRequest{}
	if !DecodeBody(w, r, request) {
		return
	}

	message := h.assistant.Respond(r.Context(), request)

	response := &models.ChatResponse{Message: message}
	if request.Speak {
		response.AudioDataURI = h.speech.Synthesize(r.Context(), message)
	}

	WriteJSON(w, http.StatusOK, response)
}
