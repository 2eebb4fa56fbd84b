package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/neervaani/neerhub/internal/common"
	"github.com/neervaani/neerhub/internal/interfaces"
	"github.com/neervaani/neerhub/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// wsEnvelope is one message on the voice-chat socket. The client sends
// type "query" envelopes; the server answers with "thinking", "answer",
// "audio", and "error" envelopes.
type wsEnvelope struct {
	Type         string               `json:"type"`
	Query        string               `json:"query,omitempty"`
	Language     string               `json:"language,omitempty"`
	History      []models.ChatMessage `json:"history,omitempty"`
	Speak        bool                 `json:"speak,omitempty"`
	Message      string               `json:"message,omitempty"`
	AudioDataURI string               `json:"audioDataUri,omitempty"`
}

// WebSocketHandler streams voice-assistant turns over a persistent
// connection so the client can show progress while the model works.
type WebSocketHandler struct {
	assistant interfaces.AssistantService
	speech    interfaces.SpeechService
	logger    arbor.ILogger
}

func NewWebSocketHandler(assistant interfaces.AssistantService, speech interfaces.SpeechService) *WebSocketHandler {
	return &WebSocketHandler{
		assistant: assistant,
		speech:    speech,
		logger:    common.GetLogger(),
	}
}

// HandleWebSocket handles GET /ws
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("Voice chat connection opened")

	// One query per second per connection keeps a chatty client from
	// draining the provider rate budget
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)

	for {
		var envelope wsEnvelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn().Err(err).Msg("Voice chat connection error")
			}
			return
		}

		if envelope.Type != "query" {
			conn.WriteJSON(&wsEnvelope{Type: "error", Message: "Unsupported message type"})
			continue
		}

		if !limiter.Allow() {
			conn.WriteJSON(&wsEnvelope{Type: "error", Message: "Too many queries, slow down"})
			continue
		}

		conn.WriteJSON(&wsEnvelope{Type: "thinking"})

		request := &models.ChatRequest{
			Query:    envelope.Query,
			Language: envelope.Language,
			History:  envelope.History,
			Speak:    envelope.Speak,
		}
		message := h.assistant.Respond(r.Context(), request)

		if err := conn.WriteJSON(&wsEnvelope{Type: "answer", Message: message}); err != nil {
			return
		}

		if envelope.Speak {
			if audio := h.speech.Synthesize(r.Context(), message); audio != "" {
				if err := conn.WriteJSON(&wsEnvelope{Type: "audio", AudioDataURI: audio}); err != nil {
					return
				}
			}
		}
	}
}
