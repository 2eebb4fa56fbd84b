package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neervaani/neerhub/internal/models"
)

// stubAssistant answers every query with a fixed message
type stubAssistant struct {
	message string
	last    *models.ChatRequest
}

func (s *stubAssistant) Respond(_ context.Context, request *models.ChatRequest) string {
	s.last = request
	return s.message
}

func (s *stubAssistant) HealthCheck(context.Context) error { return nil }

// stubSpeech returns a fixed data URI for non-empty text
type stubSpeech struct {
	called bool
}

func (s *stubSpeech) Synthesize(_ context.Context, text string) string {
	s.called = true
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return "data:audio/wav;base64,UklGRg=="
}

func TestRespondHandlerReturnsMessage(t *testing.T) {
	assistant := &stubAssistant{message: "Tomatoes are selling well."}
	speech := &stubSpeech{}
	handler := NewAssistantHandler(assistant, speech)

	body := `{"query": "price of tomatoes", "language": "en"}`
	req := httptest.NewRequest("POST", "/api/assistant", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.RespondHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Tomatoes are selling well.", response.Message)
	assert.Empty(t, response.AudioDataURI)
	assert.False(t, speech.called, "no synthesis when speak is false")
}

func TestRespondHandlerSynthesizesWhenRequested(t *testing.T) {
	assistant := &stubAssistant{message: "Hello farmer."}
	speech := &stubSpeech{}
	handler := NewAssistantHandler(assistant, speech)

	body := `{"query": "hello", "speak": true}`
	req := httptest.NewRequest("POST", "/api/assistant", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.RespondHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, strings.HasPrefix(response.AudioDataURI, "data:audio/wav;base64,"))
	assert.True(t, speech.called)
}

func TestRespondHandlerRejectsBadJSON(t *testing.T) {
	handler := NewAssistantHandler(&stubAssistant{}, &stubSpeech{})

	req := httptest.NewRequest("POST", "/api/assistant", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.RespondHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespondHandlerRejectsGet(t *testing.T) {
	handler := NewAssistantHandler(&stubAssistant{}, &stubSpeech{})

	req := httptest.NewRequest("GET", "/api/assistant", nil)
	rec := httptest.NewRecorder()

	handler.RespondHandler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRespondHandlerForwardsHistory(t *testing.T) {
	assistant := &stubAssistant{message: "ok"}
	handler := NewAssistantHandler(assistant, &stubSpeech{})

	body := `{"query": "and in Delhi?", "history": [{"role": "user", "content": "weather in Pune"}, {"role": "model", "content": "Warm."}]}`
	req := httptest.NewRequest("POST", "/api/assistant", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.RespondHandler(rec, req)

	require.NotNil(t, assistant.last)
	require.Len(t, assistant.last.History, 2)
	assert.Equal(t, "model", assistant.last.History[1].Role)
}
