package models

// ChatMessage is a single turn in the voice-assistant conversation.
// Role is "user" or "model", matching the wire format the web client sends.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user model"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the input to the voice-query router. History is
// caller-supplied context; the server keeps no session state between turns.
type ChatRequest struct {
	Query    string        `json:"query" validate:"required"`
	Language string        `json:"language"` // ISO-639 short code; empty resolves to English
	History  []ChatMessage `json:"history" validate:"dive"`
	Speak    bool          `json:"speak"` // Request synthesized audio alongside the text reply
}

// ChatResponse is the router's reply. AudioDataURI is empty when speech was
// not requested or synthesis failed; clients treat empty as a silent turn.
type ChatResponse struct {
	Message      string `json:"message"`
	AudioDataURI string `json:"audioDataUri,omitempty"`
}
