package interfaces

import (
	"context"
	"encoding/json"

	"google.golang.org/genai"
)

// Message represents a single message in a generation conversation
type Message struct {
	// Role identifies the message sender: "user", "model", or "system"
	Role string

	// Content contains the text content of the message
	Content string
}

// MediaPart is an inline media attachment (e.g. a plant photo) passed
// alongside the prompt text.
type MediaPart struct {
	MIMEType string
	Data     []byte
}

// ToolDecl declares a callable tool the model may request during generation.
// Parameters describe the tool's input as a schema the provider understands.
type ToolDecl struct {
	Name        string
	Description string
	Parameters  *genai.Schema
}

// GenerateRequest is a provider-agnostic content generation request.
// OutputSchema, when set, constrains the model to structured JSON output;
// Tools, when set, allow the model to answer with a tool call instead of text.
type GenerateRequest struct {
	Messages          []Message
	SystemInstruction string
	Model             string // Empty uses the configured default
	Temperature       float32
	OutputSchema      *genai.Schema
	Tools             []ToolDecl
	Media             []MediaPart
}

// ResultKind discriminates the variants of a GenerateResult
type ResultKind string

const (
	// ResultText means the model answered with plain or JSON text
	ResultText ResultKind = "text"

	// ResultToolCall means the model requested a tool invocation that the
	// caller must execute and feed back
	ResultToolCall ResultKind = "tool_call"

	// ResultEmpty means the model produced neither text nor a tool call
	ResultEmpty ResultKind = "empty"
)

// ToolCall is the model's request to invoke a declared tool
type ToolCall struct {
	Name string
	Args map[string]any
}

// GenerateResult is the tagged union returned by a generation call. Exactly
// one of Text or ToolCall is meaningful, selected by Kind.
type GenerateResult struct {
	Kind     ResultKind
	Text     string
	ToolCall *ToolCall
}

// DecodeJSON unmarshals a structured-output Text payload into v
func (r *GenerateResult) DecodeJSON(v any) error {
	return json.Unmarshal([]byte(r.Text), v)
}

// LLMService defines the interface for language model generation. A call
// makes exactly one provider round-trip; there is no internal retry, so a
// single failure surfaces immediately to the caller.
type LLMService interface {
	// Generate performs one generation round-trip. The call is bounded by
	// the configured timeout; a timeout is reported as an ordinary error.
	Generate(ctx context.Context, request *GenerateRequest) (*GenerateResult, error)

	// HealthCheck verifies the provider is reachable and authenticated
	HealthCheck(ctx context.Context) error

	// Close releases provider clients
	Close() error
}
