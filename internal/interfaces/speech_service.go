package interfaces

import "context"

// SpeechService converts reply text into playable audio. Synthesize returns
// a base64 WAV data URI, or the empty string when the input is empty or
// synthesis fails for any reason. Empty is a valid, silent outcome, never an
// error.
type SpeechService interface {
	Synthesize(ctx context.Context, text string) string
}
