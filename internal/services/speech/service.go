package speech

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/neervaani/neerhub/internal/common"
)

// Service implements interfaces.SpeechService using the Gemini TTS models.
// Speech is best-effort: any failure is logged and reported as an empty
// result so the text answer still reaches the farmer.
type Service struct {
	config *common.Config
	logger arbor.ILogger
	client *genai.Client
}

// NewService creates the speech service
func NewService(config *common.Config, logger arbor.ILogger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Synthesize converts text to a WAV data URI. Empty input returns an empty
// result without calling the model.
func (s *Service) Synthesize(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	client, err := s.getClient(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Speech client unavailable")
		return ""
	}

	resp, err := client.Models.GenerateContent(ctx, s.config.Speech.Model,
		genai.Text(text),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: s.config.Speech.Voice,
					},
				},
			},
		},
	)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Speech synthesis failed")
		return ""
	}

	pcm := extractPCM(resp)
	if len(pcm) == 0 {
		s.logger.Warn().Msg("Speech synthesis returned no audio data")
		return ""
	}

	sampleRate := s.config.Speech.SampleRate
	if sampleRate <= 0 {
		sampleRate = 24000
	}

	wav := encodeWAV(pcm, sampleRate, 1, 16)
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav)
}

func (s *Service) getClient(ctx context.Context) (*genai.Client, error) {
	if s.client != nil {
		return s.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.config.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// extractPCM pulls the first inline audio payload out of the response
func extractPCM(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
