package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const audioDataPath = "candidates.0.content.parts.0.inlineData.data"

// GeminiSynthesizer calls the Gemini generateContent REST endpoint with
// the AUDIO response modality.
type GeminiSynthesizer struct {
	client *resty.Client
	apiKey string
	model  string
	voice  string
}

// NewGeminiSynthesizer creates a synthesizer from cfg.
func NewGeminiSynthesizer(cfg Config) (*GeminiSynthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required for speech")
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &GeminiSynthesizer{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		voice:  cfg.Voice,
	}, nil
}

func (g *GeminiSynthesizer) Format() Format { return GeminiFormat }

// Synthesize returns decoded PCM for text. Transport, HTTP and missing
// payload failures match ErrNoAudio; a payload that is not valid base64
// matches ErrPlaybackFailed.
func (g *GeminiSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": text}}},
		},
		"generationConfig": map[string]any{
			"responseModalities": []string{"AUDIO"},
			"speechConfig": map[string]any{
				"voiceConfig": map[string]any{
					"prebuiltVoiceConfig": map[string]any{"voiceName": g.voice},
				},
			},
		},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", g.apiKey).
		SetPathParam("model", g.model).
		SetBody(body).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAudio, err)
	}
	if resp.StatusCode() != http.StatusOK {
		msg := gjson.GetBytes(resp.Body(), "error.message").String()
		return nil, fmt.Errorf("%w: tts status %d: %s", ErrNoAudio, resp.StatusCode(), msg)
	}

	data := gjson.GetBytes(resp.Body(), audioDataPath).String()
	if data == "" {
		return nil, fmt.Errorf("%w: response has no audio payload", ErrNoAudio)
	}

	pcm, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode audio: %w", ErrPlaybackFailed, err)
	}
	return pcm, nil
}
