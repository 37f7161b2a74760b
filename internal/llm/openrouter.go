package llm

import (
	"errors"
	"net/http"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider is the OpenAI-compatible provider pointed at
// OpenRouter. Model IDs are vendor-prefixed ("google/gemini-2.5-flash")
// and are sent as configured.
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter: API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	client := &http.Client{Transport: attribution{next: http.DefaultTransport}}
	return &OpenRouterProvider{
		OpenAIProvider: newChatProvider(cfg.APIKey, base, client, cfg.Model, nil),
	}, nil
}

// attribution adds the app headers OpenRouter uses for its rankings.
type attribution struct {
	next http.RoundTripper
}

func (a attribution) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("HTTP-Referer", "https://github.com/abhisek/ieltsprep")
	r.Header.Set("X-Title", "ieltsprep")
	return a.next.RoundTrip(r)
}
