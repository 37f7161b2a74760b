package speaking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/ieltsprep/internal/llm"
)

// ErrSampleFailed wraps every failure to produce a sample answer.
var ErrSampleFailed = errors.New("Failed to generate a sample answer.")

const coachSystemPrompt = `You are an expert IELTS coach providing a model answer for a speaking question. The answer should be a high-scoring Band 9 response, demonstrating a wide range of vocabulary, complex grammatical structures, and fluent, coherent ideas.`

// Config holds sample answer settings.
type Config struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// DefaultConfig returns the sample answer defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Service produces model answers for speaking prompts.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a sample answer service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// SampleAnswer asks the provider for a Band 9 answer to prompt. Errors
// match ErrSampleFailed.
func (s *Service) SampleAnswer(ctx context.Context, prompt Prompt) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSpeakingSample)

	req := llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf("Provide a sample answer for the following IELTS speaking prompt: \"%s\"", Text(prompt)),
		}},
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSampleFailed, err)
	}

	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		return "", fmt.Errorf("%w: empty response", ErrSampleFailed)
	}
	return answer, nil
}
