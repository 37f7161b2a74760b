package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one completion. Implementations return validated JSON
// when the request carries a Schema and raw text otherwise.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	// ModelID is the configured model, after alias resolution.
	ModelID() string
}

// Request is a single prompt. The zero Temperature means deterministic
// output.
type Request struct {
	System   string
	Messages []Message

	// Schema switches the provider into its native structured-output mode.
	Schema *Schema

	// Model overrides the configured model for this call. Aliases such as
	// "flash" or "haiku" are accepted.
	Model string

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema plus the name providers and the validator cache
// know it by ("writing-feedback").
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the provider output. Content is validated JSON for schema
// requests, plain text otherwise.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string // model that actually served the call
	StopReason string // StopEnd or StopMaxTokens
}

func (r *Response) Text() string {
	return string(r.Content)
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish is the last step of every provider's Generate. Output cut off at
// the token limit is rejected outright when JSON was requested, since the
// object cannot be complete; anything else is checked against req.Schema.
func finish(req Request, content json.RawMessage, model, stop string, usage Usage) (*Response, error) {
	if stop == StopMaxTokens && req.Schema != nil {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

// pickModel returns the model for a request: the per-request override if
// set, else the provider default, with friendly aliases expanded. Names
// not in aliases pass through, so full model IDs always work.
func pickModel(override, fallback string, aliases map[string]string) string {
	name := fallback
	if override != "" {
		name = override
	}
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
