package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anthropicStub serves one canned Messages API reply and keeps the last
// request body.
type anthropicStub struct {
	status int
	header http.Header
	reply  map[string]any
	got    map[string]any
}

func (s *anthropicStub) provider(t *testing.T) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&s.got))
		for k, v := range s.header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		if s.status != 0 {
			w.WriteHeader(s.status)
		}
		json.NewEncoder(w).Encode(s.reply)
	}))
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-5-20250929"}
}

func claudeMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-sonnet-4-5-20250929",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 812, "output_tokens": 640},
	}
}

func claudeError(kind string) map[string]any {
	return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": kind}}
}

func TestAnthropicProvider_Feedback(t *testing.T) {
	stub := &anthropicStub{reply: claudeMessage(`{"overallBand":6.5}`, "end_turn")}
	p := stub.provider(t)

	resp, err := p.Generate(context.Background(), Request{
		System:   "You are a strict IELTS examiner.",
		Messages: []Message{{Role: RoleUser, Content: "Task 2 essay: ..."}},
		Schema:   bandTestSchema(),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"overallBand":6.5}`, resp.Text())
	assert.Equal(t, Usage{InputTokens: 812, OutputTokens: 640, TotalTokens: 1452}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)

	assert.EqualValues(t, anthropicDefaultMaxTokens, stub.got["max_tokens"])
	format := stub.got["output_config"].(map[string]any)["format"].(map[string]any)
	band := format["schema"].(map[string]any)["properties"].(map[string]any)["overallBand"].(map[string]any)
	assert.NotContains(t, band, "minimum")
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		stub   *anthropicStub
		target any
	}{
		{"rate limited", &anthropicStub{status: 429, header: http.Header{"Retry-After": {"7"}}, reply: claudeError("rate_limit_error")}, new(*ErrRateLimit)},
		{"overloaded", &anthropicStub{status: 529, reply: claudeError("overloaded_error")}, new(*ErrProviderUnavailable)},
		{"bad key", &anthropicStub{status: 401, reply: claudeError("authentication_error")}, new(*ErrRequestRejected)},
		{"cut off", &anthropicStub{reply: claudeMessage(`{"overallBand":6.`, "max_tokens")}, new(*ErrMaxTokensExceeded)},
		{"band off scale", &anthropicStub{reply: claudeMessage(`{"overallBand":11}`, "end_turn")}, new(*ErrInvalidResponse)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.stub.provider(t).Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "essay"}},
				Schema:   bandTestSchema(),
			})
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.target)
		})
	}
}

func TestAnthropicProvider_RateLimitCarriesRetryAfter(t *testing.T) {
	stub := &anthropicStub{status: 429, header: http.Header{"Retry-After": {"7"}}, reply: claudeError("rate_limit_error")}
	_, err := stub.provider(t).Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})

	var rl *ErrRateLimit
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, "7s", rl.RetryAfter.String())
}

func TestAnthropicProvider_SampleAnswerOverride(t *testing.T) {
	stub := &anthropicStub{reply: claudeMessage("Well, I'd have to say my hometown...", "end_turn")}
	p := stub.provider(t)

	resp, err := p.Generate(context.Background(), Request{
		Model:     "claude-haiku",
		MaxTokens: 600,
		Messages:  []Message{{Role: RoleUser, Content: "Part 1: Let's talk about your hometown."}},
	})
	require.NoError(t, err)

	assert.Equal(t, "claude-haiku-4-5-20251001", stub.got["model"])
	assert.EqualValues(t, 600, stub.got["max_tokens"])
	assert.NotContains(t, stub.got, "output_config")
	assert.Equal(t, "Well, I'd have to say my hometown...", resp.Text())
	assert.Equal(t, "claude-sonnet-4-5-20250929", p.ModelID())
}

func TestWithoutNumericBounds(t *testing.T) {
	def := bandTestSchema().Definition
	got := withoutNumericBounds(def)

	band := got["properties"].(map[string]any)["overallBand"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "number"}, band)

	orig := def["properties"].(map[string]any)["overallBand"].(map[string]any)
	assert.Contains(t, orig, "minimum", "input must stay intact for validation")
}

func TestNewAnthropicProvider(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{})
	assert.Error(t, err)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku"})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
}
