package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func geminiStub(t *testing.T, status int, reply map[string]any, got *map[string]any) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-pro",
		BaseURL: srv.URL + "/",
	})
	require.NoError(t, err)
	return p
}

func geminiReply(text, finish string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": text}}},
			"finishReason": finish,
		}},
		"usageMetadata": map[string]any{
			"promptTokenCount":     700,
			"candidatesTokenCount": 500,
			"totalTokenCount":      1200,
		},
	}
}

func TestGeminiProvider_Feedback(t *testing.T) {
	var got map[string]any
	p := geminiStub(t, http.StatusOK, geminiReply(`{"overallBand":7}`, "STOP"), &got)

	resp, err := p.Generate(context.Background(), Request{
		System:   "You are an IELTS examiner.",
		Messages: []Message{{Role: RoleUser, Content: "Task 1 report: ..."}},
		Schema:   bandTestSchema(),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"overallBand":7}`, resp.Text())
	assert.Equal(t, "gemini-2.5-pro", resp.Model)
	assert.Equal(t, 1200, resp.Usage.TotalTokens)

	gen := got["generationConfig"].(map[string]any)
	assert.Equal(t, "application/json", gen["responseMimeType"])
	assert.Contains(t, got, "systemInstruction")
}

func TestGeminiProvider_Errors(t *testing.T) {
	apiError := func(code int) map[string]any {
		return map[string]any{"error": map[string]any{"code": code, "message": "nope", "status": "X"}}
	}

	tests := []struct {
		name   string
		status int
		reply  map[string]any
		target any
	}{
		{"quota", http.StatusTooManyRequests, apiError(429), new(*ErrRateLimit)},
		{"bad key", http.StatusBadRequest, apiError(400), new(*ErrRequestRejected)},
		{"outage", http.StatusServiceUnavailable, apiError(503), new(*ErrProviderUnavailable)},
		{"cut off", http.StatusOK, geminiReply(`{"overallBand":`, "MAX_TOKENS"), new(*ErrMaxTokensExceeded)},
		{"prose instead of JSON", http.StatusOK, geminiReply("Band 7 overall.", "STOP"), new(*ErrInvalidResponse)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := geminiStub(t, tt.status, tt.reply, nil)
			_, err := p.Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "essay"}},
				Schema:   bandTestSchema(),
			})
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.target)
		})
	}
}

func TestGeminiProvider_ModelFor(t *testing.T) {
	p := &GeminiProvider{model: "gemini-2.5-pro"}

	assert.Equal(t, "gemini-2.5-pro", p.modelFor(Request{}))
	assert.Equal(t, "gemini-2.5-flash", p.modelFor(Request{Model: "gemini-flash"}))
	assert.Equal(t, "gemini-2.5-flash-lite", p.modelFor(Request{Model: "gemini-lite"}))
	assert.Equal(t, "gemini-2.0-flash", p.modelFor(Request{Model: "gemini-2.0-flash"}))
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallBand": map[string]any{"type": "number", "minimum": 0, "maximum": 9.0},
			"criterion":   map[string]any{"type": "string", "enum": []any{"TA", "CC", "LR", "GRA"}},
			"mistakes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "description": "one error"},
			},
			"passed": map[string]any{"type": "boolean"},
		},
		"required": []string{"overallBand", "criterion"},
	}

	s := geminiSchema(def)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Len(t, s.Properties, 4)
	assert.Equal(t, []string{"overallBand", "criterion"}, s.Required)

	band := s.Properties["overallBand"]
	assert.Equal(t, genai.TypeNumber, band.Type)
	require.NotNil(t, band.Minimum)
	require.NotNil(t, band.Maximum)
	assert.Equal(t, 0.0, *band.Minimum)
	assert.Equal(t, 9.0, *band.Maximum)

	assert.Equal(t, []string{"TA", "CC", "LR", "GRA"}, s.Properties["criterion"].Enum)
	assert.Equal(t, genai.TypeArray, s.Properties["mistakes"].Type)
	assert.Equal(t, "one error", s.Properties["mistakes"].Items.Description)
	assert.Equal(t, genai.TypeBoolean, s.Properties["passed"].Type)
	assert.Nil(t, s.Properties["criterion"].Minimum)
}
