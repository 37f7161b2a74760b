package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
	"github.com/abhisek/ieltsprep/internal/writing"
)

type fakeEvaluator struct {
	calls int
}

func (f *fakeEvaluator) Evaluate(_ context.Context, _ writing.Task, essay string) (*writing.Feedback, error) {
	if writing.CountWords(essay) < writing.MinWords {
		return nil, writing.ErrEssayTooShort
	}
	f.calls++
	if strings.Contains(essay, "fail") {
		return nil, &writing.FeedbackError{Err: errors.New("upstream down")}
	}
	return &writing.Feedback{OverallBand: 6.5, CorrectedEssay: "fixed"}, nil
}

type fakeSamples struct{ err error }

func (f fakeSamples) SampleAnswer(_ context.Context, p speaking.Prompt) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "Answer about " + p.PromptTopic(), nil
}

type fakeSynth struct {
	pcm []byte
	err error
}

func (f fakeSynth) Synthesize(context.Context, string) ([]byte, error) { return f.pcm, f.err }
func (f fakeSynth) Format() speech.Format                              { return speech.GeminiFormat }

func newTestServer(deps Deps) *Server {
	cfg := DefaultConfig()
	cfg.RateLimit = 1000
	return New(cfg, deps)
}

func do(t *testing.T, s *Server, method, path, body string) (*http.Response, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestSections(t *testing.T) {
	s := newTestServer(Deps{})
	resp, body := do(t, s, http.MethodGet, "/sections", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, int64(4), gjson.Get(body, "data.#").Int())
	assert.Equal(t, "writing", gjson.Get(body, "data.0.id").String())
}

func TestWritingTasks(t *testing.T) {
	s := newTestServer(Deps{})
	_, body := do(t, s, http.MethodGet, "/writing/tasks", "")

	assert.Equal(t, "task1", gjson.Get(body, "data.0.id").String())
	assert.Equal(t, writing.Task2.Prompt(), gjson.Get(body, "data.1.prompt").String())
}

func TestWritingFeedback(t *testing.T) {
	ev := &fakeEvaluator{}
	s := newTestServer(Deps{Evaluator: ev})

	t.Run("short essay", func(t *testing.T) {
		body := fmt.Sprintf(`{"task":"1","essay":%q}`, words(40))
		resp, out := do(t, s, http.MethodPost, "/writing/feedback", body)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.False(t, gjson.Get(out, "success").Bool())
		assert.Equal(t, writing.ErrEssayTooShort.Error(), gjson.Get(out, "message").String())
		assert.Equal(t, 0, ev.calls)
	})

	t.Run("graded", func(t *testing.T) {
		body := fmt.Sprintf(`{"task":"task2","essay":%q}`, words(60))
		resp, out := do(t, s, http.MethodPost, "/writing/feedback", body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 6.5, gjson.Get(out, "data.overallBand").Float())
		assert.Equal(t, "fixed", gjson.Get(out, "data.correctedEssay").String())
	})

	t.Run("service failure", func(t *testing.T) {
		body := fmt.Sprintf(`{"task":"1","essay":%q}`, words(60)+" fail")
		resp, out := do(t, s, http.MethodPost, "/writing/feedback", body)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, writing.ErrFeedbackFailed.Error(), gjson.Get(out, "message").String())
		assert.False(t, gjson.Get(out, "dev_message").Exists())
	})

	t.Run("unknown task", func(t *testing.T) {
		resp, _ := do(t, s, http.MethodPost, "/writing/feedback", `{"task":"3","essay":"x"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSpeakingPrompts(t *testing.T) {
	s := newTestServer(Deps{})
	_, body := do(t, s, http.MethodGet, "/speaking/prompts", "")

	assert.Equal(t, int64(3), gjson.Get(body, "data.#").Int())
	assert.Equal(t, "questions", gjson.Get(body, "data.0.kind").String())
	assert.Equal(t, "cue_card", gjson.Get(body, "data.1.kind").String())
	p, _ := speaking.PromptFor(speaking.Part1)
	assert.Equal(t, speaking.Text(p), gjson.Get(body, "data.0.text").String())
}

func TestSpeakingSample(t *testing.T) {
	s := newTestServer(Deps{Samples: fakeSamples{}})
	resp, body := do(t, s, http.MethodPost, "/speaking/sample", `{"part":2}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Answer about Describe a memorable journey", gjson.Get(body, "data.answer").String())

	resp, _ = do(t, s, http.MethodPost, "/speaking/sample", `{"part":7}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	failing := newTestServer(Deps{Samples: fakeSamples{err: speaking.ErrSampleFailed}})
	resp, body = do(t, failing, http.MethodPost, "/speaking/sample", `{"part":1}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Failed to generate a sample answer.", gjson.Get(body, "message").String())
}

func TestSpeakingAudio(t *testing.T) {
	pcm := make([]byte, 480)
	s := newTestServer(Deps{Synth: fakeSynth{pcm: pcm}})

	resp, body := do(t, s, http.MethodPost, "/speaking/audio", `{"part":1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "audio/wav", resp.Header.Get("Content-Type"))
	assert.Len(t, body, 44+len(pcm))
	assert.True(t, strings.HasPrefix(body, "RIFF"))

	empty := newTestServer(Deps{Synth: fakeSynth{}})
	resp, body = do(t, empty, http.MethodPost, "/speaking/audio", `{"text":"hello"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Could not generate audio.", gjson.Get(body, "message").String())

	none := newTestServer(Deps{})
	resp, _ = do(t, none, http.MethodPost, "/speaking/audio", `{"text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestReadingQuizHidesAnswers(t *testing.T) {
	s := newTestServer(Deps{})
	_, body := do(t, s, http.MethodGet, "/reading/quiz", "")

	assert.Equal(t, int64(3), gjson.Get(body, "data.questions.#").Int())
	assert.False(t, gjson.Get(body, "data.questions.0.answer").Exists())
	assert.False(t, gjson.Get(body, "data.questions.0.Answer").Exists())
}

func TestReadingScore(t *testing.T) {
	s := newTestServer(Deps{})
	_, body := do(t, s, http.MethodPost, "/reading/quiz/score", `{"answers":{"0":2,"1":1,"2":2}}`)
	assert.Equal(t, "3 / 3", gjson.Get(body, "data.result").String())

	_, body = do(t, s, http.MethodPost, "/reading/quiz/score", `{"answers":{"0":0}}`)
	assert.Equal(t, int64(0), gjson.Get(body, "data.score").Int())
	assert.Equal(t, int64(3), gjson.Get(body, "data.total").Int())

	resp, _ := do(t, s, http.MethodPost, "/reading/quiz/score", `{"answers":{"9":0}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListening(t *testing.T) {
	s := newTestServer(Deps{})
	_, body := do(t, s, http.MethodGet, "/listening", "")

	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	assert.True(t, env.Success)
	assert.Contains(t, env.Data["message"], "fine-tuning")
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(Deps{})
	resp, _ := do(t, s, http.MethodGet, "/livez", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RateLimit = 1
	s := New(cfg, Deps{})

	resp, _ := do(t, s, http.MethodGet, "/sections", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body := do(t, s, http.MethodGet, "/sections", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Too many requests", gjson.Get(body, "message").String())
}
