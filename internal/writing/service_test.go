package writing

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ieltsprep/internal/llm"
	"github.com/abhisek/ieltsprep/internal/store"
)

func essayOfWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func validFeedbackJSON() json.RawMessage {
	return json.RawMessage(`{
		"overallBand": 6.5,
		"taskAchievement": {"score": 6, "feedback": "Addresses the task but the overview is thin."},
		"coherenceCohesion": {"score": 7, "feedback": "Logical paragraphing."},
		"lexicalResource": {"score": 6.5, "feedback": "Adequate range with some repetition."},
		"grammaticalRange": {"score": 6.5, "feedback": "Mix of simple and complex sentences."},
		"correctedEssay": "The chart illustrates smartphone ownership."
	}`)
}

func TestEvaluate_RejectsShortEssayWithoutCalling(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Evaluate(context.Background(), Task2, essayOfWords(40))

	require.ErrorIs(t, err, ErrEssayTooShort)
	assert.Equal(t, 0, mock.CallCount())
	assert.Equal(t,
		"Please write a more complete essay (at least 50 words) to get effective feedback.",
		UserMessage(err))
}

func TestEvaluate_BoundaryWordCount(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validFeedbackJSON()},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Evaluate(context.Background(), Task1, essayOfWords(49))
	require.ErrorIs(t, err, ErrEssayTooShort)

	_, err = svc.Evaluate(context.Background(), Task1, essayOfWords(50))
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestEvaluate_ParsesFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	svc := NewService(mock, DefaultConfig(), nil)

	essay := essayOfWords(60)
	fb, err := svc.Evaluate(context.Background(), Task1, essay)
	require.NoError(t, err)

	assert.Equal(t, "6.5", fb.OverallBand.String())
	rows := fb.Criteria()
	require.Len(t, rows, 4)
	assert.Equal(t, "Task Achievement / Response", rows[0].Title)
	assert.Equal(t, Band(6), rows[0].Score)
	assert.Equal(t, "Grammatical Range and Accuracy", rows[3].Title)
	assert.Equal(t, "The chart illustrates smartphone ownership.", fb.CorrectedEssay)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Same(t, FeedbackSchema, req.Schema)
	assert.Equal(t, 0.5, req.Temperature)
	assert.Contains(t, req.System, "Task 1 essay")
	assert.Contains(t, req.System, "The response must be in JSON format.")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t,
		"Prompt: \""+Task1.Prompt()+"\"\n\nEssay:\n\""+essay+"\"",
		req.Messages[0].Content)
}

func TestEvaluate_ModelOverride(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validFeedbackJSON()})
	cfg := DefaultConfig()
	cfg.Model = "gemini-pro"
	svc := NewService(mock, cfg, nil)

	_, err := svc.Evaluate(context.Background(), Task2, essayOfWords(55))
	require.NoError(t, err)
	assert.Equal(t, "gemini-pro", mock.Calls[0].Model)
}

func TestEvaluate_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}}},
		{"malformed json", llm.MockResponse{Content: json.RawMessage(`{"overallBand":`)}},
		{"band out of range", llm.MockResponse{Content: json.RawMessage(`{"overallBand": 11}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			svc := NewService(mock, DefaultConfig(), nil)

			fb, err := svc.Evaluate(context.Background(), Task2, essayOfWords(80))
			assert.Nil(t, fb)
			require.ErrorIs(t, err, ErrFeedbackFailed)
			assert.Equal(t,
				"Failed to get feedback from AI. Please check your API key and try again.",
				UserMessage(err))
		})
	}
}

func TestEvaluate_KeepsProviderErrorChain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Evaluate(context.Background(), Task2, essayOfWords(80))

	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestEvaluate_SnapsBandsToHalfSteps(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"overallBand": 6.3,
		"taskAchievement": {"score": 6.8, "feedback": "a"},
		"coherenceCohesion": {"score": 7, "feedback": "b"},
		"lexicalResource": {"score": 5.2, "feedback": "c"},
		"grammaticalRange": {"score": 6, "feedback": "d"},
		"correctedEssay": "e"
	}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	fb, err := svc.Evaluate(context.Background(), Task2, essayOfWords(80))
	require.NoError(t, err)
	assert.Equal(t, Band(6.5), fb.OverallBand)
	assert.Equal(t, Band(7), fb.TaskAchievement.Score)
	assert.Equal(t, Band(5), fb.LexicalResource.Score)
}

func TestEvaluate_RecordsAttempts(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "attempts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validFeedbackJSON()},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := NewService(mock, DefaultConfig(), s.AttemptRepo())
	ctx := context.Background()

	_, err = svc.Evaluate(ctx, Task1, essayOfWords(60))
	require.NoError(t, err)
	_, err = svc.Evaluate(ctx, Task2, essayOfWords(70))
	require.Error(t, err)
	_, err = svc.Evaluate(ctx, Task2, essayOfWords(10))
	require.ErrorIs(t, err, ErrEssayTooShort)

	attempts, err := s.AttemptRepo().QueryAttempts(ctx, "", store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, attempts, 2, "short essays are not recorded")

	assert.Equal(t, "task2", attempts[0].Task)
	assert.False(t, attempts[0].Success)
	assert.Equal(t, 70, attempts[0].WordCount)
	assert.NotEmpty(t, attempts[0].ErrorMessage)

	assert.Equal(t, "task1", attempts[1].Task)
	assert.True(t, attempts[1].Success)
	assert.Equal(t, 6.5, attempts[1].OverallBand)
	assert.NotEmpty(t, attempts[1].AttemptID)
}
