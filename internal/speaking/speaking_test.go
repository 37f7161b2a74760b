package speaking

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ieltsprep/internal/llm"
)

func TestPrompts(t *testing.T) {
	ps := Prompts()
	require.Len(t, ps, 3)

	for i, p := range ps {
		assert.Equal(t, Part(i+1), p.PromptPart())
	}

	switch p := ps[1].(type) {
	case CueCard:
		assert.Equal(t, "Describe a memorable journey", p.Topic)
	default:
		t.Fatalf("part 2 should be a cue card, got %T", p)
	}

	// Returned slice is a copy.
	ps[0] = nil
	p1, ok := PromptFor(Part1)
	require.True(t, ok)
	assert.Equal(t, "Hometown", p1.PromptTopic())
}

func TestText(t *testing.T) {
	p1, _ := PromptFor(Part1)
	assert.Equal(t,
		"Let's talk about your hometown. Where is your hometown? What do you like most about your hometown? "+
			"Is there anything you dislike about it? How has your hometown changed over the years?",
		Text(p1))

	p2, _ := PromptFor(Part2)
	assert.Equal(t,
		"Describe a memorable journey you have taken. You should say:\n- where you went\n- who you were with\n- what you did\n- and explain why it was so memorable.",
		Text(p2))
}

func TestParsePart(t *testing.T) {
	for in, want := range map[string]Part{"1": Part1, "part2": Part2, "Part 3": Part3} {
		got, err := ParsePart(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParsePart("4")
	assert.Error(t, err)
	assert.Equal(t, "Part 2", Part2.String())
}

func TestSampleAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  My hometown is a coastal city in the south.\n"),
	})
	svc := NewService(mock, DefaultConfig())

	p1, _ := PromptFor(Part1)
	answer, err := svc.SampleAnswer(context.Background(), p1)
	require.NoError(t, err)
	assert.Equal(t, "My hometown is a coastal city in the south.", answer)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Nil(t, req.Schema)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Contains(t, req.System, "Band 9 response")
	assert.Equal(t,
		`Provide a sample answer for the following IELTS speaking prompt: "`+Text(p1)+`"`,
		req.Messages[0].Content)
}

func TestSampleAnswer_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}},
		{"empty answer", llm.MockResponse{Content: json.RawMessage("   ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(llm.NewMockProvider(tt.resp), DefaultConfig())
			p3, _ := PromptFor(Part3)

			_, err := svc.SampleAnswer(context.Background(), p3)
			require.ErrorIs(t, err, ErrSampleFailed)
		})
	}
}
