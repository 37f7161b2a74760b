package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ieltsprep/internal/llm"
	"github.com/abhisek/ieltsprep/internal/store"
	"github.com/abhisek/ieltsprep/internal/writing"
)

// execute runs the command tree once. Flag values stick between runs of
// the shared rootCmd, so callers spell out every flag they rely on.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFeedbackCommand_Prompt(t *testing.T) {
	out, err := execute(t, "", "feedback", "--task", "1", "--prompt=true")
	require.NoError(t, err)
	assert.Contains(t, out, "Task 1")
	assert.Contains(t, out, writing.Task1.Prompt())
}

func TestFeedbackCommand_ShortEssayFailsBeforeSetup(t *testing.T) {
	// No provider key and an unwritable DB path: reaching either would
	// produce a different error.
	t.Setenv("IELTSPREP_LLM_PROVIDER", "gemini")
	t.Setenv("IELTSPREP_GEMINI_API_KEY", "")

	_, err := execute(t, strings.Repeat("word ", 40),
		"feedback", "--task", "2", "--prompt=false", "--db", "/nonexistent/x.db", "-")
	assert.ErrorIs(t, err, writing.ErrEssayTooShort)
}

func TestFeedbackCommand_UnknownTask(t *testing.T) {
	_, err := execute(t, "", "feedback", "--task", "3", "--prompt=true")
	assert.Error(t, err)
}

func TestPrintFeedback(t *testing.T) {
	fb := &writing.Feedback{
		OverallBand:       6.5,
		TaskAchievement:   writing.Criterion{Score: 6, Feedback: "Addresses both views."},
		CoherenceCohesion: writing.Criterion{Score: 7},
		LexicalResource:   writing.Criterion{Score: 6.5},
		GrammaticalRange:  writing.Criterion{Score: 6},
		CorrectedEssay:    "Some people believe...",
	}

	var b bytes.Buffer
	printFeedback(&b, writing.Task2, fb)
	out := b.String()

	assert.Contains(t, out, "Task 2  Overall Band 6.5")
	assert.Contains(t, out, "Task Achievement / Response")
	assert.Contains(t, out, "  Addresses both views.")
	assert.Contains(t, out, "Grammatical Range and Accuracy")
	assert.Contains(t, out, "Corrected Essay")
	assert.True(t, strings.HasSuffix(out, "Some people believe...\n"))
}

func TestFilterPurpose(t *testing.T) {
	events := []store.LLMEventRecord{
		{ID: 1, LLMRequestEventData: store.LLMRequestEventData{Purpose: llm.PurposeWritingFeedback}},
		{ID: 2, LLMRequestEventData: store.LLMRequestEventData{Purpose: llm.PurposeSpeakingSample}},
		{ID: 3, LLMRequestEventData: store.LLMRequestEventData{Purpose: llm.PurposeWritingFeedback}},
		{ID: 4, LLMRequestEventData: store.LLMRequestEventData{Purpose: llm.PurposeWritingFeedback}},
	}

	assert.Len(t, filterPurpose(events, "", 2), 4, "no filter returns the input")

	got := filterPurpose(events, llm.PurposeWritingFeedback, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	assert.Empty(t, filterPurpose(events, llm.PurposeSpeechSynthesis, 0))
}

func TestPrintModelCost(t *testing.T) {
	var b bytes.Buffer
	printModelCost(&b, []store.LLMModelUsage{
		{Model: "gemini-2.5-pro", Calls: 2, InputTokens: 1_000_000, OutputTokens: 100_000},
		{Model: "local-llama", Calls: 1, InputTokens: 10, OutputTokens: 10},
	})
	out := b.String()

	// 1M input at 1.25 plus 0.1M output at 10.
	assert.Contains(t, out, "$2.25")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: local-llama")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$0.0042", formatCost(0.0042))
	assert.Equal(t, "$1.50", formatCost(1.5))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "ab", truncate("ab", 3))
	assert.Equal(t, "✓", okMark(true))
}
