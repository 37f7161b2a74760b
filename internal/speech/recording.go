package speech

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/abhisek/ieltsprep/internal/llm"
	"github.com/abhisek/ieltsprep/internal/store"
)

// RecordingSynthesizer stores one LLM event per synthesis call, so TTS
// usage shows up next to feedback and sample answers in `llm list`.
type RecordingSynthesizer struct {
	inner Synthesizer
	model string
	repo  store.EventRepo
}

// WithRecording wraps s. A nil repo returns s unchanged.
func WithRecording(s Synthesizer, model string, repo store.EventRepo) Synthesizer {
	if repo == nil {
		return s
	}
	return &RecordingSynthesizer{inner: s, model: model, repo: repo}
}

func (r *RecordingSynthesizer) Format() Format { return r.inner.Format() }

func (r *RecordingSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	pcm, err := r.inner.Synthesize(ctx, text)

	data := store.LLMRequestEventData{
		Provider:    "gemini",
		Model:       r.model,
		Purpose:     llm.PurposeSpeechSynthesis,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: text,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	} else {
		data.ResponseBody = fmt.Sprintf("%d bytes PCM (%.1fs)", len(pcm), r.Format().Duration(len(pcm)))
	}
	if logErr := r.repo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		log.Printf("speech: record synthesis: %v", logErr)
	}
	return pcm, err
}
