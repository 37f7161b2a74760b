package writing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/abhisek/ieltsprep/internal/llm"
	"github.com/abhisek/ieltsprep/internal/store"
)

// Service grades essays through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
	attempts store.AttemptRepo
}

// NewService creates an essay grading service. attempts may be nil, in
// which case submissions are not recorded.
func NewService(provider llm.Provider, cfg Config, attempts store.AttemptRepo) *Service {
	return &Service{provider: provider, cfg: cfg, attempts: attempts}
}

// Evaluate grades essay against the prompt of task. Essays shorter than
// MinWords fail with ErrEssayTooShort without contacting the provider.
// Every other failure matches ErrFeedbackFailed.
func (s *Service) Evaluate(ctx context.Context, task Task, essay string) (*Feedback, error) {
	words := CountWords(essay)
	if words < MinWords {
		return nil, ErrEssayTooShort
	}

	fb, err := s.grade(ctx, task, essay)
	s.record(ctx, task, essay, words, fb, err)
	if err != nil {
		return nil, &FeedbackError{Err: err}
	}
	return fb, nil
}

func (s *Service) grade(ctx context.Context, task Task, essay string) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeWritingFeedback)

	req := llm.Request{
		System: systemPrompt(task),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMessage(task.Prompt(), essay)},
		},
		Schema:      FeedbackSchema,
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("writing feedback: %w", err)
	}

	var fb Feedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return nil, fmt.Errorf("parse feedback response: %w", err)
	}
	if err := fb.normalize(); err != nil {
		return nil, fmt.Errorf("feedback response: %w", err)
	}
	return &fb, nil
}

func (s *Service) record(ctx context.Context, task Task, essay string, words int, fb *Feedback, gradeErr error) {
	if s.attempts == nil {
		return
	}
	data := store.WritingAttemptData{
		AttemptID: uuid.NewString(),
		Task:      task.Key(),
		WordCount: words,
		Essay:     essay,
		Success:   gradeErr == nil,
	}
	if gradeErr == nil {
		if b, err := json.Marshal(fb); err == nil {
			data.Feedback = string(b)
		}
	} else {
		data.ErrorMessage = gradeErr.Error()
	}
	if err := s.attempts.AppendAttempt(context.WithoutCancel(ctx), data); err != nil {
		log.Printf("writing: record attempt: %v", err)
	}
}

// UserMessage maps an Evaluate error to the text shown to the candidate.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEssayTooShort):
		return ErrEssayTooShort.Error()
	default:
		return ErrFeedbackFailed.Error()
	}
}
