package writing

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ieltsprep/internal/router"
	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/ui/components"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
	wr "github.com/abhisek/ieltsprep/internal/writing"

	"github.com/google/uuid"
)

// Evaluator grades an essay. Implemented by writing.Service.
type Evaluator interface {
	Evaluate(ctx context.Context, task wr.Task, essay string) (*wr.Feedback, error)
}

// WritingScreen implements screen.Screen for the writing section.
type WritingScreen struct {
	evaluator Evaluator
	task      wr.Task
	inputs    map[wr.Task]*components.EssayInput

	feedback     *wr.Feedback
	showFeedback bool
	scroll       int
	errMsg       string
	loading      bool
	requestID    string
	cancel       context.CancelFunc
}

var _ screen.Screen = (*WritingScreen)(nil)
var _ screen.KeyHintProvider = (*WritingScreen)(nil)
var _ screen.Leaver = (*WritingScreen)(nil)

// New creates a WritingScreen with one essay buffer per task.
func New(evaluator Evaluator) *WritingScreen {
	inputs := make(map[wr.Task]*components.EssayInput, len(wr.Tasks()))
	for _, t := range wr.Tasks() {
		in := components.NewEssayInput("Write your "+t.String()+" essay here...", wr.CountWords)
		inputs[t] = &in
	}
	return &WritingScreen{
		evaluator: evaluator,
		task:      wr.Task1,
		inputs:    inputs,
	}
}

func (s *WritingScreen) Init() tea.Cmd {
	return s.input().Focus()
}

func (s *WritingScreen) Title() string {
	return "Writing Practice"
}

func (s *WritingScreen) KeyHints() []layout.KeyHint {
	if s.feedback != nil && s.showFeedback {
		return []layout.KeyHint{
			{Key: "PgUp/PgDn", Description: "Scroll"},
			{Key: "Ctrl+E", Description: "Corrected essay"},
			{Key: "Ctrl+F", Description: "Back to essay"},
			{Key: "Tab", Description: "Switch task"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch task"},
		{Key: "Ctrl+S", Description: "Get feedback"},
	}
	if s.feedback != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+F", Description: "Show feedback"})
	}
	return hints
}

// Task returns the active task.
func (s *WritingScreen) Task() wr.Task {
	return s.task
}

// Essay returns the buffer for task.
func (s *WritingScreen) Essay(t wr.Task) string {
	if in, ok := s.inputs[t]; ok {
		return in.Value()
	}
	return ""
}

// Feedback returns the feedback on display, if any.
func (s *WritingScreen) Feedback() *wr.Feedback {
	return s.feedback
}

// Loading reports whether a submission is in flight.
func (s *WritingScreen) Loading() bool {
	return s.loading
}

// Err returns the inline error message.
func (s *WritingScreen) Err() string {
	return s.errMsg
}

// Leave drops the result and any in-flight submission. Essays are kept.
func (s *WritingScreen) Leave() {
	s.clearResult()
}

func (s *WritingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackMsg:
		return s.handleFeedback(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, s.forward(msg)
}

func (s *WritingScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.switchTask(s.task.Next())

	case "ctrl+s":
		return s, s.submit()

	case "ctrl+e":
		if s.feedback == nil {
			return s, nil
		}
		overlay := NewCorrectedEssay(s.task, s.feedback.CorrectedEssay)
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: overlay}
		}

	case "ctrl+f":
		if s.feedback != nil {
			s.showFeedback = !s.showFeedback
		}
		return s, nil
	}

	if s.feedback != nil && s.showFeedback {
		switch msg.String() {
		case "pgup", "up":
			s.scroll -= scrollStep(msg.String())
			return s, nil
		case "pgdown", "down":
			s.scroll += scrollStep(msg.String())
			return s, nil
		}
		// Typing goes back to the editor.
		s.showFeedback = false
	}

	return s, s.forward(msg)
}

func scrollStep(key string) int {
	if key == "pgup" || key == "pgdown" {
		return 10
	}
	return 1
}

func (s *WritingScreen) switchTask(t wr.Task) tea.Cmd {
	if t == s.task {
		return nil
	}
	s.input().Blur()
	s.task = t
	s.clearResult()
	return s.input().Focus()
}

func (s *WritingScreen) clearResult() {
	s.feedback = nil
	s.showFeedback = false
	s.scroll = 0
	s.errMsg = ""
	s.loading = false
	s.requestID = ""
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *WritingScreen) submit() tea.Cmd {
	if s.loading {
		return nil
	}

	essay := s.input().Value()
	s.feedback = nil
	s.showFeedback = false
	s.scroll = 0
	s.errMsg = ""

	if wr.CountWords(essay) < wr.MinWords {
		s.errMsg = wr.UserMessage(wr.ErrEssayTooShort)
		return nil
	}

	s.loading = true
	s.requestID = uuid.NewString()
	id, task, evaluator := s.requestID, s.task, s.evaluator
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	return func() tea.Msg {
		defer cancel()
		fb, err := evaluator.Evaluate(ctx, task, essay)
		return feedbackMsg{RequestID: id, Task: task, Feedback: fb, Err: err}
	}
}

func (s *WritingScreen) handleFeedback(msg feedbackMsg) (screen.Screen, tea.Cmd) {
	if msg.RequestID == "" || msg.RequestID != s.requestID || msg.Task != s.task {
		return s, nil
	}
	s.loading = false
	s.requestID = ""
	s.cancel = nil

	if msg.Err != nil {
		s.errMsg = wr.UserMessage(msg.Err)
		return s, nil
	}
	s.feedback = msg.Feedback
	s.showFeedback = true
	s.scroll = 0
	return s, nil
}

// forward passes msg to the active editor. Inactive editors are blurred
// and ignore it.
func (s *WritingScreen) forward(msg tea.Msg) tea.Cmd {
	in := s.input()
	updated, cmd := in.Update(msg)
	*in = updated
	return cmd
}

func (s *WritingScreen) input() *components.EssayInput {
	return s.inputs[s.task]
}
