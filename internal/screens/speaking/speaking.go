package speaking

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ieltsprep/internal/screen"
	spk "github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
	"github.com/abhisek/ieltsprep/internal/ui/layout"

	"github.com/google/uuid"
)

// SampleGenerator produces a model answer. Implemented by speaking.Service.
type SampleGenerator interface {
	SampleAnswer(ctx context.Context, prompt spk.Prompt) (string, error)
}

// Speaker reads text aloud. Implemented by speech.Playback.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// SpeakingScreen implements screen.Screen for the speaking section.
type SpeakingScreen struct {
	samples SampleGenerator
	speaker Speaker
	part    spk.Part

	answer        string
	loadingAnswer bool
	answerID      string
	cancelAnswer  context.CancelFunc

	speaking    bool
	speechID    string
	cancelSpeak context.CancelFunc

	errMsg string
	scroll int
}

var _ screen.Screen = (*SpeakingScreen)(nil)
var _ screen.KeyHintProvider = (*SpeakingScreen)(nil)
var _ screen.Leaver = (*SpeakingScreen)(nil)

// New creates a SpeakingScreen showing Part 1.
func New(samples SampleGenerator, speaker Speaker) *SpeakingScreen {
	return &SpeakingScreen{
		samples: samples,
		speaker: speaker,
		part:    spk.Part1,
	}
}

func (s *SpeakingScreen) Init() tea.Cmd {
	return nil
}

func (s *SpeakingScreen) Title() string {
	return "Speaking Practice"
}

func (s *SpeakingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-3", Description: "Part"},
		{Key: "H", Description: "Hear question"},
		{Key: "A", Description: "Sample answer"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
	}
}

// Part returns the selected part.
func (s *SpeakingScreen) Part() spk.Part {
	return s.part
}

// Answer returns the sample answer on display.
func (s *SpeakingScreen) Answer() string {
	return s.answer
}

// Speaking reports whether the prompt is being read aloud.
func (s *SpeakingScreen) Speaking() bool {
	return s.speaking
}

// LoadingAnswer reports whether a sample answer is being generated.
func (s *SpeakingScreen) LoadingAnswer() bool {
	return s.loadingAnswer
}

// Err returns the inline error message.
func (s *SpeakingScreen) Err() string {
	return s.errMsg
}

// Leave stops playback, abandons a pending sample answer and clears the
// displayed result.
func (s *SpeakingScreen) Leave() {
	s.clearAnswer()
	if s.cancelSpeak != nil {
		s.cancelSpeak()
		s.cancelSpeak = nil
	}
	s.speaking = false
	s.speechID = ""
}

func (s *SpeakingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sampleMsg:
		return s.handleSample(msg)

	case speechDoneMsg:
		return s.handleSpeechDone(msg)

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SpeakingScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "1", "2", "3":
		part, _ := spk.ParsePart(msg.String())
		s.selectPart(part)
	case "left":
		if s.part > spk.Part1 {
			s.selectPart(s.part - 1)
		}
	case "right":
		if s.part < spk.Part3 {
			s.selectPart(s.part + 1)
		}
	case "h":
		return s, s.hear()
	case "a":
		return s, s.requestSample()
	case "up":
		s.scroll--
	case "down":
		s.scroll++
	case "pgup":
		s.scroll -= 10
	case "pgdown":
		s.scroll += 10
	}
	return s, nil
}

func (s *SpeakingScreen) selectPart(p spk.Part) {
	if p == s.part {
		return
	}
	s.part = p
	s.clearAnswer()
}

func (s *SpeakingScreen) clearAnswer() {
	if s.cancelAnswer != nil {
		s.cancelAnswer()
		s.cancelAnswer = nil
	}
	s.answer = ""
	s.loadingAnswer = false
	s.answerID = ""
	s.errMsg = ""
	s.scroll = 0
}

func (s *SpeakingScreen) prompt() spk.Prompt {
	p, _ := spk.PromptFor(s.part)
	return p
}

func (s *SpeakingScreen) hear() tea.Cmd {
	if s.speaking || s.speaker == nil {
		return nil
	}
	s.speaking = true
	s.errMsg = ""
	s.speechID = uuid.NewString()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelSpeak = cancel
	id, text, speaker := s.speechID, spk.Text(s.prompt()), s.speaker

	return func() tea.Msg {
		defer cancel()
		return speechDoneMsg{RequestID: id, Err: speaker.Speak(ctx, text)}
	}
}

func (s *SpeakingScreen) handleSpeechDone(msg speechDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.RequestID != s.speechID {
		return s, nil
	}
	s.speaking = false
	s.speechID = ""
	s.cancelSpeak = nil
	if m := speech.UserMessage(msg.Err); m != "" {
		s.errMsg = m
	}
	return s, nil
}

func (s *SpeakingScreen) requestSample() tea.Cmd {
	if s.loadingAnswer {
		return nil
	}
	s.answer = ""
	s.errMsg = ""
	s.scroll = 0
	s.loadingAnswer = true
	s.answerID = uuid.NewString()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelAnswer = cancel
	id, part, prompt, samples := s.answerID, s.part, s.prompt(), s.samples

	return func() tea.Msg {
		defer cancel()
		answer, err := samples.SampleAnswer(ctx, prompt)
		return sampleMsg{RequestID: id, Part: part, Answer: answer, Err: err}
	}
}

func (s *SpeakingScreen) handleSample(msg sampleMsg) (screen.Screen, tea.Cmd) {
	if msg.RequestID == "" || msg.RequestID != s.answerID || msg.Part != s.part {
		return s, nil
	}
	s.loadingAnswer = false
	s.answerID = ""
	s.cancelAnswer = nil
	if msg.Err != nil {
		s.errMsg = spk.ErrSampleFailed.Error()
		return s, nil
	}
	s.answer = msg.Answer
	return s, nil
}
