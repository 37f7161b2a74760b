package reading

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rd "github.com/abhisek/ieltsprep/internal/reading"
	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/ui/components"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// ReadingScreen implements screen.Screen for the reading quiz.
type ReadingScreen struct {
	quiz     *rd.Quiz
	question int
	scroll   int
	follow   bool // bring the focused question into view on next render
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)

// New creates a ReadingScreen over quiz.
func New(quiz *rd.Quiz) *ReadingScreen {
	return &ReadingScreen{quiz: quiz}
}

func (r *ReadingScreen) Init() tea.Cmd {
	return nil
}

func (r *ReadingScreen) Title() string {
	return "Reading Practice"
}

func (r *ReadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Question"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Check answers"},
	}
}

// Quiz returns the quiz behind the screen.
func (r *ReadingScreen) Quiz() *rd.Quiz {
	return r.quiz
}

// Question returns the focused question index.
func (r *ReadingScreen) Question() int {
	return r.question
}

func (r *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch k := kmsg.String(); k {
	case "up", "k":
		r.question = max(r.question-1, 0)
		r.follow = true
	case "down", "j":
		r.question = min(r.question+1, r.quiz.Len()-1)
		r.follow = true
	case "left", "h":
		r.moveOption(-1)
	case "right", "l":
		r.moveOption(1)
	case "a", "b", "c", "d":
		_ = r.quiz.Select(r.question, int(k[0]-'a'))
	case "enter":
		r.quiz.Submit()
	case "pgup":
		r.scroll -= 10
	case "pgdown":
		r.scroll += 10
	}
	return r, nil
}

// moveOption changes the answer to the focused question by delta. An
// unanswered question starts at the first option.
func (r *ReadingScreen) moveOption(delta int) {
	n := len(r.quiz.Passage().Questions[r.question].Options)
	cur, ok := r.quiz.Selected(r.question)
	next := 0
	if ok {
		next = max(0, min(cur+delta, n-1))
	}
	_ = r.quiz.Select(r.question, next)
}

func (r *ReadingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := r.quiz.Passage()

	head := components.Card(p.Title, layout.Wrap(p.Text, cw-4), cw) + "\n\n" +
		theme.Heading.Render("Questions") + "\n"

	var questions []string
	for i, q := range p.Questions {
		chosen := -1
		if o, ok := r.quiz.Selected(i); ok {
			chosen = o
		}
		cursor := -1
		if i == r.question {
			cursor = max(chosen, 0)
		}
		marks := make([]components.Mark, len(q.Options))
		for o := range q.Options {
			switch r.quiz.OptionState(i, o) {
			case rd.OptionCorrect:
				marks[o] = components.MarkCorrect
			case rd.OptionWrong:
				marks[o] = components.MarkWrong
			}
		}
		questions = append(questions, components.MultiChoice{
			Number:   i + 1,
			Question: q.Text,
			Options:  q.Options,
			Chosen:   chosen,
			Cursor:   cursor,
			Marks:    marks,
		}.View(cw))
	}

	foot := components.NewButton("Check Answers", "Enter", true).View()
	if r.quiz.Submitted() {
		foot += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("Score: %s", r.quiz.Result()))
	}

	content := head + strings.Join(questions, "\n") + "\n" + foot
	if r.follow {
		r.followFocus(head, questions, height)
		r.follow = false
	}

	var body string
	body, r.scroll = components.Scroll(content, r.scroll, height)
	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}

// followFocus adjusts the scroll offset so the focused question is on
// screen.
func (r *ReadingScreen) followFocus(head string, questions []string, height int) {
	if height <= 0 || len(questions) == 0 {
		return
	}
	top := lipgloss.Height(head) - 1
	for i := 0; i < r.question; i++ {
		top += lipgloss.Height(questions[i]) + 1
	}
	bottom := top + lipgloss.Height(questions[r.question])
	if top < r.scroll {
		r.scroll = top
	}
	if bottom > r.scroll+height {
		r.scroll = bottom - height
	}
}
