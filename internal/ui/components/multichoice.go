package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// Mark is the highlight applied to an option once answers are checked.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkWrong
)

// MultiChoice renders one multiple-choice question. It holds no answer
// state of its own; the caller supplies the chosen option and marks.
type MultiChoice struct {
	Number   int
	Question string
	Options  []string
	Chosen   int // -1 when unanswered
	Cursor   int // -1 when the question is not focused
	Marks    []Mark
}

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// View renders the question and its options wrapped to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	qStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width)
	if m.Cursor >= 0 {
		qStyle = qStyle.Foreground(theme.Primary)
	}
	b.WriteString(qStyle.Render(fmt.Sprintf("%d. %s", m.Number, m.Question)))
	b.WriteString("\n")

	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		radio := "( )"
		if i == m.Chosen {
			radio = "(•)"
		}
		prefix := "   "
		if i == m.Cursor {
			prefix = " ▸ "
		}
		line := fmt.Sprintf("%s%s %s) %s", prefix, radio, label, opt)

		mark := MarkNone
		if i < len(m.Marks) {
			mark = m.Marks[i]
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case mark == MarkCorrect:
			style = theme.Correct
			line += "  ✓"
		case mark == MarkWrong:
			style = theme.Incorrect
			line += "  ✗"
		case i == m.Cursor:
			style = theme.Selected
		case m.Cursor < 0 && i != m.Chosen:
			style = theme.Dim
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
