package components

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// EssayInput wraps bubbles/textarea with a live word count.
type EssayInput struct {
	Model     textarea.Model
	CountFunc func(string) int
}

// NewEssayInput creates an unfocused, unlimited essay editor.
func NewEssayInput(placeholder string, count func(string) int) EssayInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return EssayInput{Model: ta, CountFunc: count}
}

// Focus focuses the editor and returns the cursor blink command.
func (e *EssayInput) Focus() tea.Cmd {
	return e.Model.Focus()
}

// Blur removes focus.
func (e *EssayInput) Blur() {
	e.Model.Blur()
}

// Focused reports whether the editor has focus.
func (e EssayInput) Focused() bool {
	return e.Model.Focused()
}

// SetValue replaces the text.
func (e *EssayInput) SetValue(s string) {
	e.Model.SetValue(s)
}

// Value returns the current text.
func (e EssayInput) Value() string {
	return e.Model.Value()
}

// Words returns the current word count.
func (e EssayInput) Words() int {
	if e.CountFunc == nil {
		return 0
	}
	return e.CountFunc(e.Model.Value())
}

// Update forwards messages to the textarea.
func (e EssayInput) Update(msg tea.Msg) (EssayInput, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// View renders the editor sized to width x height with the word count below.
func (e EssayInput) View(width, height int) string {
	if height < 3 {
		height = 3
	}
	e.Model.SetWidth(width - 2)
	e.Model.SetHeight(height - 3)

	border := theme.Border
	if e.Model.Focused() {
		border = theme.Primary
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(e.Model.View())

	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("Word count: %d", e.Words()))

	return box + "\n" + count
}
