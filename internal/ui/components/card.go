package components

import "github.com/abhisek/ieltsprep/internal/ui/theme"

// ContentWidth returns the inner width used for section cards so long
// passages stay readable on wide terminals.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at content width cw. A
// non-empty title is rendered as the first line.
func Card(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.Heading.Render(title) + "\n" + content
	}
	return theme.Card.Width(cw).Render(body)
}

// ErrorBox renders an inline error message.
func ErrorBox(msg string, cw int) string {
	return theme.ErrorCard.Width(cw).Render(msg)
}
