// Package screen defines what the app shell needs from a section screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ieltsprep/internal/ui/layout"
)

// Screen is one section's body. The shell draws header, sidebar and
// footer around whatever View returns.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens that drop transient state (results,
// errors) when the user navigates away. Typed input survives.
type Leaver interface {
	Leave()
}
