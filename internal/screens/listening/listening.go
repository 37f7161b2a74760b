package listening

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	lst "github.com/abhisek/ieltsprep/internal/listening"
	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// ListeningScreen shows the "coming soon" notice for the listening section.
type ListeningScreen struct{}

var _ screen.Screen = (*ListeningScreen)(nil)

// New creates a new ListeningScreen.
func New() *ListeningScreen {
	return &ListeningScreen{}
}

func (l *ListeningScreen) Init() tea.Cmd {
	return nil
}

func (l *ListeningScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return l, nil
}

func (l *ListeningScreen) View(width, height int) string {
	msgWidth := min(width-8, 60)
	body := theme.Title.Render("╌╌ "+lst.Title+" ╌╌") + "\n\n" +
		theme.Body.Render(layout.Wrap(lst.Message, msgWidth))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (l *ListeningScreen) Title() string {
	return "Listening Practice"
}
