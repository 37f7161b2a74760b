package writing

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/ui/components"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
	"github.com/abhisek/ieltsprep/internal/ui/theme"
	wr "github.com/abhisek/ieltsprep/internal/writing"
)

// CorrectedEssayScreen is a read-only overlay showing the examiner's
// corrected version of an essay.
type CorrectedEssayScreen struct {
	task   wr.Task
	essay  string
	scroll int
}

var _ screen.Screen = (*CorrectedEssayScreen)(nil)
var _ screen.KeyHintProvider = (*CorrectedEssayScreen)(nil)

// NewCorrectedEssay creates the overlay for task.
func NewCorrectedEssay(task wr.Task, essay string) *CorrectedEssayScreen {
	return &CorrectedEssayScreen{task: task, essay: essay}
}

func (c *CorrectedEssayScreen) Init() tea.Cmd {
	return nil
}

func (c *CorrectedEssayScreen) Title() string {
	return "Corrected Essay"
}

func (c *CorrectedEssayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CorrectedEssayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "up", "k":
			c.scroll--
		case "down", "j":
			c.scroll++
		case "pgup":
			c.scroll -= 10
		case "pgdown":
			c.scroll += 10
		}
	}
	return c, nil
}

func (c *CorrectedEssayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	header := theme.Title.Render(c.task.String() + ": Corrected Essay")

	body, offset := components.Scroll(layout.Wrap(c.essay, cw), c.scroll, max(height-2, 1))
	c.scroll = offset

	return lipgloss.NewStyle().Padding(0, 2).Render(header + "\n\n" + body)
}
