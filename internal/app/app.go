package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rd "github.com/abhisek/ieltsprep/internal/reading"
	"github.com/abhisek/ieltsprep/internal/router"
	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/screens/listening"
	"github.com/abhisek/ieltsprep/internal/screens/reading"
	"github.com/abhisek/ieltsprep/internal/screens/speaking"
	"github.com/abhisek/ieltsprep/internal/screens/writing"
	"github.com/abhisek/ieltsprep/internal/section"
	"github.com/abhisek/ieltsprep/internal/ui/components"
	"github.com/abhisek/ieltsprep/internal/ui/layout"
)

// Options carries the services the screens depend on.
type Options struct {
	Evaluator writing.Evaluator
	Samples   speaking.SampleGenerator
	Speaker   speaking.Speaker

	// Quiz defaults to a fresh quiz over the built-in passage.
	Quiz *rd.Quiz

	// Status is shown on the right of the header, e.g. the model name.
	Status string

	Start section.Section

	// LogPath receives log output while the TUI owns the terminal. Empty
	// discards it.
	LogPath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	menu   components.Menu
	status string
	width  int
	height int
}

// newAppModel builds one screen per section and the sidebar menu.
func newAppModel(opts Options) AppModel {
	quiz := opts.Quiz
	if quiz == nil {
		quiz = rd.NewQuiz(rd.AIPassage)
	}
	if !opts.Start.Valid() {
		opts.Start = section.Writing
	}

	screens := map[section.Section]screen.Screen{
		section.Writing:   writing.New(opts.Evaluator),
		section.Speaking:  speaking.New(opts.Samples, opts.Speaker),
		section.Reading:   reading.New(quiz),
		section.Listening: listening.New(),
	}

	items := make([]components.MenuItem, 0, len(section.All()))
	for i, s := range section.All() {
		items = append(items, components.MenuItem{
			Key:   fmt.Sprintf("f%d", i+1),
			Label: s.Label(),
			Action: func() tea.Cmd {
				return switchTo(s)
			},
		})
	}
	menu := components.NewMenu(items)
	menu.Selected = int(opts.Start)

	return AppModel{
		router: router.New(screens, opts.Start),
		menu:   menu,
		status: opts.Status,
	}
}

func switchTo(s section.Section) tea.Cmd {
	return func() tea.Msg {
		return router.SwitchSectionMsg{Section: s}
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		k := msg.String()
		switch k {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "ctrl+left":
			return m, switchTo(m.router.Section().Prev())
		case "ctrl+right":
			return m, switchTo(m.router.Section().Next())
		}
		if m.menu.Handles(k) {
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	m.menu.Selected = int(m.router.Section())
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	sidebar := "\n" + m.menu.View()
	contentWidth := m.width - layout.SidebarWidth - 1
	content := layout.JoinSidebar(sidebar, m.router.View(contentWidth, contentHeight), m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "F1-F4", Description: "Section"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.LogPath != "" {
		f, err := tea.LogToFile(opts.LogPath, "ieltsprep")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
