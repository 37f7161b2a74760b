package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ieltsprep/internal/ui/theme"
)

// MenuItem is one sidebar entry. Key is its shortcut ("f1").
type MenuItem struct {
	Key    string
	Label  string
	Action func() tea.Cmd
}

// Menu is the section sidebar. It only reacts to its own shortcuts, so it
// can sit beside screens that take free text.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

func (m Menu) index(key string) int {
	for i, item := range m.Items {
		if item.Key != "" && item.Key == key {
			return i
		}
	}
	return -1
}

// Handles reports whether key is one of the menu shortcuts.
func (m Menu) Handles(key string) bool {
	return m.index(key) >= 0
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	i := m.index(key.String())
	if i < 0 {
		return m, nil
	}
	m.Selected = i
	if act := m.Items[i].Action; act != nil {
		return m, act()
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		line := theme.Body.Render("   " + item.Label)
		if i == m.Selected {
			line = theme.Selected.Render(" ▸ " + item.Label)
		}
		b.WriteString(line)
		b.WriteString(" ")
		b.WriteString(theme.Dim.Render(strings.ToUpper(item.Key)))
		b.WriteString("\n\n")
	}
	return b.String()
}
