package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/section"
)

// SwitchSectionMsg requests the router to make a section active.
type SwitchSectionMsg struct {
	Section section.Section
}

// PushScreenMsg requests the router to push an overlay screen.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the top overlay.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to replace the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router shows exactly one section screen at a time, plus a stack of
// overlays opened on top of it. Section screens are kept for the life of
// the router so their input survives switching away and back.
type Router struct {
	sections map[section.Section]screen.Screen
	active   section.Section
	overlays []screen.Screen
}

// New creates a router over one screen per section, starting at start.
func New(screens map[section.Section]screen.Screen, start section.Section) *Router {
	return &Router{sections: screens, active: start}
}

// Init runs Init on every section screen.
func (r *Router) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, s := range section.All() {
		if sc, ok := r.sections[s]; ok {
			cmds = append(cmds, sc.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Section returns the active section.
func (r *Router) Section() section.Section {
	return r.active
}

// Switch makes s the active section. Overlays are closed and the screen
// being left gets its Leave hook. Switching to the active section is a
// no-op.
func (r *Router) Switch(s section.Section) tea.Cmd {
	if _, ok := r.sections[s]; !ok || s == r.active {
		return nil
	}
	r.overlays = nil
	if l, ok := r.sections[r.active].(screen.Leaver); ok {
		l.Leave()
	}
	r.active = s
	return nil
}

// Push adds an overlay on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.overlays = append(r.overlays, s)
	return s.Init()
}

// Pop removes the top overlay. No-op when only the section screen is shown.
func (r *Router) Pop() tea.Cmd {
	if len(r.overlays) == 0 {
		return nil
	}
	r.overlays = r.overlays[:len(r.overlays)-1]
	return nil
}

// Replace swaps the top screen for s and calls its Init(). With no
// overlays open this replaces the active section's screen.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if n := len(r.overlays); n > 0 {
		r.overlays[n-1] = s
	} else {
		r.sections[r.active] = s
	}
	return s.Init()
}

// Active returns the top screen: the newest overlay, or the section screen.
func (r *Router) Active() screen.Screen {
	if n := len(r.overlays); n > 0 {
		return r.overlays[n-1]
	}
	return r.sections[r.active]
}

// SectionScreen returns the screen registered for s.
func (r *Router) SectionScreen(s section.Section) screen.Screen {
	return r.sections[s]
}

// Depth returns the number of screens on the stack, counting the active
// section screen.
func (r *Router) Depth() int {
	if r.sections[r.active] == nil {
		return len(r.overlays)
	}
	return 1 + len(r.overlays)
}

// Update handles navigation messages. Input goes to the top screen only;
// every other message also reaches the section screens underneath, so an
// async result is not lost when the user has moved elsewhere.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SwitchSectionMsg:
		return r.Switch(msg.Section)
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	if n := len(r.overlays); n > 0 {
		r.overlays[n-1] = updated
	} else {
		r.sections[r.active] = updated
	}

	if isInput(msg) {
		return cmd
	}

	cmds := []tea.Cmd{cmd}
	for _, s := range section.All() {
		sc, ok := r.sections[s]
		if !ok || sc == active {
			continue
		}
		var c tea.Cmd
		r.sections[s], c = sc.Update(msg)
		cmds = append(cmds, c)
	}
	return tea.Batch(cmds...)
}

func isInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.PasteMsg, tea.MouseMsg:
		return true
	}
	return false
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
