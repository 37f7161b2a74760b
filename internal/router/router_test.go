package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ieltsprep/internal/screen"
	"github.com/abhisek/ieltsprep/internal/section"
)

type stubScreen struct {
	title   string
	initRan bool
	left    int
	msgs    []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) Leave()               { s.left++ }

type resultMsg struct{}

func newSectionRouter() (*Router, map[section.Section]*stubScreen) {
	stubs := map[section.Section]*stubScreen{}
	screens := map[section.Section]screen.Screen{}
	for _, s := range section.All() {
		st := &stubScreen{title: s.Label()}
		stubs[s] = st
		screens[s] = st
	}
	return New(screens, section.Writing), stubs
}

func TestOverlayStack(t *testing.T) {
	r, stubs := newSectionRouter()
	require.Equal(t, 1, r.Depth())
	assert.Equal(t, "Writing", r.Active().Title())

	review := &stubScreen{title: "review"}
	r.Push(review)
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, review, r.Active())
	assert.True(t, review.initRan)
	assert.Same(t, stubs[section.Writing], r.SectionScreen(section.Writing))

	corrected := &stubScreen{title: "corrected"}
	r.Update(ReplaceScreenMsg{Screen: corrected})
	assert.Equal(t, 2, r.Depth())
	assert.Same(t, corrected, r.Active())
	assert.True(t, corrected.initRan)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Writing", r.Active().Title())

	// The section screen itself is never popped.
	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Writing", r.Active().Title())
}

func TestReplaceWithoutOverlaySwapsSectionScreen(t *testing.T) {
	r, _ := newSectionRouter()

	fresh := &stubScreen{title: "fresh writing"}
	r.Replace(fresh)

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, fresh, r.Active())
	assert.Same(t, fresh, r.SectionScreen(section.Writing))
	assert.True(t, fresh.initRan)
}

func TestPushScreenMsg(t *testing.T) {
	r, _ := newSectionRouter()
	overlay := &stubScreen{title: "overlay"}

	r.Update(PushScreenMsg{Screen: overlay})

	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "overlay", r.View(80, 24))
}

func TestInitRunsEverySection(t *testing.T) {
	r, stubs := newSectionRouter()
	r.Init()
	for s, st := range stubs {
		assert.True(t, st.initRan, s.String())
	}
}

func TestSwitchSection(t *testing.T) {
	r, stubs := newSectionRouter()

	r.Update(SwitchSectionMsg{Section: section.Reading})
	require.Equal(t, section.Reading, r.Section())
	assert.Equal(t, "Reading", r.Active().Title())
	assert.Equal(t, 1, stubs[section.Writing].left)

	// Re-selecting the active section does nothing.
	r.Update(SwitchSectionMsg{Section: section.Reading})
	assert.Zero(t, stubs[section.Reading].left)
}

func TestSwitchClosesOverlays(t *testing.T) {
	r, _ := newSectionRouter()
	r.Push(&stubScreen{title: "overlay"})
	require.Equal(t, 2, r.Depth())

	r.Switch(section.Speaking)

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "Speaking", r.Active().Title())
}

func TestKeysOnlyReachActiveScreen(t *testing.T) {
	r, stubs := newSectionRouter()

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	assert.Len(t, stubs[section.Writing].msgs, 1)
	assert.Empty(t, stubs[section.Reading].msgs)
}

func TestResultsReachBackgroundSections(t *testing.T) {
	r, stubs := newSectionRouter()
	r.Switch(section.Listening)

	r.Update(resultMsg{})

	for s, st := range stubs {
		assert.Len(t, st.msgs, 1, s.String())
	}
}
