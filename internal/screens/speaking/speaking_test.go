package speaking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spk "github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
)

type fakeSamples struct {
	answer string
	err    error
	got    []spk.Prompt
}

func (f *fakeSamples) SampleAnswer(_ context.Context, p spk.Prompt) (string, error) {
	f.got = append(f.got, p)
	return f.answer, f.err
}

type fakeSpeaker struct {
	err   error
	texts []string
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.texts = append(f.texts, text)
	return f.err
}

func press(s string) tea.KeyPressMsg {
	switch s {
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestSpeakingScreen_SelectPart(t *testing.T) {
	s := New(&fakeSamples{}, &fakeSpeaker{})
	assert.Equal(t, spk.Part1, s.Part())

	s.Update(press("2"))
	assert.Equal(t, spk.Part2, s.Part())
	assert.Contains(t, s.View(100, 60), "Describe a memorable journey")

	s.Update(press("right"))
	assert.Equal(t, spk.Part3, s.Part())
	s.Update(press("right"))
	assert.Equal(t, spk.Part3, s.Part(), "stays on the last part")

	s.Update(press("left"))
	assert.Equal(t, spk.Part2, s.Part())
}

func TestSpeakingScreen_SampleAnswer(t *testing.T) {
	samples := &fakeSamples{answer: "My hometown is a coastal city."}
	s := New(samples, &fakeSpeaker{})

	_, cmd := s.Update(press("a"))
	require.NotNil(t, cmd)
	assert.True(t, s.LoadingAnswer())
	assert.Contains(t, s.View(100, 60), "Generating...")

	s.Update(cmd())

	assert.False(t, s.LoadingAnswer())
	assert.Equal(t, "My hometown is a coastal city.", s.Answer())
	assert.Contains(t, s.View(100, 60), "Sample Answer")
	require.Len(t, samples.got, 1)
	assert.Equal(t, spk.Part1, samples.got[0].PromptPart())
}

func TestSpeakingScreen_SampleAnswerFailure(t *testing.T) {
	s := New(&fakeSamples{err: fmt.Errorf("%w: boom", spk.ErrSampleFailed)}, &fakeSpeaker{})

	_, cmd := s.Update(press("a"))
	s.Update(cmd())

	assert.Empty(t, s.Answer())
	assert.Equal(t, "Failed to generate a sample answer.", s.Err())
}

func TestSpeakingScreen_PartSwitchClearsAnswer(t *testing.T) {
	s := New(&fakeSamples{answer: "answer"}, &fakeSpeaker{})

	_, cmd := s.Update(press("a"))
	s.Update(cmd())
	require.NotEmpty(t, s.Answer())

	s.Update(press("3"))
	assert.Empty(t, s.Answer())
	assert.Empty(t, s.Err())
}

func TestSpeakingScreen_StaleSampleDropped(t *testing.T) {
	s := New(&fakeSamples{answer: "answer for part 1"}, &fakeSpeaker{})

	_, cmd := s.Update(press("a"))
	s.Update(press("2"))
	s.Update(cmd())

	assert.Empty(t, s.Answer())
	assert.False(t, s.LoadingAnswer())
}

func TestSpeakingScreen_HearQuestion(t *testing.T) {
	speaker := &fakeSpeaker{}
	s := New(&fakeSamples{}, speaker)

	_, cmd := s.Update(press("h"))
	require.NotNil(t, cmd)
	assert.True(t, s.Speaking())
	assert.Contains(t, s.View(100, 60), "Speaking...")

	// A second press while speaking is ignored.
	_, again := s.Update(press("h"))
	assert.Nil(t, again)

	s.Update(cmd())
	assert.False(t, s.Speaking())
	assert.Empty(t, s.Err())

	p, _ := spk.PromptFor(spk.Part1)
	require.Len(t, speaker.texts, 1)
	assert.Equal(t, spk.Text(p), speaker.texts[0])
}

func TestSpeakingScreen_MissingAudio(t *testing.T) {
	speaker := &fakeSpeaker{err: fmt.Errorf("%w: no inline data", speech.ErrNoAudio)}
	s := New(&fakeSamples{}, speaker)

	_, cmd := s.Update(press("h"))
	s.Update(cmd())

	assert.False(t, s.Speaking())
	assert.Equal(t, "Could not generate audio.", s.Err())
}

func TestSpeakingScreen_BusyIsSilent(t *testing.T) {
	s := New(&fakeSamples{}, &fakeSpeaker{err: speech.ErrBusy})

	_, cmd := s.Update(press("h"))
	s.Update(cmd())

	assert.False(t, s.Speaking())
	assert.Empty(t, s.Err())
}

func TestSpeakingScreen_LeaveClears(t *testing.T) {
	s := New(&fakeSamples{err: errors.New("x")}, &fakeSpeaker{})

	_, cmd := s.Update(press("a"))
	s.Update(cmd())
	require.NotEmpty(t, s.Err())

	s.Update(press("h"))
	s.Leave()

	assert.Empty(t, s.Err())
	assert.False(t, s.Speaking())
	assert.False(t, s.LoadingAnswer())
}
