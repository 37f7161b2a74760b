// Package speech turns prompt text into audio and plays it.
package speech

import (
	"context"
	"errors"
)

var (
	// ErrNoAudio means the synthesis service returned no usable audio.
	ErrNoAudio = errors.New("Could not generate audio.")

	// ErrPlaybackFailed covers audio that could not be decoded or played.
	ErrPlaybackFailed = errors.New("Failed to play audio.")

	// ErrBusy is returned when a playback is already in flight.
	ErrBusy = errors.New("speech playback already in progress")
)

// Synthesizer converts text to raw PCM samples in the Format it reports.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Format() Format
}

// UserMessage maps a Speak error to the text shown to the candidate.
// ErrBusy maps to the empty string because the request is just ignored.
func UserMessage(err error) string {
	switch {
	case err == nil, errors.Is(err, ErrBusy):
		return ""
	case errors.Is(err, ErrPlaybackFailed):
		return ErrPlaybackFailed.Error()
	default:
		return ErrNoAudio.Error()
	}
}
