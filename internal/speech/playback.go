package speech

import (
	"context"
	"fmt"
	"sync"
)

// Playback synthesizes text and plays it once. It owns the audio output,
// which is opened on first use and reused afterwards. At most one
// playback runs at a time; overlapping requests fail fast with ErrBusy.
type Playback struct {
	synth     Synthesizer
	newPlayer func() (Player, error)

	once      sync.Once
	player    Player
	playerErr error

	mu       sync.Mutex
	speaking bool
}

// NewPlayback creates a Playback. newPlayer is called at most once, on
// the first Speak.
func NewPlayback(synth Synthesizer, newPlayer func() (Player, error)) *Playback {
	return &Playback{synth: synth, newPlayer: newPlayer}
}

// Speaking reports whether a playback is in flight.
func (p *Playback) Speaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speaking
}

func (p *Playback) output() (Player, error) {
	p.once.Do(func() {
		p.player, p.playerErr = p.newPlayer()
	})
	return p.player, p.playerErr
}

// Speak synthesizes text and blocks until it has played. The speaking
// flag is set for the duration and cleared on every exit path.
func (p *Playback) Speak(ctx context.Context, text string) error {
	p.mu.Lock()
	if p.speaking {
		p.mu.Unlock()
		return ErrBusy
	}
	p.speaking = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.speaking = false
		p.mu.Unlock()
	}()

	if p.synth == nil {
		return fmt.Errorf("%w: speech synthesis is not configured", ErrNoAudio)
	}

	pcm, err := p.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	if len(pcm) == 0 {
		return fmt.Errorf("%w: empty audio", ErrNoAudio)
	}

	wav, err := EncodeWAV(pcm, p.synth.Format())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackFailed, err)
	}

	out, err := p.output()
	if err != nil {
		return fmt.Errorf("%w: open audio output: %w", ErrPlaybackFailed, err)
	}
	if err := out.Play(ctx, wav); err != nil {
		return fmt.Errorf("%w: %w", ErrPlaybackFailed, err)
	}
	return nil
}
