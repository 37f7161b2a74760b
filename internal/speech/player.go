package speech

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Player plays a complete WAV file and returns when playback ends.
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// CommandPlayer plays audio through an external command. The WAV is piped
// on stdin, or written to a temp file when the command cannot read stdin.
type CommandPlayer struct {
	Path      string
	Args      []string
	NeedsFile bool
}

type playerSpec struct {
	name      string
	args      []string
	needsFile bool
}

// Known players in detection order.
var players = []playerSpec{
	{name: "paplay"},
	{name: "aplay", args: []string{"-q", "-"}},
	{name: "afplay", needsFile: true},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-"}},
}

// DetectPlayer returns a CommandPlayer for name, or for the first known
// player on PATH when name is empty.
func DetectPlayer(name string) (*CommandPlayer, error) {
	for _, p := range players {
		if name != "" && p.name != name {
			continue
		}
		path, err := exec.LookPath(p.name)
		if err != nil {
			if name != "" {
				return nil, fmt.Errorf("audio player %q: %w", name, err)
			}
			continue
		}
		return &CommandPlayer{Path: path, Args: p.args, NeedsFile: p.needsFile}, nil
	}
	if name != "" {
		// Unknown name: run it as-is with the WAV on stdin.
		path, err := exec.LookPath(name)
		if err != nil {
			return nil, fmt.Errorf("audio player %q: %w", name, err)
		}
		return &CommandPlayer{Path: path}, nil
	}
	return nil, fmt.Errorf("no audio player found (tried paplay, aplay, afplay, ffplay)")
}

func (p *CommandPlayer) Play(ctx context.Context, wav []byte) error {
	args := p.Args
	var stdin *bytes.Reader

	if p.NeedsFile {
		f, err := os.CreateTemp("", "ieltsprep-*.wav")
		if err != nil {
			return fmt.Errorf("create temp audio file: %w", err)
		}
		defer os.Remove(f.Name())
		if _, err := f.Write(wav); err != nil {
			f.Close()
			return fmt.Errorf("write temp audio file: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close temp audio file: %w", err)
		}
		args = append(append([]string{}, args...), f.Name())
	} else {
		stdin = bytes.NewReader(wav)
	}

	cmd := exec.CommandContext(ctx, p.Path, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w: %s", p.Path, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
