package speech

import (
	"log"
	"time"

	"github.com/abhisek/ieltsprep/internal/store"
)

// Config holds speech synthesis and playback settings.
type Config struct {
	APIKey  string        `yaml:"-"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Voice   string        `yaml:"voice"`
	Timeout time.Duration `yaml:"timeout"`

	// Player names the audio command ("aplay", "paplay", "afplay",
	// "ffplay"). Empty picks the first one found on PATH.
	Player string `yaml:"player"`

	// CacheDir stores synthesized audio. Empty disables the cache.
	CacheDir string `yaml:"cache_dir"`
}

// DefaultConfig returns the speech defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://generativelanguage.googleapis.com",
		Model:   "gemini-2.5-flash-preview-tts",
		Voice:   "Kore",
		Timeout: 60 * time.Second,
	}
}

// NewSynthesizer builds the Gemini synthesizer from cfg. Calls that reach
// the API are recorded in repo when it is non-nil, and the disk cache sits
// in front when cfg.CacheDir is set. A cache that cannot be created is
// skipped with a warning.
func NewSynthesizer(cfg Config, repo store.EventRepo) (Synthesizer, error) {
	g, err := NewGeminiSynthesizer(cfg)
	if err != nil {
		return nil, err
	}
	synth := WithRecording(g, cfg.Model, repo)
	if cfg.CacheDir == "" {
		return synth, nil
	}
	c, err := NewCachedSynthesizer(synth, cfg.CacheDir, cfg.Voice)
	if err != nil {
		log.Printf("speech: %v", err)
		return synth, nil
	}
	return c, nil
}

// New assembles a Playback from cfg. Without an API key the returned
// Playback reports ErrNoAudio on every Speak.
func New(cfg Config, repo store.EventRepo) *Playback {
	synth, err := NewSynthesizer(cfg, repo)
	if err != nil {
		log.Printf("speech: %v", err)
	}
	return NewPlayback(synth, func() (Player, error) {
		return DetectPlayer(cfg.Player)
	})
}
