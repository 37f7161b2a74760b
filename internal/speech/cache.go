package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// CachedSynthesizer keeps synthesized PCM on disk so a prompt is only
// synthesized once per voice.
type CachedSynthesizer struct {
	inner Synthesizer
	dir   string
	voice string
	mu    sync.Mutex
}

// NewCachedSynthesizer wraps inner with a cache rooted at dir.
func NewCachedSynthesizer(inner Synthesizer, dir, voice string) (*CachedSynthesizer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create speech cache: %w", err)
	}
	return &CachedSynthesizer{inner: inner, dir: dir, voice: voice}, nil
}

func (c *CachedSynthesizer) Format() Format { return c.inner.Format() }

func (c *CachedSynthesizer) key(text string) string {
	h := sha256.Sum256([]byte(c.voice + ":" + text))
	return hex.EncodeToString(h[:16])
}

func (c *CachedSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	path := filepath.Join(c.dir, c.key(text)+".pcm")
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have filled it while we waited.
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	pcm, err := c.inner.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, pcm, 0o644); err != nil {
		log.Printf("speech: write cache %s: %v", path, err)
	}
	return pcm, nil
}
