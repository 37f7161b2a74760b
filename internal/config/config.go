// Package config loads application settings from an optional YAML file,
// a .env file and IELTSPREP_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/ieltsprep/internal/llm"
	"github.com/abhisek/ieltsprep/internal/server"
	"github.com/abhisek/ieltsprep/internal/speaking"
	"github.com/abhisek/ieltsprep/internal/speech"
	"github.com/abhisek/ieltsprep/internal/writing"
)

// Config is the complete application configuration.
type Config struct {
	LLM      llm.Config      `yaml:"llm"`
	Writing  writing.Config  `yaml:"writing"`
	Speaking speaking.Config `yaml:"speaking"`
	Speech   speech.Config   `yaml:"speech"`
	Server   server.Config   `yaml:"server"`

	// DBPath overrides the default database location.
	DBPath string `yaml:"db_path"`

	// Debug enables the TUI log file.
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LLM:      llm.DefaultConfig(),
		Writing:  writing.DefaultConfig(),
		Speaking: speaking.DefaultConfig(),
		Speech:   speech.DefaultConfig(),
		Server:   server.DefaultConfig(),
	}
}

// Gemini models used when gemini serves a section and no model is set.
const (
	geminiWritingModel  = "gemini-pro"
	geminiSpeakingModel = "gemini-flash"
)

// Load builds the configuration. path names a YAML file; empty means the
// default location, which may be absent. A .env file in the working
// directory is loaded first when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	if err := readFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	finalize(&cfg)
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/ieltsprep/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ieltsprep", "config.yaml"), nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	// Standard key names fill in a provider nobody configured explicitly.
	if !cfg.LLM.HasCredential() && os.Getenv("IELTSPREP_LLM_PROVIDER") == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM.Provider = discovered.Provider
			cfg.LLM.Gemini.APIKey = discovered.Gemini.APIKey
			cfg.LLM.OpenAI.APIKey = discovered.OpenAI.APIKey
			cfg.LLM.Anthropic.APIKey = discovered.Anthropic.APIKey
			cfg.LLM.OpenRouter.APIKey = discovered.OpenRouter.APIKey
		}
	}
	llm.ApplyEnv(&cfg.LLM)

	if p := os.Getenv("IELTSPREP_DB"); p != "" {
		cfg.DBPath = p
	}
	if os.Getenv("IELTSPREP_DEBUG") != "" {
		cfg.Debug = true
	}
	if p := os.Getenv("IELTSPREP_AUDIO_PLAYER"); p != "" {
		cfg.Speech.Player = p
	}
	if v := os.Getenv("IELTSPREP_TTS_VOICE"); v != "" {
		cfg.Speech.Voice = v
	}
	if a := os.Getenv("IELTSPREP_SERVER_ADDR"); a != "" {
		cfg.Server.Addr = a
	}
}

// finalize fills values derived from other settings.
func finalize(cfg *Config) {
	if cfg.LLM.Provider == "gemini" {
		if cfg.Writing.Model == "" {
			cfg.Writing.Model = geminiWritingModel
		}
		if cfg.Speaking.Model == "" {
			cfg.Speaking.Model = geminiSpeakingModel
		}
	}
	switch cfg.Speech.CacheDir {
	case "":
		if dir, err := os.UserCacheDir(); err == nil {
			cfg.Speech.CacheDir = filepath.Join(dir, "ieltsprep", "speech")
		}
	case "off":
		cfg.Speech.CacheDir = ""
	}
	// Speech always goes through Gemini, whichever provider grades essays.
	if cfg.Speech.APIKey == "" {
		cfg.Speech.APIKey = cfg.LLM.Gemini.APIKey
	}
	if cfg.Speech.APIKey == "" {
		for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "API_KEY"} {
			if k := os.Getenv(name); k != "" {
				cfg.Speech.APIKey = k
				break
			}
		}
	}
}

// Validate reports a configuration the application cannot start with.
func (c Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}
