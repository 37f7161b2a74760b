package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is the llm section of the config file.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter" or
	// "mock".
	Provider string `yaml:"provider"`

	Anthropic  AnthropicConfig  `yaml:"anthropic"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	OpenRouter OpenRouterConfig `yaml:"openrouter"`
	Retry      RetryConfig      `yaml:"retry"`

	// Timeout bounds a whole Generate call, retries included.
	Timeout time.Duration `yaml:"timeout"`
}

type AnthropicConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"` // Default: "claude-sonnet"
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gpt-mini"
	BaseURL string `yaml:"base_url"` // Optional. Override for compatible APIs.
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "gemini-flash"
	BaseURL string `yaml:"base_url"` // Optional. Defaults to the public Gemini API.
}

type OpenRouterConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`    // Default: "google/gemini-2.5-flash"
	BaseURL string `yaml:"base_url"` // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig shapes the backoff in WithRetry. MaxAttempts of 1 disables
// retrying.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig selects Gemini with no retries and a 60s timeout.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv is DefaultConfig with IELTSPREP_* overrides applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg with any IELTSPREP_* variables that are set.
func ApplyEnv(cfg *Config) {
	for env, field := range map[string]*string{
		"IELTSPREP_LLM_PROVIDER":       &cfg.Provider,
		"IELTSPREP_ANTHROPIC_API_KEY":  &cfg.Anthropic.APIKey,
		"IELTSPREP_ANTHROPIC_MODEL":    &cfg.Anthropic.Model,
		"IELTSPREP_OPENAI_API_KEY":     &cfg.OpenAI.APIKey,
		"IELTSPREP_OPENAI_MODEL":       &cfg.OpenAI.Model,
		"IELTSPREP_OPENAI_BASE_URL":    &cfg.OpenAI.BaseURL,
		"IELTSPREP_GEMINI_API_KEY":     &cfg.Gemini.APIKey,
		"IELTSPREP_GEMINI_MODEL":       &cfg.Gemini.Model,
		"IELTSPREP_GEMINI_BASE_URL":    &cfg.Gemini.BaseURL,
		"IELTSPREP_OPENROUTER_API_KEY": &cfg.OpenRouter.APIKey,
		"IELTSPREP_OPENROUTER_MODEL":   &cfg.OpenRouter.Model,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}

// wellKnownKeys lists the vendor variables DiscoverConfig looks at, in
// priority order.
var wellKnownKeys = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", "gemini"},
	{"GOOGLE_API_KEY", "gemini"},
	{"API_KEY", "gemini"},
	{"OPENAI_API_KEY", "openai"},
	{"ANTHROPIC_API_KEY", "anthropic"},
	{"OPENROUTER_API_KEY", "openrouter"},
}

// DiscoverConfig returns a default Config for the first vendor API key
// found in the environment. Gemini keys win.
func DiscoverConfig() (Config, bool) {
	for _, wk := range wellKnownKeys {
		k := os.Getenv(wk.env)
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = wk.provider
		*cfg.apiKey(wk.provider) = k
		return cfg, true
	}
	return Config{}, false
}

// apiKey points at the key field for provider, or nil for providers that
// take none.
func (c *Config) apiKey(provider string) *string {
	switch provider {
	case "gemini":
		return &c.Gemini.APIKey
	case "openai":
		return &c.OpenAI.APIKey
	case "anthropic":
		return &c.Anthropic.APIKey
	case "openrouter":
		return &c.OpenRouter.APIKey
	}
	return nil
}

// HasCredential reports whether any provider has an API key configured.
func (c Config) HasCredential() bool {
	for _, p := range []string{"gemini", "openai", "anthropic", "openrouter"} {
		if *c.apiKey(p) != "" {
			return true
		}
	}
	return false
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	switch key := c.apiKey(c.Provider); {
	case c.Provider == "mock":
	case key == nil:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	case *key == "":
		return fmt.Errorf("IELTSPREP_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
