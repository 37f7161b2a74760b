package writing

// Config holds essay grading settings.
type Config struct {
	// Model overrides the provider's configured model. Empty uses the
	// provider default.
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// DefaultConfig returns the grading defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.5,
	}
}
