package server

import "time"

// Config holds HTTP API settings.
type Config struct {
	Addr         string `yaml:"addr"`
	AllowOrigins string `yaml:"allow_origins"`

	// RateLimit requests per RateWindow per client, counted over a
	// sliding window.
	RateLimit  int           `yaml:"rate_limit"`
	RateWindow time.Duration `yaml:"rate_window"`

	// DevErrors adds the underlying error to error responses.
	DevErrors bool `yaml:"dev_errors"`
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:         "127.0.0.1:8080",
		AllowOrigins: "*",
		RateLimit:    30,
		RateWindow:   time.Minute,
	}
}
