package cli

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string        `env:"SCOREKEEPER_SERVER"  envDefault:"http://localhost:8080"`
	Output    string        `env:"SCOREKEEPER_OUTPUT"  envDefault:"text"`
	Timeout   time.Duration `env:"SCOREKEEPER_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns a Config from the environment, falling back to
// built-in defaults when a variable does not parse
func DefaultConfig() *Config {
	var c Config
	if err := env.Parse(&c); err != nil {
		return &Config{
			ServerURL: "http://localhost:8080",
			Output:    "text",
			Timeout:   10 * time.Second,
		}
	}
	return &c
}
