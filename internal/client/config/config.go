package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// ServerURL is the base URL of the embridge backend.
	ServerURL string `env:"EMBRIDGE_SERVER_URL, default=http://localhost:8080"`
	// TokenPath overrides the token slot location. Empty means the default
	// slot under the user's config directory.
	TokenPath string `env:"EMBRIDGE_TOKEN_PATH"`
}

// Load reads client configuration from environment variables.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
