package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port           string `env:"PORT,            default=8080"`
	Env            string `env:"ENV,             default=development"`
	LogLevel       string `env:"LOG_LEVEL,       default=info"`
	IdentitySecret string `env:"IDENTITY_JWT_SECRET"`

	Collaborator CollaboratorConfig
	Redis        RedisConfig
}

// CollaboratorConfig points at the external bill catalog REST API.
type CollaboratorConfig struct {
	BaseURL string        `env:"BILLDESK_BASE_URL, default=http://localhost:5000"`
	Timeout time.Duration `env:"BILLDESK_TIMEOUT,  default=15s"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
