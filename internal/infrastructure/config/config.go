package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	External ExternalConfig
}

type DatabaseConfig struct {
	DSN   string `env:"DATABASE_DSN, default=host=localhost user=postgres password=postgres dbname=bankclient port=5432 sslmode=disable"`
	Debug bool   `env:"DB_DEBUG,     default=false"`
}

type ExternalConfig struct {
	// BaseURL of the external user directory. Empty means the client's
	// built-in default endpoint.
	BaseURL string `env:"EXTERNAL_API_BASE_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// IsDevelopment reports whether the process runs in a development environment.
// Controls pretty logging and whether the Swagger UI is mounted.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
