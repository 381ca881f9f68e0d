// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"jitter_backend/internal/platform/db"
)

// Config holds every setting the binaries read at start-up.
type Config struct {
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	JWTSecret string `env:"JWT_SECRET"`
	// SearchCaseInsensitive applies to substring search only; handle lookups stay exact.
	SearchCaseInsensitive bool   `env:"SEARCH_CASE_INSENSITIVE" envDefault:"false"`
	SeedFile              string `env:"SEED_FILE" envDefault:"./seed/users.yaml"`

	DB db.Config
}

// Load reads the given .env files (default ".env") into the process
// environment and parses Config from it. Missing .env files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
		slog.Info(".env not found; using system environment variables")
	}
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
