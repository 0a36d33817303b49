// Package config loads the HTTP server configuration from the
// environment. LLM provider settings live in internal/llm, the
// database path in internal/store.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Server holds everything the serve command needs beyond the store
// and the LLM provider.
type Server struct {
	Addr      string
	Mode      string
	JWTSecret string
}

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("config: BARKO_JWT_SECRET is not set")

// Load reads server config from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over .env entries.
func Load() (Server, error) {
	_ = godotenv.Load()

	cfg := Server{
		Addr:      getEnv("BARKO_ADDR", ":8080"),
		Mode:      getEnv("BARKO_MODE", "dev"),
		JWTSecret: os.Getenv("BARKO_JWT_SECRET"),
	}
	if cfg.JWTSecret == "" {
		return cfg, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
