package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Token source selectors for TOKEN_SOURCE.
const (
	TokenSourceLive   = "live"
	TokenSourceStatic = "static"
)

type Config struct {
	ListenAddr  string
	Env         string
	TokenSource string
	CORSOrigins []string
	DatabaseURL string
	Upstream    UpstreamConfig
}

type UpstreamConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Fee     string
}

// LoadFromEnv reads configuration from environment variables with fallback defaults.
// It also loads `.env` if present (for local development).
func LoadFromEnv() (*Config, error) {
	// Load .env if exists, ignore error if no file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, relying on environment variables")
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	timeoutStr := getEnv("UPSTREAM_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT duration: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT duration: %s is negative", timeoutStr)
	}

	source := strings.ToLower(getEnv("TOKEN_SOURCE", TokenSourceLive))
	if source != TokenSourceLive && source != TokenSourceStatic {
		return nil, fmt.Errorf("TOKEN_SOURCE must be %q or %q, got %q", TokenSourceLive, TokenSourceStatic, source)
	}

	return &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":3001"),
		Env:         getEnv("ENV", "dev"),
		TokenSource: source,
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_BASE_URL", "https://api.1inch.dev"),
			// absence is not validated here; the upstream answers 401
			APIKey:  os.Getenv("INCH_API_KEY"),
			Timeout: timeout,
			Fee:     getEnv("UPSTREAM_FEE", "1"),
		},
	}, nil
}

// helper to get env with default fallback
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
