package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"LISTEN_ADDR", "ENV", "UPSTREAM_BASE_URL", "UPSTREAM_TIMEOUT", "UPSTREAM_FEE", "TOKEN_SOURCE", "CORS_ORIGINS", "INCH_API_KEY", "DATABASE_URL"} {
		// register restore, then clear so getEnv falls back
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.ListenAddr)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, TokenSourceLive, cfg.TokenSource)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "https://api.1inch.dev", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "1", cfg.Upstream.Fee)
	assert.Empty(t, cfg.Upstream.APIKey, "a missing key is not an error")
	assert.Empty(t, cfg.DatabaseURL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("TOKEN_SOURCE", "STATIC")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://swap.example.com ,")
	t.Setenv("INCH_API_KEY", "secret")
	t.Setenv("UPSTREAM_BASE_URL", "http://127.0.0.1:9999")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, TokenSourceStatic, cfg.TokenSource)
	assert.Equal(t, []string{"http://localhost:5173", "https://swap.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "secret", cfg.Upstream.APIKey)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Upstream.BaseURL)
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("TOKEN_SOURCE", "live")
	t.Setenv("UPSTREAM_TIMEOUT", "soon")
	_, err := fromEnv()
	require.Error(t, err)

	t.Setenv("UPSTREAM_TIMEOUT", "1s")
	t.Setenv("TOKEN_SOURCE", "mock")
	_, err = fromEnv()
	require.ErrorContains(t, err, "TOKEN_SOURCE")
}
