package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.True(t, cfg.API.RetryEnabled)
	assert.Equal(t, 3, cfg.API.MaxRetries)
	assert.Equal(t, "secret", cfg.Webhook.Scheme)
	assert.Equal(t, "127.0.0.1", cfg.Listener.Host)
	assert.Equal(t, 8787, cfg.Listener.Port)
	assert.Equal(t, "/webhook", cfg.Listener.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: https://gateway.internal/api
  api_key: file-key
  max_retries: 5
webhook:
  secret: file-secret
  scheme: hmac
listener:
  port: 9090
log:
  level: debug
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://gateway.internal/api", cfg.API.BaseURL)
	assert.Equal(t, "file-key", cfg.API.APIKey)
	assert.Equal(t, 5, cfg.API.MaxRetries)
	assert.Equal(t, "file-secret", cfg.Webhook.Secret)
	assert.Equal(t, "hmac", cfg.Webhook.Scheme)
	assert.Equal(t, 9090, cfg.Listener.Port)
	// fields not in the file keep their defaults
	assert.Equal(t, "127.0.0.1", cfg.Listener.Host)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a map"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  api_key: file-key
`), 0600))

	t.Setenv("WASENDER_API_KEY", "env-key")
	t.Setenv("WASENDER_RETRY_ENABLED", "false")
	t.Setenv("WASENDER_LISTENER_PORT", "8080")
	t.Setenv("WASENDER_MAX_RETRIES", "junk") // unparseable, ignored

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.API.APIKey)
	assert.False(t, cfg.API.RetryEnabled)
	assert.Equal(t, 8080, cfg.Listener.Port)
	assert.Equal(t, 3, cfg.API.MaxRetries)
}

func TestApplyEnvOverridesReportsChange(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, applyEnvOverrides(cfg))

	t.Setenv("WASENDER_LOG_LEVEL", "trace")
	assert.True(t, applyEnvOverrides(cfg))
	assert.Equal(t, "trace", cfg.Log.Level)

	// same value again is not a change
	assert.False(t, applyEnvOverrides(cfg))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://gateway.internal/api"
	cfg.Webhook.Secret = "s3cret"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.internal/api", loaded.API.BaseURL)
	assert.Equal(t, "s3cret", loaded.Webhook.Secret)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "*****abc", MaskSecret("abc"))
	assert.Equal(t, "*****vwxyz", MaskSecret("abcdefgh-stuvwxyz"))
}
