package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Values(t *testing.T) {
	t.Setenv(APIEndpointEnv, "")
	path := writeConfig(t, `
api:
  base_url: https://staging.example.org/
  timeout: 2500
stub:
  address: 127.0.0.1:9999
  redis:
    address: localhost:6379
    db: 2
logging:
  level: debug
  format: json
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.org", cfg.API.BaseURL)
	assert.Equal(t, 2500, cfg.API.Timeout)
	assert.Equal(t, "127.0.0.1:9999", cfg.Stub.Address)
	assert.Equal(t, "localhost:6379", cfg.Stub.Redis.Address)
	assert.Equal(t, 2, cfg.Stub.Redis.DB)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadFromFile_ShippedConfig(t *testing.T) {
	t.Setenv(APIEndpointEnv, "")

	cfg, err := LoadFromFile(filepath.Join("..", "..", "..", "configs", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 0, cfg.API.Timeout)
	assert.Zero(t, GetDuration(cfg.API.Timeout))
	assert.Empty(t, cfg.Stub.Redis.Address)
}

func TestLoadFromFile_FallbackEndpoint(t *testing.T) {
	t.Setenv(APIEndpointEnv, "")
	path := writeConfig(t, "logging:\n  level: warn\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, ":8080", cfg.Stub.Address)
	assert.Zero(t, cfg.API.Timeout)
}

func TestLoadFromFile_APIEndpointOverride(t *testing.T) {
	t.Setenv(APIEndpointEnv, "http://localhost:8080/")
	path := writeConfig(t, "api:\n  base_url: https://ignored.example.org\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
}

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv(APIEndpointEnv, "")
	t.Setenv("MEMBERSHIP_HOST", "members.example.org")
	path := writeConfig(t, "api:\n  base_url: https://${MEMBERSHIP_HOST}\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://members.example.org", cfg.API.BaseURL)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	t.Setenv(APIEndpointEnv, "")
	tests := []struct {
		name string
		body string
	}{
		{"bad url", "api:\n  base_url: not a url\n"},
		{"negative timeout", "api:\n  timeout: -5\n"},
		{"unknown log level", "logging:\n  level: chatty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, "1.5s", GetDuration(1500).String())
	assert.Zero(t, GetDuration(0))
}
