package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"port": 9090,
		"session_store": "memory",
		"debug": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.json")
	assert.Error(t, err)

	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"port": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Port: 8080, SessionStore: "memory"}
	assert.NoError(t, valid.Validate())

	bad := Config{Port: 70000}
	assert.Error(t, bad.Validate())

	bad = Config{SessionStore: "postgres"}
	assert.Error(t, bad.Validate())

	bad = Config{SessionStore: "redis"} // missing redis_addr
	assert.Error(t, bad.Validate())

	bad = Config{SessionTTLMinutes: -1}
	assert.Error(t, bad.Validate())

	bad = Config{ThresholdsPath: "/nonexistent/thresholds.json"}
	assert.Error(t, bad.Validate())
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(DefaultServiceConfig())

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "memory", merged.SessionStore)
	assert.Equal(t, 24*60, merged.SessionTTLMinutes)
}
