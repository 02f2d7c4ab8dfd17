// Package config provides service configuration and the provider for
// benchmark threshold and ATS profile tables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Session store
	SessionStore      string `json:"session_store,omitempty"`       // "memory" or "redis"
	RedisAddr         string `json:"redis_addr,omitempty"`          // Redis address for the redis store
	SessionTTLMinutes int    `json:"session_ttl_minutes,omitempty"` // Redis session TTL

	// Configuration data documents
	ThresholdsPath  string `json:"thresholds,omitempty"`   // Path to benchmark thresholds JSON
	ATSProfilesPath string `json:"ats_profiles,omitempty"` // Path to ATS profiles JSON

	// Behavior
	Debug    bool `json:"debug,omitempty"`     // Debug logging
	JSONLogs bool `json:"json_logs,omitempty"` // JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.SessionStore != "" && c.SessionStore != "memory" && c.SessionStore != "redis" {
		return fmt.Errorf("config error: 'session_store' must be 'memory' or 'redis'")
	}
	if c.SessionStore == "redis" && c.RedisAddr == "" {
		return fmt.Errorf("config error: 'redis_addr' is required for the redis session store")
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("config error: 'session_ttl_minutes' must be non-negative")
	}
	if c.ThresholdsPath != "" {
		if _, err := os.Stat(c.ThresholdsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: thresholds file not found: %s", c.ThresholdsPath)
		}
	}
	if c.ATSProfilesPath != "" {
		if _, err := os.Stat(c.ATSProfilesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: ats profiles file not found: %s", c.ATSProfilesPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SessionStore == "" {
		result.SessionStore = defaults.SessionStore
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.SessionTTLMinutes == 0 {
		result.SessionTTLMinutes = defaults.SessionTTLMinutes
	}
	if result.ThresholdsPath == "" {
		result.ThresholdsPath = defaults.ThresholdsPath
	}
	if result.ATSProfilesPath == "" {
		result.ATSProfilesPath = defaults.ATSProfilesPath
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultServiceConfig returns the defaults applied when neither the config
// file nor flags set a value.
func DefaultServiceConfig() Config {
	return Config{
		Port:              8080,
		SessionStore:      "memory",
		SessionTTLMinutes: 24 * 60,
	}
}
