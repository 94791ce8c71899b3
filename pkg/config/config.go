// Package config loads CLI configuration from a YAML file, applies
// environment overrides and resolves secrets from the OS keyring.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full CLI/daemon configuration. The library packages take
// individual values from here; none of them read files or environment
// variables themselves.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Listener ListenerConfig `yaml:"listener"`
	Log      LogConfig      `yaml:"log"`
}

type APIConfig struct {
	BaseURL       string `yaml:"base_url"`
	APIKey        string `yaml:"api_key"`
	PersonalToken string `yaml:"personal_token"`
	RetryEnabled  bool   `yaml:"retry_enabled"`
	MaxRetries    int    `yaml:"max_retries"`
}

type WebhookConfig struct {
	Secret string `yaml:"secret"`
	// Scheme selects the signature verifier: "secret" (default) or "hmac".
	Scheme string `yaml:"scheme"`
}

type ListenerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			RetryEnabled: true,
			MaxRetries:   3,
		},
		Webhook: WebhookConfig{
			Scheme: "secret",
		},
		Listener: ListenerConfig{
			Host: "127.0.0.1",
			Port: 8787,
			Path: "/webhook",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath is the config file location used when none is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wasender", "config.yaml")
}

// Load reads the YAML file at path (DefaultPath when empty), then applies
// environment overrides and keyring secrets on top. A missing file is not an
// error; defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	resolveSecrets(cfg)

	return cfg, nil
}

// Save writes the configuration back to path (DefaultPath when empty).
// Secrets resolved from the keyring are written as-is; use the keyring
// helpers to avoid persisting them in the file.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
