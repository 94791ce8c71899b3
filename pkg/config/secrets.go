package config

import (
	"strings"

	"github.com/zalando/go-keyring"
)

const keyringService = "wasender"

type secretAccessor struct {
	Key string // keyring entry name
	Get func(*Config) string
	Set func(*Config, string)
}

var secretAccessors = []secretAccessor{
	{
		Key: "api-key",
		Get: func(c *Config) string { return c.API.APIKey },
		Set: func(c *Config, v string) { c.API.APIKey = v },
	},
	{
		Key: "personal-token",
		Get: func(c *Config) string { return c.API.PersonalToken },
		Set: func(c *Config, v string) { c.API.PersonalToken = v },
	},
	{
		Key: "webhook-secret",
		Get: func(c *Config) string { return c.Webhook.Secret },
		Set: func(c *Config, v string) { c.Webhook.Secret = v },
	},
}

// resolveSecrets fills empty secret fields from the OS keyring. Values
// already set (file or environment) win; the keyring is the fallback so
// tokens never have to live in the config file.
func resolveSecrets(cfg *Config) {
	for _, accessor := range secretAccessors {
		if accessor.Get(cfg) != "" {
			continue
		}
		value, err := keyring.Get(keyringService, accessor.Key)
		if err != nil {
			continue // keyring unavailable or entry absent
		}
		if value = strings.TrimSpace(value); value != "" {
			accessor.Set(cfg, value)
		}
	}
}

// StoreSecret writes one secret to the OS keyring. Known names: "api-key",
// "personal-token", "webhook-secret".
func StoreSecret(name, value string) error {
	return keyring.Set(keyringService, name, value)
}

// DeleteSecret removes a secret from the OS keyring.
func DeleteSecret(name string) error {
	return keyring.Delete(keyringService, name)
}

// SecretNames lists the keyring entries this package manages.
func SecretNames() []string {
	names := make([]string, 0, len(secretAccessors))
	for _, accessor := range secretAccessors {
		names = append(names, accessor.Key)
	}
	return names
}

// MaskSecret renders a secret for display, keeping only the last few
// characters.
func MaskSecret(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 5 {
		return "*****" + value
	}
	return "*****" + value[len(value)-5:]
}
