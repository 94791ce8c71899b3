package config

import (
	"os"
	"strconv"
	"strings"
)

// applyEnvOverrides applies runtime environment variables into config.
// It returns true when any value changed so callers can persist updated
// config if they want to.
func applyEnvOverrides(cfg *Config) bool {
	if cfg == nil {
		return false
	}

	changed := false

	setString := func(dst *string, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		if *dst != value {
			*dst = value
			changed = true
		}
	}
	setInt := func(dst *int, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		if *dst != parsed {
			*dst = parsed
			changed = true
		}
	}
	setBool := func(dst *bool, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return
		}
		if *dst != parsed {
			*dst = parsed
			changed = true
		}
	}

	env := func(keys ...string) string {
		for _, key := range keys {
			if value := strings.TrimSpace(os.Getenv(key)); value != "" {
				return value
			}
		}
		return ""
	}

	setString(&cfg.API.BaseURL, env("WASENDER_BASE_URL"))
	setString(&cfg.API.APIKey, env("WASENDER_API_KEY"))
	setString(&cfg.API.PersonalToken, env("WASENDER_PERSONAL_TOKEN"))
	setBool(&cfg.API.RetryEnabled, env("WASENDER_RETRY_ENABLED"))
	setInt(&cfg.API.MaxRetries, env("WASENDER_MAX_RETRIES"))

	setString(&cfg.Webhook.Secret, env("WASENDER_WEBHOOK_SECRET"))
	setString(&cfg.Webhook.Scheme, env("WASENDER_WEBHOOK_SCHEME"))

	setString(&cfg.Listener.Host, env("WASENDER_LISTENER_HOST"))
	setInt(&cfg.Listener.Port, env("WASENDER_LISTENER_PORT"))
	setString(&cfg.Listener.Path, env("WASENDER_LISTENER_PATH"))

	setString(&cfg.Log.Level, env("WASENDER_LOG_LEVEL"))

	return changed
}
