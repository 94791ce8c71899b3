// Package logger provides category-tagged structured logging for the CLI and
// listener on top of zerolog. The library packages (api, events, webhook,
// client) do not log; this package exists for the executable surfaces.
package logger

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = newConsoleLogger(zerolog.InfoLevel)
)

func newConsoleLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// SetLevel adjusts verbosity. Accepted: "debug", "info", "warn", "error".
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return
	}
	mu.Lock()
	log = log.Level(parsed)
	mu.Unlock()
}

func emit(level zerolog.Level, component, msg string, fields map[string]interface{}) {
	mu.RLock()
	l := log
	mu.RUnlock()

	event := l.WithLevel(level).Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// DebugC logs a debug message for a component.
func DebugC(component, msg string) { emit(zerolog.DebugLevel, component, msg, nil) }

// InfoC logs an info message for a component.
func InfoC(component, msg string) { emit(zerolog.InfoLevel, component, msg, nil) }

// WarnC logs a warning for a component.
func WarnC(component, msg string) { emit(zerolog.WarnLevel, component, msg, nil) }

// ErrorC logs an error for a component.
func ErrorC(component, msg string) { emit(zerolog.ErrorLevel, component, msg, nil) }

// DebugCF logs a debug message with structured fields.
func DebugCF(component, msg string, fields map[string]interface{}) {
	emit(zerolog.DebugLevel, component, msg, fields)
}

// InfoCF logs an info message with structured fields.
func InfoCF(component, msg string, fields map[string]interface{}) {
	emit(zerolog.InfoLevel, component, msg, fields)
}

// WarnCF logs a warning with structured fields.
func WarnCF(component, msg string, fields map[string]interface{}) {
	emit(zerolog.WarnLevel, component, msg, fields)
}

// ErrorCF logs an error with structured fields.
func ErrorCF(component, msg string, fields map[string]interface{}) {
	emit(zerolog.ErrorLevel, component, msg, fields)
}
