package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logging surface shared by controllers and commands.
// Every entry carries the name of the component that produced it.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps the names accepted by --log-level and LOG_LEVEL.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// LevelFromEnv reads LOG_LEVEL, then DEBUG=1, defaulting to info.
func LevelFromEnv() zerolog.Level {
	if name := os.Getenv("LOG_LEVEL"); name != "" {
		if level, err := ParseLevel(name); err == nil {
			return level
		}
	}
	if os.Getenv("DEBUG") == "1" {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
