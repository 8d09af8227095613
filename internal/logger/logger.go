// Package logger builds the process slog logger from configuration
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	AddSource   bool
}

// Levels lists the accepted level names
func Levels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Formats lists the accepted output formats
func Formats() []string {
	return []string{FormatJSON, FormatText}
}

// LogLevel converts the configured level to slog.Level, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// New creates a logger that writes to w
func New(c Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     c.LogLevel(),
		AddSource: c.AddSource,
	}

	var handler slog.Handler
	if c.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if c.ServiceName != "" {
		logger = logger.With("service", c.ServiceName)
	}
	if c.Version != "" {
		logger = logger.With("version", c.Version)
	}
	return logger
}

// Init builds a stderr logger and installs it as the slog default
func Init(c Config) *slog.Logger {
	logger := New(c, os.Stderr)
	slog.SetDefault(logger)
	return logger
}
