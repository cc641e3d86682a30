// Package logging builds the slog.Logger used by the kwargs tool.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error"}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// New creates a logger writing to w. It does not touch the global logger.
func New(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(formatStr) {
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	case "text", "":
		handler = slog.NewTextHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", formatStr)
	}
	return slog.New(handler), nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be one of %s", s, strings.Join(Levels, ", "))
}
