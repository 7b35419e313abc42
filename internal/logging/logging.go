// Package logging builds the process logger and adapts it to the engine's
// Logger interface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Config selects the handler and level of a logger
type Config struct {
	Writer io.Writer
	Level  slog.Leveler
	JSON   bool
	Color  bool
}

// New returns a logger writing to cfg.Writer, stderr by default
func New(cfg Config) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelInfo
	}

	var handler slog.Handler
	switch {
	case cfg.JSON:
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{Level: cfg.Level})
	case cfg.Color:
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	default:
		handler = slog.NewTextHandler(cfg.Writer, &slog.HandlerOptions{Level: cfg.Level})
	}
	return slog.New(handler)
}

// FromSettings builds a logger from the textual level and format settings
// (format "json" or "text")
func FromSettings(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := Config{Writer: w, Level: lvl}
	switch strings.ToLower(format) {
	case "json":
		cfg.JSON = true
	case "", "text":
		cfg.Color = true
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return New(cfg), nil
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// EngineLogger adapts a slog.Logger to the printf-style calculation.Logger
type EngineLogger struct {
	logger *slog.Logger
}

// NewEngineLogger wraps logger; a nil logger uses slog.Default
func NewEngineLogger(logger *slog.Logger) *EngineLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &EngineLogger{logger: logger.With("component", "engine")}
}

func (l *EngineLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *EngineLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *EngineLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *EngineLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
