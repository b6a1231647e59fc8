package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var (
	// ErrUnknownFormat is returned for a format other than text or json.
	ErrUnknownFormat = errors.New("logger: unknown format")
	// ErrUnknownLevel is returned for a level other than debug, info, warn
	// or error.
	ErrUnknownLevel = errors.New("logger: unknown level")
)

// Logger is what the runner and the CLI log through.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config selects the handler.
type Config struct {
	// Level is debug, info, warn or error. Empty means warn.
	Level string
	// Format is text (alias console) or json.
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig is quiet: a default run writes nothing below warn, so
// stderr stays empty and stdout carries only the report.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

type slogLogger struct {
	l *slog.Logger
}

// New builds a logger from cfg.
func New(cfg Config) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "console", "":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	return &slogLogger{l: slog.New(h)}, nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &slogLogger{l: slog.New(slog.DiscardHandler)}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

type holder struct{ Logger }

var defaultLogger atomic.Pointer[holder]

func init() {
	l, _ := New(DefaultConfig())
	defaultLogger.Store(&holder{l})
}

// SetDefault replaces the logger FromContext falls back to.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger.Store(&holder{l})
	}
}

// Default returns the fallback logger.
func Default() Logger {
	return defaultLogger.Load().Logger
}
