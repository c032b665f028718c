// Package logger provides the structured logger shared by the vecop CLI and
// HTTP server. All output goes to the diagnostic stream; evaluation results
// never pass through it.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the logging interface used across vecop.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Format selects the record encoding.
type Format string

const (
	FormatAuto   Format = "auto"
	FormatPretty Format = "pretty"
	FormatText   Format = "text"
	FormatJSON   Format = "json"
)

// ParseFormat validates a --log-format value. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatPretty, FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown log format %q (auto, pretty, text, json)", s)
	}
}

// Options configures New.
type Options struct {
	Format Format
	Level  slog.Level
	// Terminal resolves FormatAuto: pretty on a terminal, text otherwise.
	Terminal bool
}

type slogLogger struct {
	l *slog.Logger
}

// New builds a Logger writing to w.
func New(w io.Writer, opts Options) Logger {
	hopts := &slog.HandlerOptions{Level: opts.Level}
	format := opts.Format
	if format == FormatAuto || format == "" {
		format = FormatText
		if opts.Terminal {
			format = FormatPretty
		}
	}
	var h slog.Handler
	switch format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, hopts)
	case FormatPretty:
		h = NewPrettyHandler(w, hopts, opts.Terminal)
	default:
		h = slog.NewTextHandler(w, hopts)
	}
	return FromSlog(slog.New(h))
}

// FromSlog wraps an existing slog.Logger.
func FromSlog(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

// Default logs warnings and errors as text to stderr.
func Default() Logger {
	return New(os.Stderr, Options{Format: FormatText, Level: slog.LevelWarn})
}

// Discard drops every record.
func Discard() Logger {
	return FromSlog(slog.New(slog.DiscardHandler))
}

type loggerKey struct{}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the Logger stored in ctx, or Default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Default()
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// ParseLevel maps debug/info/warn/error to a slog level. Anything else is
// info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
