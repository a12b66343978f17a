// Package logger holds the process-wide structured logger used by jplot.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// L is the global logger instance. It discards all output until Init is
// called.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// Formats accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool      // If false, all logging is discarded
	Level   string    // debug, info, warn or error. Default: info
	Format  string    // text (tint console output) or json. Default: text
	Output  io.Writer // Default: os.Stderr
	NoColor bool      // Disable colour even on a terminal
}

// ParseLevel maps a level name onto a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("logger: unknown level %q", s)
	}
	return l, nil
}

// New builds a logger for opts without installing it.
func New(opts Options) (*slog.Logger, error) {
	if !opts.Enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch opts.Format {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), nil
	case "", FormatText:
		return slog.New(tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    opts.NoColor || !isTerminal(out),
		})), nil
	default:
		return nil, fmt.Errorf("logger: unknown format %q", opts.Format)
	}
}

// Init configures L and the slog default. Call from main before any log
// calls.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	L = l
	slog.SetDefault(l)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
