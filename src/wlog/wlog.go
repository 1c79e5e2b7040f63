// Package wlog provides the leveled, structured logger the async43
// packages use for tracing a lookup. It is grounded on the teacher's
// CLI logger (src/client/logging.go): an slog.JSONHandler writing
// through a lumberjack.Logger for rotation, falling back to stderr
// when no file is configured.
package wlog

import (
	"io"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls where and how verbosely a Logger writes.
type Config struct {
	// File, when non-empty, is rotated through lumberjack. Empty means stderr.
	File     string
	Level    slog.Level
	MaxSizeMB int
	MaxBackups int
}

// Logger wraps an *slog.Logger with a run identifier generated once per
// Logger by New (a Nop Logger's is empty), the
// way the teacher's DebugLogger stamps every entry so related lines can
// be grep'd back together.
type Logger struct {
	slog  *slog.Logger
	runID string
}

// New builds a Logger from cfg. A zero Config logs at Info level to stderr.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.File != "" {
		maxSize := cfg.MaxSizeMB
		if maxSize == 0 {
			maxSize = 10
		}
		maxBackups := cfg.MaxBackups
		if maxBackups == 0 {
			maxBackups = 5
		}
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     30,
			Compress:   true,
		}
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})
	return &Logger{
		slog:  slog.New(handler),
		runID: ulid.Make().String(),
	}
}

// Nop returns a Logger that discards everything. Core packages default
// to this so they stay pure when the caller doesn't inject a Logger.
func Nop() *Logger {
	return &Logger{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func (l *Logger) with(args []any) []any {
	return append([]any{"run_id", l.runID}, args...)
}

func (l *Logger) Debugf(msg string, args ...any) { l.slog.Debug(msg, l.with(args)...) }
func (l *Logger) Infof(msg string, args ...any)  { l.slog.Info(msg, l.with(args)...) }
func (l *Logger) Warnf(msg string, args ...any)  { l.slog.Warn(msg, l.with(args)...) }
func (l *Logger) Errorf(msg string, args ...any) { l.slog.Error(msg, l.with(args)...) }
