// Copyright 2026 Marcelo Cantos
// SPDX-License-Identifier: Apache-2.0

// Package ctxlog carries a structured logger in a context.
//
// Records go to stderr through a slog text handler. The level defaults to
// WARN and nothing in a normal run logs above DEBUG, so by default the only
// stderr output is the program's diagnostics. MICROSH_LOG_LEVEL (DEBUG,
// INFO, WARN, ERROR) overrides any level set from configuration.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable that selects the log level.
const EnvLevel = "MICROSH_LOG_LEVEL"

type loggerKey struct{}

// LevelVar is shared by every logger built by this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when the context carries no logger.
var DefaultLogger = NewLogger(os.Stderr)

func init() {
	LevelVar.Set(slog.LevelWarn)
	if lvl, ok := ParseLevel(os.Getenv(EnvLevel)); ok {
		LevelVar.Set(lvl)
	}
}

// NewLogger returns a text logger writing to w at LevelVar.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: LevelVar,
	}))
}

// SetLevel applies a configured level name unless the environment variable
// is set. Unknown or empty names leave the level unchanged.
func SetLevel(name string) {
	if _, ok := ParseLevel(os.Getenv(EnvLevel)); ok {
		return
	}
	if lvl, ok := ParseLevel(name); ok {
		LevelVar.Set(lvl)
	}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// New returns a context carrying logger, or DefaultLogger if logger is nil.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the context's logger, or DefaultLogger.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}
	return logger
}

func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}
