package cbitset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cbitset-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSlot adds a slot field to the logger.
func (l *Logger) WithSlot(slot int) *Logger {
	return &Logger{
		Logger: l.Logger.With("slot", slot),
	}
}

// WithSize adds a size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogAcquire logs a slot acquisition.
func (l *Logger) LogAcquire(ctx context.Context, slot int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "acquire failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "slot acquired",
			"slot", slot,
		)
	}
}

// LogRelease logs a slot release.
func (l *Logger) LogRelease(ctx context.Context, slot int, err error) {
	if err != nil {
		l.WarnContext(ctx, "release failed",
			"slot", slot,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "slot released",
			"slot", slot,
		)
	}
}

// LogExhausted logs a non-blocking acquire that found no free slot.
func (l *Logger) LogExhausted(ctx context.Context, inUse int) {
	l.WarnContext(ctx, "pool exhausted",
		"in_use", inUse,
	)
}
