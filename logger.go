package cudf

import (
	"context"
	"log/slog"
	"os"

	"github.com/DonnieKim411/cudf/types"
)

// Logger wraps slog.Logger with cudf-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithColumn adds a column name field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// WithType adds a type id field to the logger.
func (l *Logger) WithType(id types.TypeID) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", id.String()),
	}
}

// WithRows adds a row count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogDescribe logs a table describe operation.
func (l *Logger) LogDescribe(ctx context.Context, columns int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "describe failed",
			"columns", columns,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "describe completed",
			"columns", columns,
		)
	}
}

// LogSnapshot logs a table snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, columns, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"columns", columns,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot completed",
			"columns", columns,
			"bytes", bytes,
		)
	}
}
