package genogo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/genogo/model"
)

// Logger wraps slog.Logger with genogo-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLocus adds a locus field to the logger.
func (l *Logger) WithLocus(locus model.Locus) *Logger {
	return &Logger{
		Logger: l.Logger.With("locus", locus.String()),
	}
}

// WithSource adds a source-id field to the logger.
func (l *Logger) WithSource(source model.SourceID) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", uint8(source)),
	}
}

// LogInsert logs an insert/merge operation.
func (l *Logger) LogInsert(locus model.Locus, entries int, err error) {
	if err != nil {
		l.Error("insert failed",
			"locus", locus.String(),
			"entries", entries,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"locus", locus.String(),
			"entries", entries,
		)
	}
}

// LogBatchInsert logs a bulk ingestion.
func (l *Logger) LogBatchInsert(count int, err error) {
	if err != nil {
		l.Error("batch insert failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Info("batch insert completed",
			"count", count,
		)
	}
}

// LogIntern logs interner growth milestones.
func (l *Logger) LogIntern(size int) {
	l.Debug("interner grew",
		"distinct_strings", size,
	)
}
