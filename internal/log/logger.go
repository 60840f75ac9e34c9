package log

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/felixgeelhaar/jeff/internal/errors"
)

// Logger provides structured logging with slog
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a new Logger with the given configuration
func New(config Config) *Logger {
	opts := &slog.HandlerOptions{
		Level:     config.Level.ToSlogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch config.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(config.Output.Writer(), opts)
	case FormatText:
		handler = slog.NewTextHandler(config.Output.Writer(), opts)
	default:
		handler = slog.NewJSONHandler(config.Output.Writer(), opts)
	}

	logger := slog.New(handler)
	// JSON entries name their source; text entries stay terse
	if config.Format == FormatJSON {
		if config.ServiceName != "" {
			logger = logger.With("service", config.ServiceName)
		}
		if config.ServiceVersion != "" {
			logger = logger.With("version", config.ServiceVersion)
		}
	}

	return &Logger{
		slog:   logger,
		config: config,
	}
}

// Default creates a logger with default configuration
func Default() *Logger {
	return New(DefaultConfig())
}

// With returns a new Logger with the given attributes added to all log entries
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
	}
}

// WithError adds error details to the logger
// If the chain holds a JeffError, it adds error_code, suggestions, docs_url
// and cause
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}

	var jeffErr *errors.JeffError
	if !stderrors.As(err, &jeffErr) {
		return l.With("error", err.Error())
	}

	args := []any{
		"error", jeffErr.Message,
		"error_code", string(jeffErr.Code),
	}
	if len(jeffErr.Suggestions) > 0 {
		args = append(args, "suggestions", jeffErr.Suggestions)
	}
	if jeffErr.DocsURL != "" {
		args = append(args, "docs_url", jeffErr.DocsURL)
	}
	if jeffErr.Cause != nil {
		args = append(args, "cause", jeffErr.Cause.Error())
	}
	return l.With(args...)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// DebugContext logs a debug message with context
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slog.DebugContext(ctx, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// InfoContext logs an info message with context
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.slog.InfoContext(ctx, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// WarnContext logs a warning message with context
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.slog.WarnContext(ctx, msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// ErrorContext logs an error message with context
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.slog.ErrorContext(ctx, msg, args...)
}

// LogErrorContext logs msg at error level with the details of err.
// A nil err logs nothing.
func (l *Logger) LogErrorContext(ctx context.Context, msg string, err error, args ...any) {
	if err == nil {
		return
	}
	l.WithError(err).ErrorContext(ctx, msg, args...)
}

// Enabled returns whether the logger is enabled for the given level
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.slog.Enabled(ctx, level.ToSlogLevel())
}

// Handler returns the underlying slog.Handler
func (l *Logger) Handler() slog.Handler {
	return l.slog.Handler()
}

// Config returns the logger configuration
func (l *Logger) Config() Config {
	return l.config
}
