package log

import (
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[Logger]

// SetDefaultLogger installs logger for the whole process. The slog
// package-level functions are routed through it as well, so code that
// logs with plain slog ends up in the same stream. A nil logger resets to
// the lazy default.
func SetDefaultLogger(logger *Logger) {
	current.Store(logger)
	if logger != nil {
		slog.SetDefault(logger.slog)
	}
}

// DefaultLogger returns the process-wide logger, creating one from
// DefaultConfig on first use.
func DefaultLogger() *Logger {
	if l := current.Load(); l != nil {
		return l
	}
	current.CompareAndSwap(nil, Default())
	return current.Load()
}

// For returns the default logger tagged with the component that emits
// the entries, e.g. "issues" or "install".
func For(component string) *Logger {
	return DefaultLogger().With("component", component)
}
