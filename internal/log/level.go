package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the minimum severity a logger emits
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// LevelNames lists the accepted level names from most to least verbose.
func LevelNames() []string {
	return []string{"debug", "info", "warn", "error"}
}

// String returns the upper-case name slog prints for the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return strings.ToUpper(name)
	}
	return "UNKNOWN"
}

// ToSlogLevel converts the level for slog.HandlerOptions
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MarshalText renders the lower-case name.
func (l Level) MarshalText() ([]byte, error) {
	name, ok := levelNames[l]
	if !ok {
		return nil, fmt.Errorf("unknown log level %d", int(l))
	}
	return []byte(name), nil
}

// UnmarshalText accepts the names from LevelNames and "warning", in any
// case. Unlike ParseLevel it rejects unknown names.
func (l *Level) UnmarshalText(text []byte) error {
	level, ok := lookupLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown log level %q (use %s)", string(text), strings.Join(LevelNames(), ", "))
	}
	*l = level
	return nil
}

// ParseLevel parses a level name. Unknown values fall back to warn, the
// CLI default.
func ParseLevel(s string) Level {
	if level, ok := lookupLevel(s); ok {
		return level
	}
	return LevelWarn
}

func lookupLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelWarn, false
	}
}
