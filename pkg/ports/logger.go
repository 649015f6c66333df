// Package ports defines the interfaces between the painting core and its
// collaborators: logging, files, metadata extraction, codecs and fonts.
package ports

import (
	"fmt"
	"strings"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota // per-photo geometry and stage details
	LevelInfo                  // batch and server progress
	LevelWarn                  // a skipped resource or debug output
	LevelError                 // a failed photo, request or resource
	LevelQuiet                 // nothing is written
)

var levelNames = [...]string{"debug", "info", "warn", "error", "quiet"}

// String returns the lower-case level name.
func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelQuiet {
		return "unknown"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name. Unknown names yield LevelInfo.
func ParseLogLevel(s string) LogLevel {
	if l, ok := lookupLevel(s); ok {
		return l
	}
	return LevelInfo
}

// UnmarshalText lets configuration files name the level.
func (l *LogLevel) UnmarshalText(text []byte) error {
	parsed, ok := lookupLevel(string(text))
	if !ok {
		return fmt.Errorf("unknown log level %q", text)
	}
	*l = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func lookupLevel(s string) (LogLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	for i, name := range levelNames {
		if name == s {
			return LogLevel(i), true
		}
	}
	return LevelInfo, false
}

// Logger writes leveled messages. msg is a translatable message key in
// fmt syntax; args fill its verbs after translation.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that tags messages with component.
	WithComponent(component string) Logger
}
