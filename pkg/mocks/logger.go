package mocks

import (
	"fmt"
	"sync"

	"github.com/user/instantfilm/pkg/ports"
)

// Logger records formatted messages per level (for test verification).
type Logger struct {
	mu     *sync.Mutex
	prefix string

	entries *[]LogEntry
}

// LogEntry is one recorded message.
type LogEntry struct {
	Level   ports.LogLevel
	Message string
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]LogEntry{}}
}

func (l *Logger) record(level ports.LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	text := fmt.Sprintf(msg, args...)
	if l.prefix != "" {
		text = "[" + l.prefix + "] " + text
	}
	*l.entries = append(*l.entries, LogEntry{Level: level, Message: text})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record(ports.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record(ports.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record(ports.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record(ports.LevelError, msg, args...) }

// WithComponent returns a logger sharing the same record.
func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{mu: l.mu, prefix: component, entries: l.entries}
}

// Entries returns the messages recorded at level.
func (l *Logger) Entries(level ports.LogLevel) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range *l.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
