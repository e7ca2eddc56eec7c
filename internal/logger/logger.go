// Package logger writes leveled, optionally colored log lines
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	// Log levels from least to most restrictive
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

var levelLabels = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

var levelColors = [...]func(format string, a ...interface{}) string{
	color.CyanString,
	color.BlueString,
	color.YellowString,
	color.RedString,
}

func (l LogLevel) String() string {
	if l >= LevelDebug && l < LevelNone {
		return levelLabels[l]
	}
	return "NONE"
}

// Logger writes "[15:04:05.000 LEVEL] message" lines to its output
type Logger struct {
	mu          sync.Mutex
	out         io.Writer
	useColors   bool
	level       LogLevel
	VerboseMode bool // true when the level is Debug
	now         func() time.Time
}

// New creates a new Logger with the given settings
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}

	return &Logger{
		out:         out,
		useColors:   useColors,
		level:       level,
		VerboseMode: verbose,
		now:         time.Now,
	}
}

// WithLevel sets the log level and returns the logger
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.level = level
	l.VerboseMode = level <= LevelDebug
	return l
}

// SetLevel sets the log level from its name
func (l *Logger) SetLevel(levelStr string) {
	l.WithLevel(ParseLevel(levelStr))
}

// Level returns the current level
func (l *Logger) Level() LogLevel {
	return l.level
}

// Enabled reports whether messages at level would be written
func (l *Logger) Enabled(level LogLevel) bool {
	return level < LevelNone && l.level <= level
}

// ParseLevel converts a level name to LogLevel. Unknown names map to Info.
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}

	prefix := level.String()
	if l.useColors {
		prefix = levelColors[level]("%s", prefix)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s %s] %s\n", l.now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
