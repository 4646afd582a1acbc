// Package debug provides logging and audio-buffer analysis utilities.
//
// Everything here is control-thread tooling: nothing in this package may be
// called from the real-time render path.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled logging for engine lifecycle and load events.
type Logger struct {
	mu     sync.Mutex
	output io.Writer
	level  LogLevel
	prefix string
}

var defaultLogger = New(os.Stderr, "granule")

func init() {
	defaultLogger.SetLevel(LogLevelWarn)
}

// New creates a new logger instance.
func New(output io.Writer, prefix string) *Logger {
	return &Logger{
		output: output,
		level:  LogLevelInfo,
		prefix: prefix,
	}
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// SetLevel sets the minimum level that gets written.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level || l.output == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.output, "%s [%s] %s: %s\n", ts, level, l.prefix, fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LogLevelDebug, format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LogLevelInfo, format, args...)
}

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LogLevelWarn, format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LogLevelError, format, args...)
}

// Package-level helpers writing to the default logger.

// SetLevel sets the default logger's level.
func SetLevel(level LogLevel) { defaultLogger.SetLevel(level) }

// Debugf logs to the default logger at debug level.
func Debugf(format string, args ...interface{}) { defaultLogger.Debugf(format, args...) }

// Infof logs to the default logger at info level.
func Infof(format string, args ...interface{}) { defaultLogger.Infof(format, args...) }

// Warnf logs to the default logger at warn level.
func Warnf(format string, args ...interface{}) { defaultLogger.Warnf(format, args...) }

// Errorf logs to the default logger at error level.
func Errorf(format string, args ...interface{}) { defaultLogger.Errorf(format, args...) }
