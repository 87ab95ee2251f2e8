// Leveled logging on stderr, shared by all parts of the program.

package status

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
	LogLevelCritical
)

// Logger prints messages at or above its level.  Thread-safe, though the
// program is sequential; the lock keeps the API honest if that changes.
type Logger struct {
	mu     sync.Mutex
	level  LogLevel
	stderr io.Writer
}

// MT: Constant after initialization, thread-safe.
var defaultLogger = &Logger{level: LogLevelWarning, stderr: os.Stderr}

func Default() *Logger {
	return defaultLogger
}

func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) SetStderr(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stderr = w
}

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level >= l.level && l.stderr != nil {
		fmt.Fprintln(l.stderr, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LogLevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...any) {
	l.logf(LogLevelInfo, format, args...)
}

func (l *Logger) Warningf(format string, args ...any) {
	l.logf(LogLevelWarning, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LogLevelError, format, args...)
}

func Infof(format string, args ...any) {
	defaultLogger.Infof(format, args...)
}

func Warningf(format string, args ...any) {
	defaultLogger.Warningf(format, args...)
}

func Errorf(format string, args ...any) {
	defaultLogger.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	defaultLogger.logf(LogLevelCritical, format, args...)
	os.Exit(1)
}
