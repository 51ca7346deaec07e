package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetLevel enables debug output when level is "debug". Any other value keeps
// info and above.
func SetLevel(level string) {
	debugEnabled.Store(strings.EqualFold(level, "debug"))
}

// DebugEnabled reports whether debug logging is on.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Logger provides key-value logging on stderr. Stdout is reserved for command
// output and the MCP protocol.
type Logger struct {
	prefix string
	logger *log.Logger
}

// NewLogger creates a new logger with a prefix
func NewLogger(prefix string) *Logger {
	return NewLoggerTo(os.Stderr, prefix)
}

// NewLoggerTo creates a logger writing to w.
func NewLoggerTo(w io.Writer, prefix string) *Logger {
	return &Logger{
		prefix: prefix,
		logger: log.New(w, fmt.Sprintf("[%s] ", prefix), log.Ldate|log.Ltime),
	}
}

// Info logs an informational message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.logWithKV("INFO", msg, keysAndValues...)
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.logWithKV("WARN", msg, keysAndValues...)
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.logWithKV("ERROR", msg, keysAndValues...)
}

// Debug logs only when the debug level is enabled.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if !DebugEnabled() {
		return
	}
	l.logWithKV("DEBUG", msg, keysAndValues...)
}

func (l *Logger) logWithKV(level, msg string, keysAndValues ...interface{}) {
	var b strings.Builder
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Printf("[%s] %s%s", level, msg, b.String())
}
