package logger

import (
	"io"
	"log"
	"os"
)

// Logger is a leveled logger whose Debug output is gated by verbose mode.
type Logger struct {
	verbose bool
	debug   *log.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = newLogger(false, os.Stderr)
}

// newLogger creates a logger writing to output, with Debug gated by
// verbose.
func newLogger(verbose bool, output io.Writer) *Logger {
	return &Logger{
		verbose: verbose,
		debug:   log.New(output, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

// SetVerbose enables or disables verbose logging.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// Debug logs a debug message, shown only when verbose logging is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.debug.Printf(format, args...)
	}
}

// SetVerbose enables or disables verbose logging on the default logger.
func SetVerbose(verbose bool) {
	defaultLogger.SetVerbose(verbose)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}
