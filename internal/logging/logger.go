// Package logging is the diagnostic logger of the lister. Diagnostics go to
// stderr so that stdout carries nothing but language lines.
package logging

import (
	"io"
	"log"
	"os"
)

// Logger writes leveled diagnostics. Every level is printed: the lister has
// no verbosity switch, so anything worth logging is worth showing.
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing to w with a time-of-day prefix.
func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", log.Ltime|log.Lmicroseconds)}
}

// Warnf reports a problem that does not stop the program.
func (lg *Logger) Warnf(format string, args ...any) {
	lg.l.Printf("[WARN] "+format, args...)
}

// Errorf reports the failure the program is about to exit with.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.l.Printf("[ERROR] "+format, args...)
}

// std is the package logger used by code without a Logger of its own.
var std = New(os.Stderr)

// SetOutput redirects the package logger and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := std.l.Writer()
	std.l.SetOutput(w)
	return prev
}

// Warnf logs a warning on the package logger.
func Warnf(format string, args ...any) { std.Warnf(format, args...) }

// Errorf logs an error on the package logger.
func Errorf(format string, args ...any) { std.Errorf(format, args...) }
