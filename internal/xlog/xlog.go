/*
Package xlog provides a Logger interface and supporting functions
to support control over debug and warning output.

The Logger interface is simple and it is supported by the log.Logger type.
If the Logger argument of Printf is nil, nothing is
written and the arguments are not even formatted. This allows packages to
keep a debug logger variable that is switched off by setting it to nil.

The package provides in addition a standard logger with levels. Warnings are
written by default; debug messages only if the level has been raised with
SetLevel.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is the interface required by the functions of this package. The
// log.Logger type supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Level controls which messages of the standard logger are written.
type Level int

// Supported levels. Messages with a level above the current level are
// discarded.
const (
	Quiet Level = iota
	Warning
	Debugging
)

var (
	mu    sync.Mutex
	std   Logger = log.New(os.Stderr, "", 0)
	level        = Warning
)

// SetOutput sets the output destination of the standard logger. The prefix
// is used for every line.
func SetOutput(w io.Writer, prefix string) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		std = nil
		return
	}
	std = log.New(w, prefix, 0)
}

// SetLevel sets the level of the standard logger and returns the old one.
func SetLevel(l Level) Level {
	mu.Lock()
	defer mu.Unlock()
	old := level
	level = l
	return old
}

// logger returns the standard logger if the level l is enabled and nil
// otherwise.
func logger(l Level) Logger {
	mu.Lock()
	defer mu.Unlock()
	if l > level {
		return nil
	}
	return std
}

// Warn writes a warning using the standard logger.
func Warn(v ...interface{}) {
	if l := logger(Warning); l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Warnf writes a formatted warning using the standard logger.
func Warnf(format string, v ...interface{}) {
	if l := logger(Warning); l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Debugf writes a formatted debug message if the level is Debugging.
func Debugf(format string, v ...interface{}) {
	if l := logger(Debugging); l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}
