// Package guard restores hardware state when a scope ends. Errors during the
// restore cannot be returned to anyone, so they go to a Sink instead.
package guard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Sink receives errors that happened while releasing a Guard
type Sink interface {
	Notify(err error)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(err error)

// Notify satisfies Sink
func (f SinkFunc) Notify(err error) {
	f(err)
}

type logOnError struct {
	mu sync.Mutex
	w  io.Writer
}

// LogOnError writes each error as a line to w
func LogOnError(w io.Writer) Sink {
	return &logOnError{w: w}
}

// LogToStderrOnError writes each error to stderr. This is the process default.
func LogToStderrOnError() Sink {
	return LogOnError(os.Stderr)
}

// LogToStdoutOnError writes each error to stdout
func LogToStdoutOnError() Sink {
	return LogOnError(os.Stdout)
}

func (l *logOnError) Notify(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.w, "error: %s\n", err)
}

// PanicOnError panics with the error
func PanicOnError() Sink {
	return SinkFunc(func(err error) {
		panic(err)
	})
}

// exit is replaced in tests
var (
	osExit = os.Exit
	exit   = osExit
)

// ExitOnError exits the process with code
func ExitOnError(code int) Sink {
	return SinkFunc(func(error) {
		exit(code)
	})
}

// IgnoreOnError discards the error
func IgnoreOnError() Sink {
	return SinkFunc(func(error) {})
}

var (
	defaultMu   sync.RWMutex
	defaultSink = LogToStderrOnError()
)

// SetDefault replaces the process-wide Sink. A nil sink restores logging to stderr.
func SetDefault(s Sink) {
	if s == nil {
		s = LogToStderrOnError()
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultSink = s
}

// Default returns the process-wide Sink
func Default() Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultSink
}

// Notify hands err to the process-wide Sink
func Notify(err error) {
	Default().Notify(err)
}

// ParseSink returns the built-in Sink with the given name: stderr, stdout, panic,
// exit or ignore. exit uses status code 1.
func ParseSink(name string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "stderr":
		return LogToStderrOnError(), nil
	case "stdout":
		return LogToStdoutOnError(), nil
	case "panic":
		return PanicOnError(), nil
	case "exit":
		return ExitOnError(1), nil
	case "ignore":
		return IgnoreOnError(), nil
	default:
		return nil, errors.Errorf("unknown error sink: %s", name)
	}
}
