// Package logger writes leveled, prefixed console log lines in the
// "[PREFIX] [LEVEL] message" format used across the service.
package logger

import (
	"errors"
	"io"
	"log"
	"sync"

	"github.com/beka-birhanu/vinom-pathfinder/config"
)

// ErrEmptyPrefix is returned by New when no prefix is given.
var ErrEmptyPrefix = errors.New("logger prefix is empty")

// Logger writes colored log lines for one component.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
	mu     sync.Mutex
}

// New creates a Logger that tags every line with prefix, colored with color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		w = io.Discard
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", l.color, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", config.ColorYellow, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", config.ColorRed, msg)
}

func (l *Logger) write(level, color, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s] [%s]%s %s", color, l.prefix, level, config.ColorReset, msg)
}
