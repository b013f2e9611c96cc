// Package log is the process-wide zerolog logger.
//
// It discards everything until Setup is called.
package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
)

// Setup directs the package logger to w at the named level.
//
// If console is true, events are written in zerolog's human
// readable format instead of JSON.
func Setup(w io.Writer, level string, console bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	mu.Lock()
	pkgLogger = l
	mu.Unlock()
	return nil
}

// Reset restores the no-op logger.
func Reset() {
	mu.Lock()
	pkgLogger = zerolog.Nop()
	mu.Unlock()
}

// Logger returns a copy of the current package logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	l := pkgLogger
	mu.RUnlock()
	return &l
}

// Debug starts a debug level event on the package logger.
func Debug() *zerolog.Event { return Logger().Debug() }

// Info starts an info level event on the package logger.
func Info() *zerolog.Event { return Logger().Info() }

// Warn starts a warn level event on the package logger.
func Warn() *zerolog.Event { return Logger().Warn() }

// Error starts an error level event on the package logger.
func Error() *zerolog.Event { return Logger().Error() }
