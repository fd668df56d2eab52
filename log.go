package arena

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger replaces the package logger. Scope lifecycle events are
// logged at debug level; cascading disposals at warn level.
// Passing nil restores the discarding logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	defaultLogger.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return defaultLogger.Load()
}

func (c config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}
