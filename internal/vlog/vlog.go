// Package vlog carries a context-scoped zerolog.Logger through the codec
// and container packages, the same way eunmann's logctx package threads a
// logger through a call stack: a private context key, a process-wide
// default, and From/With helpers. Nothing in vpack's core API requires a
// context or a logger; callers that don't pass one get a disabled logger
// and pay for none of this.
package vlog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

var (
	defaultLogger zerolog.Logger
	defaultOnce   sync.Once
)

func initDefault() {
	defaultOnce.Do(func() {
		defaultLogger = zerolog.Nop()
	})
}

// Default returns the process-wide logger used when no context logger is
// available.
func Default() zerolog.Logger {
	initDefault()
	return defaultLogger
}

// SetDefault overrides the process-wide default logger. Call it once, from
// main, before any vpack I/O runs.
func SetDefault(l zerolog.Logger) {
	initDefault()
	defaultLogger = l
}

// WithLogger attaches logger to ctx, retrievable later with From.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// From extracts the logger attached to ctx, or the process default if ctx
// is nil or carries none. It never returns a zero-value logger.
func From(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return Default()
}

// Named event tags used consistently across the binary and stream codecs,
// so log aggregation can filter on event without parsing free-text messages.
const (
	EventPageAllocated        = "page_allocated"
	EventBinaryWrite          = "binary_write"
	EventBinaryReadRejected   = "binary_read_rejected"
	EventStreamDecodeRejected = "stream_decode_rejected"
)
