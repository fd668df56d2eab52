package arena

import "log/slog"

// config holds the settings applied to arenas created by a stack or scope.
type config struct {
	chunkSize  int
	chunkCache bool
	logger     *slog.Logger
}

// Option configures a Stack, a Scope, or a standalone Arena.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		chunkSize:  DefaultChunkSize,
		chunkCache: true,
	}
	return cfg.with(opts...)
}

func (c config) with(opts ...Option) config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithChunkSize sets the default chunk size of new arenas.
// Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		c.chunkSize = n
	}
}

// WithoutChunkCache makes released chunks go straight to the garbage
// collector instead of the shared chunk cache.
func WithoutChunkCache() Option {
	return func(c *config) {
		c.chunkCache = false
	}
}

// WithLogger sets the logger used for scope lifecycle records.
// A nil logger falls back to the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
