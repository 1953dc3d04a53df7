package source

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Option configures a line source.
type Option func(*options)

type options struct {
	raw         bool
	maxLineSize int
	logger      zerolog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: log.Logger.With().Str("component", "flu.source").Logger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRawLines keeps lines exactly as read. By default lines are trimmed of
// surrounding whitespace and blank lines are skipped.
func WithRawLines() Option {
	return func(o *options) {
		o.raw = true
	}
}

// WithMaxLineSize sets the longest line, in bytes, that can be read.
// Longer lines end the sequence with a logged error. The default is
// bufio.MaxScanTokenSize.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		o.maxLineSize = n
	}
}

// WithLogger sets the logger used to report read errors.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
