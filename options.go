package mibparser

import (
	"io"
	"log/slog"
)

// Option configures Parse.
type Option func(*config)

type config struct {
	logger      *slog.Logger
	prettyPrint bool
	treeOutput  io.Writer
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithPrettyPrint dumps the generic parse tree before reduction.
// The dump goes to standard error unless WithTreeOutput overrides the
// destination. It has no effect on the returned value or on
// success/failure.
func WithPrettyPrint() Option {
	return func(c *config) { c.prettyPrint = true }
}

// WithTreeOutput redirects the pretty-print dump. Implies
// WithPrettyPrint.
func WithTreeOutput(w io.Writer) Option {
	return func(c *config) {
		c.prettyPrint = true
		c.treeOutput = w
	}
}
