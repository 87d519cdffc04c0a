package ginjsonmend

import "github.com/jsonmend/jsonmend/pkg/jsonmend"

const defaultMaxBodyBytes = 1 << 20 // 1 MiB

type config struct {
	maxBodyBytes         int64
	passThroughUnfixable bool
	remediateOpts        []jsonmend.Option
}

func newConfig(opts ...Option) config {
	cfg := config{maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures the RepairBody middleware.
type Option func(*config)

// WithMaxBodyBytes caps how much of the request body is read for repair.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithPassThroughUnfixable forwards an unrepairable body to the handler
// unchanged instead of rejecting the request with 400.
func WithPassThroughUnfixable() Option {
	return func(c *config) {
		c.passThroughUnfixable = true
	}
}

// WithRemediateOptions passes options through to jsonmend.Remediate.
func WithRemediateOptions(opts ...jsonmend.Option) Option {
	return func(c *config) {
		c.remediateOpts = append(c.remediateOpts, opts...)
	}
}
