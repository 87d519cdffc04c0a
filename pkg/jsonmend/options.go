package jsonmend

// defaultMaxIterations bounds the convergence loop. Each iteration runs the
// full pass pipeline once; in practice a fixed point is reached in one or
// two iterations, and the cap guards against pathological oscillation.
const defaultMaxIterations = 5

type config struct {
	maxIterations int
	constraint    ManifestConstraint
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxIterations: defaultMaxIterations,
		constraint:    DefaultManifestConstraint(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a single remediation call.
type Option func(*config)

// WithMaxIterations overrides the pass-pipeline iteration cap. Values below
// one are ignored.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxIterations = n
		}
	}
}

// WithManifestConstraint replaces the rule set RemediateManifest applies to
// the parsed manifest.
func WithManifestConstraint(mc ManifestConstraint) Option {
	return func(c *config) {
		c.constraint = mc
	}
}
