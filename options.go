package doccheck

import (
	"github.com/rs/zerolog"

	"github.com/ygrebnov/doccheck/types"
)

type config struct {
	universe *types.Universe
	logger   zerolog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{universe: types.Default, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures how validators are compiled.
type Option func(*config)

// WithUniverse resolves type names through u instead of types.Default.
func WithUniverse(u *types.Universe) Option {
	return func(c *config) {
		if u != nil {
			c.universe = u
		}
	}
}

// WithLogger sets the logger used for decoration events. Defaults to zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}
