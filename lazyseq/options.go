package lazyseq

import (
	"github.com/on-the-ground/lazyseq/cache"
	"go.uber.org/zap"
)

type options struct {
	pool   *cache.PinPool
	policy *cache.Policy
	logger *zap.Logger
}

// Option configures a Sequence at construction. Sequences derived by Map,
// Slice or Clone inherit their source's settings unless overridden.
type Option func(*options)

// WithPool pins computed values into pool instead of the process-wide default.
func WithPool(pool *cache.PinPool) Option {
	return func(o *options) {
		if pool != nil {
			o.pool = pool
		}
	}
}

// WithPolicy sets which computed values are cached.
func WithPolicy(policy cache.Policy) Option {
	return func(o *options) {
		o.policy = &policy
	}
}

// WithLogger sets the logger for sequence lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
