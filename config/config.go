// Package config turns a flat binding map into lazyseq settings.
//
// Keys are dotted strings (see keys.go). Missing keys keep their defaults;
// present keys of the wrong type are rejected.
package config

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/lazyseq/cache"
	"github.com/on-the-ground/lazyseq/lazyseq"
	"github.com/on-the-ground/lazyseq/shared/helper"
	sharedlog "github.com/on-the-ground/lazyseq/shared/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned when a binding has the wrong type or an unusable value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the settings read from bindings.
type Config struct {
	PinPoolCapacity int
	CachePolicy     cache.Policy
	LogLevel        zapcore.Level
}

// Default returns the settings used when no binding overrides them.
func Default() Config {
	return Config{
		PinPoolCapacity: cache.DefaultCapacity,
		CachePolicy:     cache.CacheAll,
		LogLevel:        zapcore.InfoLevel,
	}
}

// FromBindings overlays bindings on Default.
func FromBindings(bindings map[string]any) (Config, error) {
	cfg := Default()

	capacity, ok, err := helper.Lookup[int](bindings, ConfigPinPoolCapacity)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if ok {
		if capacity < 0 {
			return cfg, fmt.Errorf("%w: %s: %d", ErrInvalidConfig, ConfigPinPoolCapacity, capacity)
		}
		cfg.PinPoolCapacity = capacity
	}

	policy, ok, err := helper.Lookup[string](bindings, ConfigCachePolicy)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if ok {
		if cfg.CachePolicy, err = cache.ParsePolicy(policy); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigCachePolicy, err)
		}
	}

	level, ok, err := helper.Lookup[string](bindings, ConfigLogLevel)
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if ok {
		if cfg.LogLevel, err = zapcore.ParseLevel(level); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, ConfigLogLevel, err)
		}
	}
	return cfg, nil
}

// Logger returns a console logger at the configured level.
func (c Config) Logger() *zap.Logger {
	return sharedlog.New(c.LogLevel)
}

// NewPool returns a dedicated pool of the configured capacity.
func (c Config) NewPool(logger *zap.Logger) (*cache.PinPool, error) {
	return cache.NewPinPool(c.PinPoolCapacity, cache.WithPoolLogger(logger))
}

// ApplyDefault resizes the process-wide pool to the configured capacity.
func (c Config) ApplyDefault() error {
	return cache.SetDefaultCapacity(c.PinPoolCapacity)
}

// Options returns the sequence options matching c. A nil pool leaves the
// process-wide default in place.
func (c Config) Options(pool *cache.PinPool, logger *zap.Logger) []lazyseq.Option {
	return []lazyseq.Option{
		lazyseq.WithPool(pool),
		lazyseq.WithPolicy(c.CachePolicy),
		lazyseq.WithLogger(sharedlog.OrNop(logger)),
	}
}
