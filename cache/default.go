package cache

import "sync"

var (
	defaultOnce sync.Once
	defaultPool *PinPool
)

// Default returns the process-wide pool used by sequences that were not given
// one explicitly. It is created on first use with DefaultCapacity.
func Default() *PinPool {
	defaultOnce.Do(func() {
		defaultPool, _ = NewPinPool(DefaultCapacity)
	})
	return defaultPool
}

// SetDefaultCapacity reconfigures the process-wide pool.
func SetDefaultCapacity(capacity int) error {
	return Default().Reconfigure(capacity)
}
