package cache

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// IndexCache is the per-sequence cache. Entries map a logical index to a pin
// ticket in a shared PinPool and are only as alive as the pin they refer to.
// It is safe for concurrent use; racing misses on one index only compute the
// value more than once.
type IndexCache struct {
	pool    *PinPool
	policy  Policy
	tickets cmap.ConcurrentMap[int, Ticket]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

func shardIndex(i int) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	return uint32(xxhash.Sum64(b[:]))
}

// NewIndexCache returns an empty cache pinning into pool under policy.
func NewIndexCache(pool *PinPool, policy Policy) *IndexCache {
	return &IndexCache{
		pool:    pool,
		policy:  policy,
		tickets: cmap.NewWithCustomShardingFunction[int, Ticket](shardIndex),
	}
}

// Get returns the value cached at index i, or computes it. A computed value
// is pinned and remembered when the policy admits it. Errors from compute
// are returned as is and nothing is cached.
func (c *IndexCache) Get(i int, compute func() (any, error)) (any, error) {
	if t, ok := c.tickets.Get(i); ok {
		if v, ok := c.pool.Resolve(t); ok {
			c.hits.Add(1)
			return v, nil
		}
		c.tickets.RemoveCb(i, func(_ int, current Ticket, exists bool) bool {
			return exists && current == t
		})
	}

	c.misses.Add(1)
	v, err := compute()
	if err != nil {
		return nil, err
	}
	if c.policy.Admits(v) {
		if t := c.pool.Pin(v); t != 0 {
			c.tickets.Set(i, t)
		}
	}
	return v, nil
}

// Pool returns the pool backing c.
func (c *IndexCache) Pool() *PinPool { return c.pool }

// Policy returns the admission policy of c.
func (c *IndexCache) Policy() Policy { return c.policy }

// IndexStats is a snapshot of an IndexCache.
type IndexStats struct {
	Hits   uint64
	Misses uint64

	// Entries counts recorded tickets, stale ones included.
	Entries int
}

// Stats returns a snapshot of the cache counters.
func (c *IndexCache) Stats() IndexStats {
	return IndexStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.tickets.Count(),
	}
}
