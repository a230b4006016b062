// Package cache holds computed sequence values.
//
// A PinPool is a bounded FIFO of strong holds shared by any number of
// sequences. Each pin is identified by a ticket; tickets grow monotonically
// and the resident pins always form one contiguous run of tickets, so a ticket
// is valid exactly while it is not older than the oldest resident pin.
//
// An IndexCache belongs to a single sequence and maps logical indices to
// tickets. It never owns a value: once the pool drops a pin, every cache
// entry pointing at it goes stale and the value is recomputed on next access.
package cache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// DefaultCapacity is the capacity of the process-wide pool.
const DefaultCapacity = 10_000

var (
	// ErrInvalidCapacity is returned for negative pool capacities.
	ErrInvalidCapacity = errors.New("cache: capacity must not be negative")

	// ErrUnknownPolicy is returned by ParsePolicy for unrecognised names.
	ErrUnknownPolicy = errors.New("cache: unknown policy")
)

// Ticket identifies one pin. The zero Ticket never resolves.
type Ticket uint64

type pin struct {
	ticket   Ticket
	value    any
	pinnedAt time.Time
}

// PinPool is a bounded FIFO of strong holds. It is safe for concurrent use.
type PinPool struct {
	mu        sync.Mutex
	slots     []pin
	next      Ticket // ticket of the next pin
	low       Ticket // oldest resident ticket
	evictions uint64
	logger    *zap.Logger
	now       func() time.Time
}

// PoolOption configures a PinPool.
type PoolOption func(*PinPool)

// WithPoolLogger sets the logger used for eviction and reconfiguration events.
func WithPoolLogger(logger *zap.Logger) PoolOption {
	return func(p *PinPool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithClock overrides the time source used to stamp pins.
func WithClock(now func() time.Time) PoolOption {
	return func(p *PinPool) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPinPool returns an empty pool holding at most capacity values.
// A zero capacity pool pins nothing.
func NewPinPool(capacity int, opts ...PoolOption) (*PinPool, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	p := &PinPool{
		slots:  make([]pin, capacity),
		next:   1,
		low:    1,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Pin takes a strong hold of v and returns its ticket. When the pool is full
// the oldest hold is dropped first. A zero capacity pool returns the zero
// Ticket.
func (p *PinPool) Pin(v any) Ticket {
	p.mu.Lock()
	defer p.mu.Unlock()

	capacity := Ticket(len(p.slots))
	if capacity == 0 {
		return 0
	}
	if p.next-p.low == capacity {
		p.evictOldest()
	}
	t := p.next
	p.slots[t%capacity] = pin{ticket: t, value: v, pinnedAt: p.now()}
	p.next++
	return t
}

// evictOldest drops the oldest hold. p.mu must be held.
func (p *PinPool) evictOldest() {
	capacity := Ticket(len(p.slots))
	p.slots[p.low%capacity] = pin{}
	p.logger.Debug("evicted pinned value", zap.Uint64("ticket", uint64(p.low)))
	p.low++
	p.evictions++
}

// Resolve returns the value pinned under t, if it is still resident.
func (p *PinPool) Resolve(t Ticket) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t == 0 || t < p.low || t >= p.next {
		return nil, false
	}
	slot := p.slots[t%Ticket(len(p.slots))]
	if slot.ticket != t {
		return nil, false
	}
	return slot.value, true
}

// Reconfigure rebuilds the pool with a new capacity, keeping the most recent
// min(capacity, Len()) holds and dropping the oldest excess. Every sequence
// sharing the pool observes the new capacity.
func (p *PinPool) Reconfigure(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	oldCap := len(p.slots)
	resident := p.next - p.low
	keep := min(resident, Ticket(capacity))
	slots := make([]pin, capacity)
	low := p.next - keep
	for t := low; t < p.next; t++ {
		slots[t%Ticket(capacity)] = p.slots[t%Ticket(oldCap)]
	}
	dropped := resident - keep

	p.slots = slots
	p.low = low
	p.evictions += uint64(dropped)

	p.logger.Info("reconfigured pin pool",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", capacity),
		zap.Uint64("dropped", uint64(dropped)),
	)
	return nil
}

// Len returns the number of resident holds.
func (p *PinPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int(p.next - p.low)
}

// Cap returns the pool capacity.
func (p *PinPool) Cap() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}

// PoolStats is a point-in-time snapshot of a PinPool.
type PoolStats struct {
	Capacity  int
	Resident  int
	Pinned    uint64 // total pins since creation
	Evictions uint64 // holds dropped by capacity pressure or reconfiguration

	// Residency spans the pin times of the oldest and newest resident holds.
	// It is the zero TimeSpan when the pool is empty.
	Residency timespan.TimeSpan
}

// Stats returns a snapshot of the pool counters.
func (p *PinPool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := PoolStats{
		Capacity:  len(p.slots),
		Resident:  int(p.next - p.low),
		Pinned:    uint64(p.next - 1),
		Evictions: p.evictions,
	}
	if stats.Resident > 0 {
		capacity := Ticket(len(p.slots))
		oldest := p.slots[p.low%capacity].pinnedAt
		newest := p.slots[(p.next-1)%capacity].pinnedAt
		stats.Residency = timespan.BetweenTimes(oldest, newest)
	}
	return stats
}
