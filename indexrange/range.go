// Package indexrange maps logical positions of a lazy sequence onto positions
// of the base collection it reads from.
//
// A Range is an arithmetic progression (start, step, length) over the base
// index space. Slicing a Range produces another Range without touching any
// data, and slicing twice is equivalent to slicing a materialized list twice.
package indexrange

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange is returned when a logical index is outside [0, Len()).
var ErrIndexOutOfRange = errors.New("indexrange: index out of range")

// Range is an immutable mapping from logical positions 0..Len()-1 to base
// positions. The zero value is an empty range.
type Range struct {
	start  int
	step   int
	length int
}

// Full returns the identity range over a collection of length n.
// Negative n yields an empty range.
func Full(n int) Range {
	if n < 0 {
		n = 0
	}
	return Range{start: 0, step: 1, length: n}
}

// Len returns the number of logical positions.
func (r Range) Len() int { return r.length }

// Start returns the base position of logical index 0.
func (r Range) Start() int { return r.start }

// Step returns the distance between consecutive base positions.
func (r Range) Step() int {
	if r.step == 0 {
		return 1
	}
	return r.step
}

// At returns the base position for logical index i.
func (r Range) At(i int) (int, error) {
	if i < 0 || i >= r.length {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, r.length)
	}
	return r.start + i*r.Step(), nil
}

// Slice applies s to r and returns the resulting range. Out of bounds start
// and stop values are clamped, so the result may be empty but is never an
// error; only a zero step is rejected.
func (r Range) Slice(s Spec) (Range, error) {
	start, stop, step, err := s.indices(r.length)
	if err != nil {
		return Range{}, err
	}
	n := count(start, stop, step)
	if n == 0 {
		return Range{start: r.start, step: r.Step() * step, length: 0}, nil
	}
	return Range{
		start:  r.start + start*r.Step(),
		step:   r.Step() * step,
		length: n,
	}, nil
}

// Indices yields (logical, base) position pairs in logical order.
func (r Range) Indices() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		base := r.start
		for i := 0; i < r.length; i++ {
			if !yield(i, base) {
				return
			}
			base += r.Step()
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("range(start=%d, step=%d, len=%d)", r.start, r.Step(), r.length)
}
