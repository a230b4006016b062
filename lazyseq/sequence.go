package lazyseq

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/on-the-ground/lazyseq/cache"
	"github.com/on-the-ground/lazyseq/indexrange"
	"github.com/on-the-ground/lazyseq/pipeline"
	"github.com/on-the-ground/lazyseq/shared/helper"
	"go.uber.org/zap"
)

// Sequence is a read-only view of a base collection through a range and a
// pipeline. Elements are computed on first access and cached per instance.
//
// A Sequence is safe for concurrent reads as long as its Source is.
type Sequence[T any] struct {
	id     string
	st     state
	values *cache.IndexCache
}

// state is what derived sequences share with their source. The cache is
// deliberately absent: every instance gets a fresh one.
type state struct {
	base   source
	rng    indexrange.Range
	pipe   *pipeline.Pipeline
	pool   *cache.PinPool
	policy cache.Policy
	logger *zap.Logger
}

// derivable is implemented by every Sequence instantiation.
type derivable interface {
	state() (state, bool)
}

func (s *Sequence[T]) state() (state, bool) {
	if s == nil {
		return state{}, false
	}
	return s.st, true
}

func build[T any](st state, opts []Option) *Sequence[T] {
	o := options{pool: st.pool, logger: st.logger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = cache.Default()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.policy != nil {
		st.policy = *o.policy
	}
	st.pool, st.logger = o.pool, o.logger

	s := &Sequence[T]{
		id:     uuid.NewString(),
		st:     st,
		values: cache.NewIndexCache(st.pool, st.policy),
	}
	st.logger.Debug("created sequence",
		zap.String("id", s.id),
		zap.Int("len", st.rng.Len()),
		zap.Int("pipeline", st.pipe.Len()),
		zap.Stringer("range", st.rng),
	)
	return s
}

func fromSource(base source, pipe *pipeline.Pipeline) state {
	return state{
		base:   base,
		rng:    indexrange.Full(base.Len()),
		pipe:   pipe,
		policy: cache.CacheAll,
	}
}

// New returns a Sequence over src with the identity pipeline.
func New[T any](src Source[T], opts ...Option) (*Sequence[T], error) {
	if src == nil {
		return nil, fmt.Errorf("lazyseq: %w: got nil", ErrNotSequence)
	}
	return build[T](fromSource(erased[T]{src: src}, pipeline.New(nil)), opts), nil
}

// NewMapped returns a Sequence over src whose elements are fn(item).
func NewMapped[B, T any](src Source[B], fn func(B) T, opts ...Option) (*Sequence[T], error) {
	if src == nil {
		return nil, fmt.Errorf("lazyseq: %w: got nil", ErrNotSequence)
	}
	if fn == nil {
		return nil, fmt.Errorf("lazyseq: %w", ErrNotCallable)
	}
	return build[T](fromSource(erased[B]{src: src}, pipeline.New(pipeline.Typed(fn))), opts), nil
}

// FromSlice returns a Sequence over items. The slice is shared, not copied.
func FromSlice[T any](items []T, opts ...Option) *Sequence[T] {
	return build[T](fromSource(erased[T]{src: NewSliceSource(items)}, pipeline.New(nil)), opts)
}

// Map returns a Sequence whose elements are fn applied to the elements of
// src. The result shares src's base collection and range, extends a copy of
// its pipeline, and starts with an empty cache.
func Map[T, U any](src *Sequence[T], fn func(T) U, opts ...Option) (*Sequence[U], error) {
	if src == nil {
		return nil, fmt.Errorf("lazyseq: %w: got nil", ErrNotSequence)
	}
	pipe, err := src.st.pipe.Extend(pipeline.Typed(fn))
	if err != nil {
		return nil, fmt.Errorf("lazyseq: %w", err)
	}
	st := src.st
	st.pipe = pipe
	return build[U](st, opts), nil
}

// Clone returns a Sequence equal to s with an empty cache.
func (s *Sequence[T]) Clone(opts ...Option) *Sequence[T] {
	return build[T](s.st, opts)
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return s.st.rng.Len() }

// IsEmpty reports whether s has no elements.
func (s *Sequence[T]) IsEmpty() bool { return s.Len() == 0 }

// Slice returns the sub-sequence selected by spec. Nothing is read or
// computed; only the range is derived. Out of bounds values clamp to a
// possibly empty sequence. A zero step fails with ErrZeroStep.
func (s *Sequence[T]) Slice(spec indexrange.Spec) (*Sequence[T], error) {
	rng, err := s.st.rng.Slice(spec)
	if err != nil {
		return nil, fmt.Errorf("lazyseq: slice %s: %w", spec, err)
	}
	st := s.st
	st.rng = rng
	return build[T](st, nil), nil
}

// At returns the element at logical index i, computing and caching it on
// first access. Indices outside [0, Len()) fail with ErrIndexOutOfRange; an
// item whose type a map func cannot accept fails with ErrInputType.
func (s *Sequence[T]) At(i int) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return s.values.Get(i, func() (any, error) {
			return s.compute(i)
		})
	})
}

func (s *Sequence[T]) compute(i int) (any, error) {
	bi, err := s.st.rng.At(i)
	if err != nil {
		return nil, err
	}
	raw, err := s.st.base.at(bi)
	if err != nil {
		return nil, err
	}
	return s.st.pipe.TryApply(raw)
}

// Base returns the base collection. Every sequence derived from s returns
// the identical value.
func (s *Sequence[T]) Base() any { return s.st.base.raw() }

// ID returns the unique identifier of this instance.
func (s *Sequence[T]) ID() string { return s.id }

// Pool returns the pin pool backing this instance's cache.
func (s *Sequence[T]) Pool() *cache.PinPool { return s.st.pool }

// Stats returns this instance's cache counters.
func (s *Sequence[T]) Stats() cache.IndexStats { return s.values.Stats() }

func (s *Sequence[T]) String() string {
	return fmt.Sprintf("lazyseq.Sequence(len=%d, pipeline=%d, %s)", s.Len(), s.st.pipe.Len(), s.st.rng)
}
