package lazyseq

import (
	"fmt"
	"iter"
	"slices"

	"github.com/on-the-ground/lazyseq/pipeline"
)

// Wrap builds a Sequence from a value whose type is only known at run time.
//
// seq may be an existing *Sequence of any element type, in which case the
// result derives from it exactly like Map; a Source[any]; any value with
// Len() int and At(int) (X, error) methods; or a Go slice, array or string
// (read by rune). Anything else fails with ErrNotSequence.
//
// mapFunc may be nil or a func taking one argument and returning one value.
// Anything else fails with ErrNotCallable.
func Wrap(seq any, mapFunc any, opts ...Option) (*Sequence[any], error) {
	fn, err := pipeline.FromAny(mapFunc)
	if err != nil {
		return nil, fmt.Errorf("lazyseq: %w", err)
	}

	if src, ok := seq.(derivable); ok {
		st, ok := src.state()
		if !ok {
			return nil, fmt.Errorf("lazyseq: %w: got nil %T", ErrNotSequence, seq)
		}
		if fn != nil {
			if st.pipe, err = st.pipe.Extend(fn); err != nil {
				return nil, fmt.Errorf("lazyseq: %w", err)
			}
		}
		return build[any](st, opts), nil
	}

	base, err := adapt(seq)
	if err != nil {
		return nil, fmt.Errorf("lazyseq: %w", err)
	}
	return build[any](fromSource(base, pipeline.New(fn)), opts), nil
}

// MapIter materializes seq, which offers no indexed access, and returns a
// lazily mapped Sequence over the collected items.
func MapIter[T, U any](seq iter.Seq[T], fn func(T) U, opts ...Option) (*Sequence[U], error) {
	if seq == nil {
		return nil, fmt.Errorf("lazyseq: %w: got nil iterator", ErrNotSequence)
	}
	return NewMapped[T, U](NewSliceSource(slices.Collect(seq)), fn, opts...)
}
