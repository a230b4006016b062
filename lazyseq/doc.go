// Package lazyseq provides Sequence, a read-only, lazily computed view of an
// indexable base collection through a chain of unary functions.
//
// Nothing is materialized. Slicing derives a new index range in O(1), mapping
// appends to a copy of the pipeline, and both share the base collection:
//
//	ints := lazyseq.NewFuncSource(1000, func(i int) int { return i })
//	squares, _ := lazyseq.NewMapped[int, int](ints, func(x int) int { return x * x })
//	evens, _ := squares.Slice(indexrange.StepSpan(10, 20, 2))
//	vals, _ := evens.Collect() // [100 144 196 256 324]
//
// # Caching
//
// Each Sequence has its own cache keyed by logical index. The cache does not
// own values: it records tickets into a cache.PinPool, a bounded FIFO of
// strong holds shared by every sequence using it. A value stays cached
// exactly as long as its pin is resident; once enough newer values have been
// pinned it is dropped and recomputed on next access. Sequences use
// cache.Default() unless built WithPool, and derived sequences inherit their
// source's pool.
//
// # Errors
//
// Construction fails with errors matching ErrInvalidArgument. Integer access
// outside [0, Len()) fails with ErrIndexOutOfRange. Slicing never fails for
// out of bounds start or stop values; they are clamped and the result may be
// empty. Only a zero step is rejected, with ErrZeroStep. Items are never
// converted to fit a map func: one whose parameter type an item is not
// assignable to fails on access with ErrInputType.
//
// # Equality
//
// Equal, Contains, Index and Count compare elements with ==, except that
// values whose dynamic type is not comparable (slices, maps, funcs held in an
// interface, as Wrap produces) are compared with reflect.DeepEqual.
package lazyseq
