package lazyseq

import (
	"fmt"
	"reflect"
)

// Source is the base collection a Sequence reads from. Implementations must
// be safe for concurrent reads if the sequences built on them are read
// concurrently.
type Source[T any] interface {
	Len() int
	At(i int) (T, error)
}

// SliceSource adapts a Go slice. The slice is not copied.
type SliceSource[T any] struct {
	items []T
}

// NewSliceSource returns a Source reading from items.
func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

func (s *SliceSource[T]) Len() int { return len(s.items) }

func (s *SliceSource[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(s.items))
	}
	return s.items[i], nil
}

// FuncSource is a Source of n items produced by at. at is only called with
// indices in [0, n).
type FuncSource[T any] struct {
	n  int
	at func(int) T
}

// NewFuncSource returns a Source of n items computed by at.
func NewFuncSource[T any](n int, at func(int) T) *FuncSource[T] {
	return &FuncSource[T]{n: max(n, 0), at: at}
}

func (s *FuncSource[T]) Len() int { return s.n }

func (s *FuncSource[T]) At(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, s.n)
	}
	return s.at(i), nil
}

// source is the type-erased view of a base collection shared by every
// sequence derived from it.
type source interface {
	Len() int
	at(i int) (any, error)
	raw() any
}

type erased[T any] struct {
	src Source[T]
}

func (e erased[T]) Len() int              { return e.src.Len() }
func (e erased[T]) at(i int) (any, error) { return e.src.At(i) }
func (e erased[T]) raw() any              { return e.src }

// reflectSource reads Go slices, arrays and strings (by rune).
type reflectSource struct {
	orig any
	val  reflect.Value
}

func (r reflectSource) Len() int { return r.val.Len() }

func (r reflectSource) at(i int) (any, error) {
	if i < 0 || i >= r.val.Len() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, r.val.Len())
	}
	return r.val.Index(i).Interface(), nil
}

func (r reflectSource) raw() any { return r.orig }

// methodSource reads any value with Len() int and At(int) (X, error) methods.
type methodSource struct {
	orig  any
	lenFn reflect.Value
	atFn  reflect.Value
}

func (m methodSource) Len() int {
	return int(m.lenFn.Call(nil)[0].Int())
}

func (m methodSource) at(i int) (any, error) {
	out := m.atFn.Call([]reflect.Value{reflect.ValueOf(i)})
	if err, _ := out[1].Interface().(error); err != nil {
		return nil, err
	}
	return out[0].Interface(), nil
}

func (m methodSource) raw() any { return m.orig }

var (
	intType   = reflect.TypeFor[int]()
	errorType = reflect.TypeFor[error]()
)

// adapt returns the source view of seq, or ErrNotSequence.
func adapt(seq any) (source, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: got nil", ErrNotSequence)
	}
	if src, ok := seq.(Source[any]); ok {
		return erased[any]{src: src}, nil
	}

	val := reflect.ValueOf(seq)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSource{orig: seq, val: val}, nil
	case reflect.String:
		return reflectSource{orig: seq, val: reflect.ValueOf([]rune(val.String()))}, nil
	}

	lenFn := val.MethodByName("Len")
	atFn := val.MethodByName("At")
	if lenFn.IsValid() && atFn.IsValid() {
		lt, at := lenFn.Type(), atFn.Type()
		if lt.NumIn() == 0 && lt.NumOut() == 1 && lt.Out(0) == intType &&
			at.NumIn() == 1 && at.In(0) == intType && at.NumOut() == 2 && at.Out(1) == errorType {
			return methodSource{orig: seq, lenFn: lenFn, atFn: atFn}, nil
		}
	}
	return nil, fmt.Errorf("%w: got %T", ErrNotSequence, seq)
}
