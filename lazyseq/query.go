package lazyseq

import "reflect"

// IndexFunc returns the first logical index whose element satisfies pred, or -1.
func (s *Sequence[T]) IndexFunc(pred func(T) bool) (int, error) {
	i := 0
	for v, err := range s.Values() {
		if err != nil {
			return -1, err
		}
		if pred(v) {
			return i, nil
		}
		i++
	}
	return -1, nil
}

// ContainsFunc reports whether some element satisfies pred.
func (s *Sequence[T]) ContainsFunc(pred func(T) bool) (bool, error) {
	i, err := s.IndexFunc(pred)
	return i >= 0, err
}

// Index returns the first logical index of x in s, or -1.
func Index[T comparable](s *Sequence[T], x T) (int, error) {
	return s.IndexFunc(func(v T) bool { return equal(v, x) })
}

// Contains reports whether x is produced by s.
func Contains[T comparable](s *Sequence[T], x T) (bool, error) {
	return s.ContainsFunc(func(v T) bool { return equal(v, x) })
}

// Count returns how many elements of s equal x.
func Count[T comparable](s *Sequence[T], x T) (int, error) {
	n := 0
	for v, err := range s.Values() {
		if err != nil {
			return 0, err
		}
		if equal(v, x) {
			n++
		}
	}
	return n, nil
}

// EqualFunc reports whether s and other have the same length and eq holds
// for every pair of corresponding elements. How either sequence was derived
// does not matter.
func (s *Sequence[T]) EqualFunc(other *Sequence[T], eq func(a, b T) bool) (bool, error) {
	if s == other {
		return true, nil
	}
	if s == nil || other == nil || s.Len() != other.Len() {
		return false, nil
	}
	for i := 0; i < s.Len(); i++ {
		a, err := s.At(i)
		if err != nil {
			return false, err
		}
		b, err := other.At(i)
		if err != nil {
			return false, err
		}
		if !eq(a, b) {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether a and b produce the same elements in the same order.
func Equal[T comparable](a, b *Sequence[T]) (bool, error) {
	return a.EqualFunc(b, equal[T])
}

// equal is == for values that support it. Interface-typed T may hold values
// whose dynamic type is not comparable; those are compared deeply.
func equal[T comparable](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if (va.IsValid() && !va.Comparable()) || (vb.IsValid() && !vb.Comparable()) {
		return reflect.DeepEqual(any(a), any(b))
	}
	return a == b
}
