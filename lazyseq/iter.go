package lazyseq

import "iter"

// Values yields the elements in logical order, one At call per step. The
// iterator is restartable. If an element cannot be read, the error is yielded
// once with the zero T and iteration stops.
func (s *Sequence[T]) Values() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := 0; i < s.Len(); i++ {
			v, err := s.At(i)
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Backward yields the elements in reverse logical order.
func (s *Sequence[T]) Backward() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			v, err := s.At(i)
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect materializes every element into a new slice.
func (s *Sequence[T]) Collect() ([]T, error) {
	out := make([]T, 0, s.Len())
	for v, err := range s.Values() {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
