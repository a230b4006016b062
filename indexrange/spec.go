package indexrange

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSpec is returned when a slice specification cannot describe any range.
	ErrInvalidSpec = errors.New("indexrange: invalid slice spec")

	// ErrZeroStep is returned when a slice specification sets its step to 0.
	ErrZeroStep = fmt.Errorf("%w: slice step cannot be zero", ErrInvalidSpec)
)

// Bound is an optional slice bound. The zero value is an open bound.
type Bound struct {
	value int
	set   bool
}

// Idx returns a bound fixed at v.
func Idx(v int) Bound {
	return Bound{value: v, set: true}
}

// Value returns the bound value and whether it is set.
func (b Bound) Value() (int, bool) {
	return b.value, b.set
}

func (b Bound) String() string {
	if !b.set {
		return ""
	}
	return fmt.Sprintf("%d", b.value)
}

// Spec is a (start, stop, step) slice specification. Open bounds take their
// defaults from the range being sliced, the same way list slicing does.
type Spec struct {
	Start Bound
	Stop  Bound
	Step  Bound
}

// Span returns the spec [start:stop].
func Span(start, stop int) Spec {
	return Spec{Start: Idx(start), Stop: Idx(stop)}
}

// StepSpan returns the spec [start:stop:step].
func StepSpan(start, stop, step int) Spec {
	return Spec{Start: Idx(start), Stop: Idx(stop), Step: Idx(step)}
}

// Reversed returns the spec [::-1].
func Reversed() Spec {
	return Spec{Step: Idx(-1)}
}

func (s Spec) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(s.Start.String())
	b.WriteString(":")
	b.WriteString(s.Stop.String())
	if s.Step.set {
		b.WriteString(":")
		b.WriteString(s.Step.String())
	}
	b.WriteString("]")
	return b.String()
}

// indices resolves s against a sequence of the given length and returns the
// clamped start, stop and step.
func (s Spec) indices(length int) (start, stop, step int, err error) {
	step = 1
	if v, ok := s.Step.Value(); ok {
		if v == 0 {
			return 0, 0, 0, ErrZeroStep
		}
		step = v
	}

	lower, upper := 0, length
	if step < 0 {
		lower, upper = -1, length-1
	}

	clamp := func(b Bound, def int) int {
		v, ok := b.Value()
		if !ok {
			return def
		}
		if v < 0 {
			v += length
			if v < lower {
				return lower
			}
			return v
		}
		if v > upper {
			return upper
		}
		return v
	}

	if step < 0 {
		start = clamp(s.Start, upper)
		stop = clamp(s.Stop, lower)
	} else {
		start = clamp(s.Start, lower)
		stop = clamp(s.Stop, upper)
	}
	return start, stop, step, nil
}

// count returns how many positions range(start, stop, step) visits.
func count(start, stop, step int) int {
	switch {
	case step > 0 && start < stop:
		return (stop-start-1)/step + 1
	case step < 0 && start > stop:
		return (start-stop-1)/(-step) + 1
	default:
		return 0
	}
}
