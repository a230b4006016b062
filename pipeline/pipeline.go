// Package pipeline composes unary transformation functions.
//
// A Pipeline is immutable once built: Extend copies the receiver's functions
// and appends the new one, so a pipeline attached to one sequence can be
// shared by every sequence derived from it.
package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every argument validation error in this module.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotCallable is returned when a transformation cannot be called with exactly one argument.
	ErrNotCallable = fmt.Errorf("%w: map func must be callable with one argument", ErrInvalidArgument)

	// ErrInputType is raised when a value reaches a function whose parameter
	// type it is not assignable to. Inputs are never converted.
	ErrInputType = errors.New("pipeline: input type mismatch")
)

// Func is a type-erased unary transformation.
type Func func(any) any

// Identity returns its argument unchanged.
func Identity(v any) any { return v }

// Pipeline is an ordered list of functions folded left to right.
type Pipeline struct {
	funcs []Func
}

// New returns a pipeline holding fn, or the identity function when fn is nil.
func New(fn Func) *Pipeline {
	if fn == nil {
		fn = Identity
	}
	return &Pipeline{funcs: []Func{fn}}
}

// Typed adapts a typed unary function into a Func.
func Typed[I, O any](fn func(I) O) Func {
	if fn == nil {
		return nil
	}
	return func(v any) any {
		in, ok := v.(I)
		if !ok && v != nil {
			panic(fmt.Errorf("%w: want %T, got %T", ErrInputType, in, v))
		}
		return fn(in)
	}
}

// Apply folds v through every function in registration order.
func (p *Pipeline) Apply(v any) any {
	for _, fn := range p.funcs {
		v = fn(v)
	}
	return v
}

// TryApply is Apply that reports an input type mismatch as an error wrapping
// ErrInputType instead of panicking. Any other panic propagates.
func (p *Pipeline) TryApply(v any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, ErrInputType) {
				out, err = nil, e
				return
			}
			panic(r)
		}
	}()
	return p.Apply(v), nil
}

// Extend returns a new pipeline with fn appended. The receiver is untouched.
func (p *Pipeline) Extend(fn Func) (*Pipeline, error) {
	if fn == nil {
		return nil, ErrNotCallable
	}
	funcs := make([]Func, len(p.funcs), len(p.funcs)+1)
	copy(funcs, p.funcs)
	return &Pipeline{funcs: append(funcs, fn)}, nil
}

// Len returns the number of functions, the implicit identity included.
func (p *Pipeline) Len() int { return len(p.funcs) }
