package pipeline

import (
	"fmt"
	"reflect"
)

// FromAny validates fn and adapts it into a Func. A nil fn is accepted and
// yields a nil Func so callers can fall back to the identity. Anything else
// must be a non-nil func value taking exactly one argument and returning
// exactly one value.
//
// Inputs must be assignable to the parameter type; the adapted Func panics
// with ErrInputType otherwise. A nil input is passed as the parameter's zero value.
func FromAny(fn any) (Func, error) {
	switch f := fn.(type) {
	case nil:
		return nil, nil
	case Func:
		if f == nil {
			return nil, ErrNotCallable
		}
		return f, nil
	case func(any) any:
		if f == nil {
			return nil, ErrNotCallable
		}
		return f, nil
	}

	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: got %T", ErrNotCallable, fn)
	}
	if rt.NumIn() != 1 || rt.IsVariadic() || rt.NumOut() != 1 {
		return nil, fmt.Errorf("%w: got %s", ErrNotCallable, rt)
	}

	in := rt.In(0)
	return func(v any) any {
		arg := reflect.Zero(in)
		if v != nil {
			arg = reflect.ValueOf(v)
			if !arg.Type().AssignableTo(in) {
				panic(fmt.Errorf("%w: %s cannot accept %T", ErrInputType, rt, v))
			}
		}
		return rv.Call([]reflect.Value{arg})[0].Interface()
	}, nil
}
