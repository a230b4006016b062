package helper

import (
	"errors"
	"fmt"
)

// ErrUnexpectedType is returned when a type-erased value does not hold the expected type.
var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf calls getFn and asserts its result to T.
// A nil result yields the zero T, so interface and pointer element types
// round-trip through type-erased code.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, zero, res)
	}
	return val, nil
}

// Lookup reads key from bindings and asserts it to T.
// ok is false when the key is absent; err is set when it is present with another type.
func Lookup[T any](bindings map[string]any, key string) (val T, ok bool, err error) {
	raw, ok := bindings[key]
	if !ok {
		return val, false, nil
	}
	val, err = GetTypedValueOf[T](func() (any, error) { return raw, nil })
	if err != nil {
		return val, true, fmt.Errorf("%s: %w", key, err)
	}
	return val, true, nil
}
