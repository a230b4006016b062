package cache

import (
	"fmt"
	"reflect"
	"strings"
)

// Policy decides which computed values are worth pinning.
type Policy int

const (
	// CacheAll pins every computed value.
	CacheAll Policy = iota

	// CacheReferences pins only reference-like values (pointers, maps, slices,
	// channels, funcs). Scalars and structs are recomputed on every access.
	CacheReferences

	// CacheNone disables caching; every access recomputes.
	CacheNone
)

// Admits reports whether v should be pinned under p.
func (p Policy) Admits(v any) bool {
	switch p {
	case CacheAll:
		return true
	case CacheReferences:
		if v == nil {
			return false
		}
		switch reflect.TypeOf(v).Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return true
		}
		return false
	default:
		return false
	}
}

func (p Policy) String() string {
	switch p {
	case CacheAll:
		return "all"
	case CacheReferences:
		return "references"
	case CacheNone:
		return "none"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the String form of a Policy, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CacheAll, nil
	case "references", "refs":
		return CacheReferences, nil
	case "none", "off":
		return CacheNone, nil
	}
	return CacheAll, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
