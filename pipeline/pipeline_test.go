package pipeline_test

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/on-the-ground/lazyseq/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToIdentity(t *testing.T) {
	p := pipeline.New(nil)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 42, p.Apply(42))
}

func TestApply_FoldsLeftToRight(t *testing.T) {
	p := pipeline.New(pipeline.Typed(func(x int) int { return x + 1 }))
	p, err := p.Extend(pipeline.Typed(func(x int) int { return x * 10 }))
	require.NoError(t, err)
	p, err = p.Extend(pipeline.Typed(strconv.Itoa))
	require.NoError(t, err)

	assert.Equal(t, "30", p.Apply(2))
	assert.Equal(t, 3, p.Len())
}

func TestExtend_DoesNotMutateReceiver(t *testing.T) {
	base := pipeline.New(pipeline.Typed(func(x int) int { return x + 1 }))
	doubled, err := base.Extend(pipeline.Typed(func(x int) int { return x * 2 }))
	require.NoError(t, err)
	negated, err := base.Extend(pipeline.Typed(func(x int) int { return -x }))
	require.NoError(t, err)

	assert.Equal(t, 2, base.Apply(1))
	assert.Equal(t, 4, doubled.Apply(1))
	assert.Equal(t, -2, negated.Apply(1))
	assert.Equal(t, 1, base.Len())
}

func TestExtend_RejectsNil(t *testing.T) {
	_, err := pipeline.New(nil).Extend(nil)
	assert.ErrorIs(t, err, pipeline.ErrNotCallable)
	assert.ErrorIs(t, err, pipeline.ErrInvalidArgument)
}

func TestTyped_PanicsOnWrongInput(t *testing.T) {
	fn := pipeline.Typed(func(x int) int { return x })
	assert.PanicsWithError(t, `pipeline: input type mismatch: want int, got string`, func() { fn("nope") })
}

func TestTryApply_ReportsInputTypeMismatch(t *testing.T) {
	p := pipeline.New(pipeline.Typed(strconv.Itoa))

	out, err := p.TryApply(7)
	require.NoError(t, err)
	assert.Equal(t, "7", out)

	_, err = p.TryApply(7.5)
	assert.ErrorIs(t, err, pipeline.ErrInputType)

	boom := pipeline.New(func(any) any { panic("boom") })
	assert.PanicsWithValue(t, "boom", func() { _, _ = boom.TryApply(1) })
}

func TestFromAny(t *testing.T) {
	fn, err := pipeline.FromAny(nil)
	require.NoError(t, err)
	assert.Nil(t, fn)

	fn, err = pipeline.FromAny(func(x int) string { return fmt.Sprint(x * x) })
	require.NoError(t, err)
	assert.Equal(t, "49", fn(7))

	fn, err = pipeline.FromAny(func(v any) any { return v })
	require.NoError(t, err)
	assert.Equal(t, "same", fn("same"))

	fn, err = pipeline.FromAny(func(x int64) int64 { return x + 1 })
	require.NoError(t, err)
	assert.Equal(t, int64(4), fn(int64(3)))

	fn, err = pipeline.FromAny(func(s fmt.Stringer) string { return s.String() })
	require.NoError(t, err)
	assert.Equal(t, "2s", fn(2*time.Second), "interface parameters take any implementation")

	fn, err = pipeline.FromAny(func(p *int) bool { return p == nil })
	require.NoError(t, err)
	assert.Equal(t, true, fn(nil))
}

func TestFromAny_NeverConvertsInputs(t *testing.T) {
	tests := []struct {
		name  string
		fn    any
		input any
	}{
		{"float to int would truncate", func(x int) int { return x * 10 }, 1.7},
		{"int to string would reinterpret as rune", func(s string) string { return s + "!" }, 65},
		{"int to int64", func(x int64) int64 { return x }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := pipeline.FromAny(tt.fn)
			require.NoError(t, err)

			_, err = pipeline.New(fn).TryApply(tt.input)
			assert.ErrorIs(t, err, pipeline.ErrInputType)
		})
	}
}

func TestFromAny_RejectsNonUnary(t *testing.T) {
	var nilFunc func(int) int
	for name, candidate := range map[string]any{
		"not a func":   42,
		"nil func":     nilFunc,
		"two args":     func(a, b int) int { return a + b },
		"no args":      func() int { return 1 },
		"no result":    func(int) {},
		"two results":  func(x int) (int, error) { return x, nil },
		"variadic":     func(xs ...int) int { return len(xs) },
		"nil pipeline": pipeline.Func(nil),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := pipeline.FromAny(candidate)
			assert.ErrorIs(t, err, pipeline.ErrInvalidArgument)
		})
	}
}

func TestMemoize_ComputesOncePerKey(t *testing.T) {
	count := 0
	square := pipeline.Memoize(func(x int) int {
		count++
		return x * x
	}, 4)

	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 2, count)
}

func TestMemoize_RotatesGenerations(t *testing.T) {
	count := 0
	id := pipeline.Memoize(func(x int) int {
		count++
		return x
	}, 2)

	for _, x := range []int{1, 2, 3, 4, 5} {
		id(x)
	}
	assert.Equal(t, 5, count)

	// 5 lives in the head generation, 3 and 4 in the previous one.
	id(5)
	id(4)
	assert.Equal(t, 5, count)

	// 1 was dropped with the oldest generation.
	id(1)
	assert.Equal(t, 6, count)
}

type tag struct{ parts []string }

func (t tag) String() string { return fmt.Sprint(t.parts) }

func TestMemoize_StringerFallback(t *testing.T) {
	count := 0
	size := pipeline.Memoize(func(t tag) int {
		count++
		return len(t.parts)
	}, 2)

	assert.Equal(t, 2, size(tag{parts: []string{"a", "b"}}))
	assert.Equal(t, 2, size(tag{parts: []string{"a", "b"}}))
	assert.Equal(t, 1, count)
}

func TestMemoize_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		pipeline.Memoize(func(x int) int { return x }, 0)
	})
}
