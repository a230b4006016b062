package lazyseq_test

import (
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/on-the-ground/lazyseq/indexrange"
	"github.com/on-the-ground/lazyseq/lazyseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_GoSlice(t *testing.T) {
	s, err := lazyseq.Wrap([]int{1, 2, 3}, func(x int) int { return x * 2 })
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4, 6}, collect(t, s))
}

func TestWrap_ArrayAndString(t *testing.T) {
	s, err := lazyseq.Wrap([3]string{"a", "b", "c"}, strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B", "C"}, collect(t, s))

	r, err := lazyseq.Wrap("héllo", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Len())
	v, err := r.At(1)
	require.NoError(t, err)
	assert.Equal(t, 'é', v)
	assert.Equal(t, "héllo", r.Base())
}

func TestWrap_TypedSource(t *testing.T) {
	src := lazyseq.NewSliceSource([]string{"x", "yy"})
	s, err := lazyseq.Wrap(src, func(v string) int { return len(v) })
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, collect(t, s))
	assert.Same(t, src, s.Base())
}

func TestWrap_AnySource(t *testing.T) {
	src := lazyseq.NewSliceSource([]any{1, "two", nil})
	s, err := lazyseq.Wrap(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{1, "two", nil}, collect(t, s))
}

func TestWrap_DerivesFromSequence(t *testing.T) {
	root := squares(t, 10)
	sub, err := root.Slice(indexrange.Span(2, 5))
	require.NoError(t, err)

	w, err := lazyseq.Wrap(sub, func(x int) int { return -x })
	require.NoError(t, err)
	assert.Equal(t, []any{-4, -9, -16}, collect(t, w))
	assert.Same(t, root.Base(), w.Base())
	assert.Same(t, root.Pool(), w.Pool())

	plain, err := lazyseq.Wrap(sub, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{4, 9, 16}, collect(t, plain))
}

func TestWrap_RejectsNonSequences(t *testing.T) {
	var nilSeq *lazyseq.Sequence[int]
	for name, candidate := range map[string]any{
		"nil":          nil,
		"int":          42,
		"map":          map[string]int{"a": 1},
		"nil sequence": nilSeq,
		"wrong At":     badAt{},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := lazyseq.Wrap(candidate, nil)
			assert.ErrorIs(t, err, lazyseq.ErrNotSequence)
			assert.ErrorIs(t, err, lazyseq.ErrInvalidArgument)
		})
	}
}

type badAt struct{}

func (badAt) Len() int      { return 1 }
func (badAt) At(i int) bool { return true }

func TestWrap_RejectsNonUnaryFuncs(t *testing.T) {
	for name, fn := range map[string]any{
		"not a func": "upper",
		"binary":     func(a, b int) int { return a + b },
		"no result":  func(int) {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := lazyseq.Wrap([]int{1}, fn)
			assert.ErrorIs(t, err, lazyseq.ErrNotCallable)
			assert.ErrorIs(t, err, lazyseq.ErrInvalidArgument)
		})
	}
}

func TestWrap_DoesNotConvertItems(t *testing.T) {
	floats, err := lazyseq.Wrap([]float64{1.7, 2.9}, func(x int) int { return x * 10 })
	require.NoError(t, err)
	_, err = floats.At(0)
	assert.ErrorIs(t, err, lazyseq.ErrInputType)
	_, err = floats.Collect()
	assert.ErrorIs(t, err, lazyseq.ErrInputType)

	codes, err := lazyseq.Wrap([]int{65, 66}, func(s string) string { return s + "!" })
	require.NoError(t, err)
	_, err = codes.At(1)
	assert.ErrorIs(t, err, lazyseq.ErrInputType)
	assert.Equal(t, uint64(0), codes.Stats().Hits)
}

func TestMapIter(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	keys := slices.Sorted(maps.Keys(m))

	s, err := lazyseq.MapIter(slices.Values(keys), func(k string) int { return m[k] })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, collect(t, s))

	_, err = lazyseq.MapIter[int, int](nil, square)
	assert.ErrorIs(t, err, lazyseq.ErrNotSequence)

	_, err = lazyseq.MapIter[int, int](slices.Values([]int{1}), nil)
	assert.ErrorIs(t, err, lazyseq.ErrNotCallable)
}
