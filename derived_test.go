package deque

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func TestMapFilterFlatMapReduce(t *testing.T) {
	d := wrapped([]int{1, 2, 3, 4, 5}, 6, 4)

	requireContents(t, []string{"1", "2", "3", "4", "5"}, Map(d, strconv.Itoa))
	requireContents(t, []int{2, 4}, d.Filter(func(v int) bool { return v%2 == 0 }))
	requireContents(t, []int{1, 2, 2, 3, 3, 3}, FlatMap(CopySliceToDeque([]int{1, 2, 3}), func(v int) iter.Seq[int] {
		return slices.Values(slices.Repeat([]int{v}, v))
	}))
	require.Equal(t, 15, Reduce(d, 0, func(acc, v int) int { return acc + v }))
	require.Equal(t, "12345", Reduce(d, "", func(acc string, v int) string { return acc + strconv.Itoa(v) }))

	// The source is never touched.
	requireContents(t, []int{1, 2, 3, 4, 5}, d)
	require.True(t, d.IsUnique())

	require.True(t, Map(MakeDeque[int](), strconv.Itoa).Empty())
}

func TestEqual(t *testing.T) {
	a := wrapped([]int{1, 2, 3}, 4, 2)
	b := CopySliceToDeque([]int{1, 2, 3})
	require.True(t, Equal(a, b))
	require.True(t, Equal(a, a.Clone()))

	b.Set(2, 4)
	require.False(t, Equal(a, b))
	b.RemoveLast()
	require.False(t, Equal(a, b))

	var z Deque[int]
	require.True(t, Equal[int](nil, nil))
	require.True(t, Equal(&z, MakeDeque[int]()))
	require.True(t, Equal(nil, &z))
	require.False(t, Equal(nil, a))

	require.True(t, a.EqualFunc(CopySliceToDeque([]int{-1, -2, -3}), func(x, y int) bool { return x == -y }))
}

func TestSearch(t *testing.T) {
	d := wrapped([]int{5, 3, 8, 1, 8}, 6, 3)
	require.Equal(t, 2, Index(d, 8))
	require.Equal(t, 3, Index(d, 1))
	require.Equal(t, -1, Index(d, 7))
	require.True(t, Contains(d, 3))
	require.False(t, Contains(d, 4))
	require.Equal(t, 2, d.IndexFunc(func(v int) bool { return v > 5 }))
	require.True(t, d.ContainsFunc(func(v int) bool { return v < 2 }))
	require.False(t, MakeDeque[int]().ContainsFunc(func(int) bool { return true }))
	require.Equal(t, -1, Index[int](nil, 1))

	require.Equal(t, 8, Max(d))
	require.Equal(t, 1, Min(d))
	require.Equal(t, 1, MaxFunc(d, func(a, b int) int { return b - a }))
	require.Equal(t, 8, MinFunc(d, func(a, b int) int { return b - a }))
	require.Panics(t, func() { Max(MakeDeque[int]()) })
	require.Panics(t, func() { Min(MakeDeque[int]()) })
}

func TestNilDeque(t *testing.T) {
	var d *Deque[int]
	require.Zero(t, d.Len())
	require.Zero(t, d.Cap())
	require.True(t, d.IsUnique())
	require.True(t, d.Clone().IsUnique())
	require.Equal(t, -1, d.IndexFunc(func(int) bool { return true }))
	require.Empty(t, d.MakeSliceCopy())
	require.Zero(t, d.CopySlice(0, make([]int, 4)))

	// A nil Deque fails like an empty one, not with a nil dereference.
	require.PanicsWithValue(t, "slices.MaxFunc: empty list", func() { Max(d) })
	require.PanicsWithValue(t, "slices.MinFunc: empty list", func() { Min(d) })
	require.PanicsWithValue(t, "slices.MaxFunc: empty list", func() { Max(MakeDeque[int]()) })
}

func TestString(t *testing.T) {
	require.Equal(t, "Deque[1, 2, 3]", CopySliceToDeque([]int{1, 2, 3}).String())
	require.Equal(t, "Deque[]", MakeDeque[int]().String())
	require.Equal(t, "Deque[a b]", fmt.Sprint(CopySliceToDeque([]string{"a b"})))
	require.Equal(t, "Deque[3, 1, 2]", fmt.Sprintf("%v", wrapped([]int{3, 1, 2}, 3, 2)))
}

func TestSafeFormat(t *testing.T) {
	d := CopySliceToDeque([]string{"alice", "bob"})
	s := redact.Sprint(d)
	require.Equal(t, d.String(), s.StripMarkers())
	require.Equal(t, "Deque[‹×›, ‹×›]", string(s.Redact()))
	require.True(t, strings.Contains(string(s), "alice"))
}
