// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import (
	"bytes"
	"cmp"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair[L, R any] struct {
	Left  L
	Right R
}

// leftPairs returns the pairs of m in left order.
func leftPairs[L, R any](m *Map[L, R]) []pair[L, R] {
	var ps []pair[L, R]
	for l, r := range m.All() {
		ps = append(ps, pair[L, R]{l, r})
	}
	return ps
}

// rightPairs returns the pairs of m in right order.
func rightPairs[L, R any](m *Map[L, R]) []pair[L, R] {
	var ps []pair[L, R]
	for r, l := range m.AllRight() {
		ps = append(ps, pair[L, R]{l, r})
	}
	return ps
}

func mustVerify[L, R any](t *testing.T, m *Map[L, R]) {
	t.Helper()
	require.NoError(t, m.Verify(), m.dumpString())
}

func newAB(t *testing.T) *Map[int, string] {
	t.Helper()
	m := New[int, string]()
	require.False(t, m.Insert(1, "a").IsEnd())
	require.False(t, m.Insert(2, "b").IsEnd())
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()
	m := New[int, string]()

	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())
	assert.True(t, m.BeginLeft().IsEnd())
	assert.True(t, m.BeginRight().IsEnd())
	assert.Equal(t, m.EndLeft(), m.BeginLeft())
	assert.Equal(t, m.EndRight(), m.BeginRight())
	assert.Equal(t, m.EndLeft(), m.EndLeft().Next())
	assert.Equal(t, m.EndRight(), m.EndRight().Prev())
	mustVerify(t, m)
}

func TestInsertDuplicate(t *testing.T) {
	t.Parallel()
	m := newAB(t)

	// scenario A
	assert.Equal(t, m.EndLeft(), m.Insert(1, "c"))
	assert.Equal(t, m.EndLeft(), m.Insert(3, "b"))
	assert.Equal(t, m.EndLeft(), m.Insert(2, "b"))

	assert.Equal(t, 2, m.Size())
	assert.Equal(t, []pair[int, string]{{1, "a"}, {2, "b"}}, leftPairs(m))
	mustVerify(t, m)
}

func TestInsertReturnsIterator(t *testing.T) {
	t.Parallel()
	m := New[int, string]()

	it := m.Insert(7, "x")
	require.False(t, it.IsEnd())
	assert.Equal(t, 7, it.Key())
	assert.Equal(t, "x", it.Value())
	assert.Equal(t, m.FindLeft(7), it)
}

func TestOrders(t *testing.T) {
	t.Parallel()
	m := New[int, string]()

	for _, p := range []pair[int, string]{{3, "a"}, {1, "c"}, {4, "d"}, {2, "b"}, {5, "e"}} {
		require.False(t, m.Insert(p.Left, p.Right).IsEnd())
	}
	mustVerify(t, m)

	assert.Equal(t,
		[]pair[int, string]{{1, "c"}, {2, "b"}, {3, "a"}, {4, "d"}, {5, "e"}},
		leftPairs(m))

	assert.Equal(t,
		[]pair[int, string]{{3, "a"}, {2, "b"}, {1, "c"}, {4, "d"}, {5, "e"}},
		rightPairs(m))

	var back []int
	for l := range m.Backward() {
		back = append(back, l)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, back)

	var backRight []string
	for r := range m.BackwardRight() {
		backRight = append(backRight, r)
	}
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, backRight)

	// early break
	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestIteratorWalk(t *testing.T) {
	t.Parallel()
	m := New[int, string]()
	for i, s := range []string{"q", "w", "e", "r"} {
		m.Insert(i, s)
	}

	var fwd []int
	for it := m.BeginLeft(); !it.IsEnd(); it = it.Next() {
		fwd = append(fwd, it.Key())
	}
	assert.Equal(t, []int{0, 1, 2, 3}, fwd)

	var rev []string
	for it := m.EndRight().Prev(); !it.IsEnd(); it = it.Prev() {
		rev = append(rev, it.Key())
	}
	assert.Equal(t, []string{"w", "r", "q", "e"}, rev)

	// circular
	assert.Equal(t, m.BeginLeft(), m.EndLeft().Next())
	assert.Equal(t, m.FindLeft(3), m.EndLeft().Prev())
	assert.Equal(t, m.EndLeft(), m.FindLeft(3).Next())
	assert.Equal(t, m.EndLeft(), m.BeginLeft().Prev())
	assert.Equal(t, m.BeginRight(), m.EndRight().Next())
}

func TestFlip(t *testing.T) {
	t.Parallel()
	m := newAB(t)
	m.Insert(0, "z")

	// scenario D
	it := m.FindLeft(2).Flip()
	assert.Equal(t, "b", it.Key())
	assert.Equal(t, m.FindRight("b"), it)
	assert.Equal(t, m.FindRight("b").Key(), it.Key())

	for l, r := range m.All() {
		li := m.FindLeft(l)
		assert.Equal(t, m.FindRight(r), li.Flip())
		assert.Equal(t, li, li.Flip().Flip())
		assert.Equal(t, l, li.Flip().Value())
	}

	assert.Equal(t, m.EndRight(), m.EndLeft().Flip())
	assert.Equal(t, m.EndLeft(), m.EndRight().Flip())
	assert.True(t, m.EndLeft().Flip().IsEnd())
}

func TestEraseByKey(t *testing.T) {
	t.Parallel()
	m := newAB(t)

	// scenario B
	assert.True(t, m.EraseLeft(1))
	assert.Equal(t, []pair[int, string]{{2, "b"}}, leftPairs(m))
	assert.False(t, m.EraseRight("a"))
	assert.False(t, m.EraseLeft(1))
	assert.Equal(t, 1, m.Size())
	mustVerify(t, m)

	assert.True(t, m.EraseRight("b"))
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())
	mustVerify(t, m)
}

func TestEraseAt(t *testing.T) {
	t.Parallel()
	m := New[int, string]()
	for i, s := range []string{"d", "c", "b", "a"} {
		m.Insert(i, s)
	}

	keep := m.FindLeft(3)

	next := m.EraseLeftAt(m.FindLeft(1))
	assert.Equal(t, m.FindLeft(2), next)
	assert.True(t, m.FindRight("c").IsEnd())

	nextRight := m.EraseRightAt(m.FindRight("b"))
	assert.Equal(t, m.FindRight("d"), nextRight)
	assert.True(t, m.FindLeft(2).IsEnd())

	// erase the last in order
	assert.True(t, m.EraseRightAt(m.FindRight("d")).IsEnd())

	// untouched iterators stay valid
	assert.Equal(t, 3, keep.Key())
	assert.Equal(t, "a", keep.Value())
	assert.Equal(t, []pair[int, string]{{3, "a"}}, leftPairs(m))
	mustVerify(t, m)
}

func TestEraseRange(t *testing.T) {
	t.Parallel()
	m := New[int, int]()
	for i := range 10 {
		m.Insert(i, 100-i)
	}

	last := m.FindLeft(7)
	assert.Equal(t, last, m.EraseLeftRange(m.FindLeft(2), last))
	assert.Equal(t, 5, m.Size())
	mustVerify(t, m)

	// right order: 91 (9), 92 (8), 93 (7), 99 (1), 100 (0)
	assert.Equal(t, m.EndRight(), m.EraseRightRange(m.FindRight(92), m.EndRight()))
	assert.Equal(t, []pair[int, int]{{9, 91}}, leftPairs(m))
	mustVerify(t, m)

	// empty range
	assert.Equal(t, m.BeginLeft(), m.EraseLeftRange(m.BeginLeft(), m.BeginLeft()))
	assert.Equal(t, 1, m.Size())

	m.EraseLeftRange(m.BeginLeft(), m.EndLeft())
	assert.True(t, m.Empty())
	mustVerify(t, m)
}

func TestBounds(t *testing.T) {
	t.Parallel()
	m := New[int, string]()
	for _, k := range []int{40, 20, 60, 10, 30} {
		m.Insert(k, string(rune('a'+k/10)))
	}

	tests := []struct {
		key   int
		lower int // -1 is end
		upper int
	}{
		{5, 10, 10},
		{10, 10, 20},
		{25, 30, 30},
		{40, 40, 60},
		{60, 60, -1},
		{99, -1, -1},
	}

	keyOrEnd := func(it LeftIterator[int, string]) int {
		if it.IsEnd() {
			return -1
		}
		return it.Key()
	}

	for _, tt := range tests {
		assert.Equal(t, tt.lower, keyOrEnd(m.LowerBoundLeft(tt.key)), "lower %d", tt.key)
		assert.Equal(t, tt.upper, keyOrEnd(m.UpperBoundLeft(tt.key)), "upper %d", tt.key)
	}

	assert.Equal(t, "c", m.LowerBoundRight("c").Key())
	assert.Equal(t, "d", m.UpperBoundRight("c").Key())
	assert.Equal(t, "b", m.LowerBoundRight("").Key())
	assert.True(t, m.UpperBoundRight("g").IsEnd())
	assert.True(t, m.LowerBoundRight("h").IsEnd())
}

func TestAt(t *testing.T) {
	t.Parallel()
	m := newAB(t)

	r, err := m.AtLeft(2)
	require.NoError(t, err)
	assert.Equal(t, "b", r)

	l, err := m.AtRight("a")
	require.NoError(t, err)
	assert.Equal(t, 1, l)

	_, err = m.AtLeft(3)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.ErrorContains(t, err, "left 3")

	_, err = m.AtRight("x")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "right x")
}

func TestAtLeftOrDefault(t *testing.T) {
	t.Parallel()
	m := New[int, int]()

	// scenario C
	assert.Equal(t, 0, m.AtLeftOrDefault(5))
	assert.Equal(t, []pair[int, int]{{5, 0}}, leftPairs(m))

	assert.Equal(t, 0, m.AtLeftOrDefault(6))
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, []pair[int, int]{{6, 0}}, leftPairs(m))
	mustVerify(t, m)

	// present key is returned as is
	m.Insert(7, 3)
	assert.Equal(t, 3, m.AtLeftOrDefault(7))
	assert.Equal(t, 2, m.Size())
}

func TestAtRightOrDefault(t *testing.T) {
	t.Parallel()
	m := New[string, string]()
	m.Insert("x", "one")

	assert.Equal(t, "x", m.AtRightOrDefault("one"))
	assert.Equal(t, "", m.AtRightOrDefault("two"))
	assert.Equal(t, []pair[string, string]{{"", "two"}, {"x", "one"}}, leftPairs(m))

	assert.Equal(t, "", m.AtRightOrDefault("three"))
	assert.Equal(t, 2, m.Size())
	assert.True(t, m.FindRight("two").IsEnd())
	assert.Equal(t, "three", m.FindLeft("").Value())
	mustVerify(t, m)
}

func TestRebindLogsDebug(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New[int, int](WithLogger(logger))
	m.AtLeftOrDefault(1)
	assert.Empty(t, buf.String())

	m.AtLeftOrDefault(2)
	assert.Contains(t, buf.String(), "rebind default right key")
	assert.Contains(t, buf.String(), "old=1")
	assert.Contains(t, buf.String(), "new=2")
}

// panicAfter returns a comparator that panics on the call number n
// that involves the key boom.
func panicAfter(boom string, n int) func(a, b string) bool {
	calls := 0
	return func(a, b string) bool {
		if a == boom || b == boom {
			calls++
			if calls >= n {
				panic("comparator failed")
			}
		}
		return a < b
	}
}

func TestInsertRollback(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	// the lookup of "boom" against "a" costs two calls,
	// the third call panics inside the right insert
	m := NewFunc(cmp.Less[int], panicAfter("boom", 3), WithLogger(logger))
	m.Insert(1, "a")

	assert.PanicsWithValue(t, "comparator failed", func() {
		m.Insert(2, "boom")
	})

	assert.Equal(t, 1, m.Size())
	assert.True(t, m.FindLeft(2).IsEnd())
	assert.Equal(t, []pair[int, string]{{1, "a"}}, leftPairs(m))
	assert.Contains(t, buf.String(), "insert rolled back")
	mustVerify(t, m)
}

// inconsistent orders keys naturally for the first budget calls,
// afterwards every key looks equivalent to every other.
type inconsistent struct {
	calls  int
	budget int
}

func (c *inconsistent) less(a, b string) bool {
	c.calls++
	if c.calls > c.budget {
		return false
	}
	return a < b
}

func TestInsertLateDuplicate(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	c := &inconsistent{budget: 1 << 30}
	m := NewFunc(cmp.Less[int], c.less, WithLogger(logger))
	m.Insert(1, "a")

	// the lookup of "b" against "a" still sees the order,
	// the right insert then reports "b" as a duplicate of "a"
	c.budget = c.calls + 2
	assert.Equal(t, m.EndLeft(), m.Insert(2, "b"))

	assert.Equal(t, 1, m.Size())
	assert.True(t, m.FindLeft(2).IsEnd())
	assert.Contains(t, buf.String(), "insert rolled back")
	mustVerify(t, m)
}

func TestClear(t *testing.T) {
	t.Parallel()
	m := newAB(t)
	end := m.EndLeft()

	m.Clear()
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, end, m.BeginLeft())
	assert.Nil(t, leftPairs(m))
	assert.Nil(t, rightPairs(m))
	mustVerify(t, m)

	m.Insert(1, "c")
	assert.Equal(t, []pair[int, string]{{1, "c"}}, leftPairs(m))
	mustVerify(t, m)
}

func TestStats(t *testing.T) {
	t.Parallel()
	m := New[int, int]()

	assert.Equal(t, Stats{}, m.Stats())

	// ascending left keys degenerate the left tree,
	// alternating right keys keep the right tree short
	for i, r := range []int{4, 2, 6, 1, 3, 5, 7} {
		m.Insert(i, r)
	}
	assert.Equal(t, Stats{Size: 7, LeftHeight: 7, RightHeight: 3}, m.Stats())
}

func TestNewFuncReverse(t *testing.T) {
	t.Parallel()

	desc := func(a, b int) bool { return a > b }
	m := NewFunc(desc, cmp.Less[string])
	for i, s := range []string{"x", "y", "z"} {
		m.Insert(i, s)
	}

	assert.Equal(t, []pair[int, string]{{2, "z"}, {1, "y"}, {0, "x"}}, leftPairs(m))
	assert.Equal(t, 1, m.LowerBoundLeft(1).Key())
	assert.Equal(t, 0, m.UpperBoundLeft(1).Key())
	mustVerify(t, m)
}

func TestNoEqualityNeeded(t *testing.T) {
	t.Parallel()

	// case insensitive keys, only the comparator defines equivalence
	type word struct{ s string }
	lower := func(a, b word) bool {
		return bytes.Compare(bytes.ToLower([]byte(a.s)), bytes.ToLower([]byte(b.s))) < 0
	}

	m := NewFunc(lower, cmp.Less[int])
	m.Insert(word{"Go"}, 1)
	assert.True(t, m.Insert(word{"GO"}, 2).IsEnd())
	assert.Equal(t, "Go", m.FindLeft(word{"go"}).Key().s)
	assert.Equal(t, 1, m.Size())
}

func TestAllSorted(t *testing.T) {
	t.Parallel()
	m := New[int, int]()
	for _, k := range []int{9, 3, 7, 1, 5} {
		m.Insert(k, -k)
	}

	var lefts []int
	for l := range m.All() {
		lefts = append(lefts, l)
	}
	assert.True(t, slices.IsSorted(lefts))

	var rights []int
	for r := range m.AllRight() {
		rights = append(rights, r)
	}
	assert.True(t, slices.IsSorted(rights))
}

func TestVerifyCorrupt(t *testing.T) {
	t.Parallel()

	m := newAB(t)
	m.size++
	assert.ErrorIs(t, m.Verify(), ErrCorrupt)
	m.size--

	// unlink a pair from the right order only
	m.right.Erase(m.FindLeft(1).rec)
	err := m.Verify()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.ErrorContains(t, err, "right holds 1 records")

	m = newAB(t)
	m.FindLeft(2).rec.left = 0
	err = m.Verify()
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.ErrorContains(t, err, "left: tree: corrupt")
}
