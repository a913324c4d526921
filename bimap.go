// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import (
	"cmp"
	"log/slog"
	"sync"

	"github.com/gaissmai/bimap/internal/tree"
)

// record is the single allocation per pair. It is linked into the
// left and the right tree at the same time, each tree uses its own link.
type record[L, R any] struct {
	left  L
	right R

	leftLink  tree.Link[record[L, R]]
	rightLink tree.Link[record[L, R]]
}

func leftLinkOf[L, R any](r *record[L, R]) *tree.Link[record[L, R]] {
	return &r.leftLink
}

func rightLinkOf[L, R any](r *record[L, R]) *tree.Link[record[L, R]] {
	return &r.rightLink
}

func leftKeyOf[L, R any](r *record[L, R]) L {
	return r.left
}

func rightKeyOf[L, R any](r *record[L, R]) R {
	return r.right
}

// Map is a bijective map of left keys of type L and right keys of type R.
//
// Every left key is unique under the left comparator and every right key
// is unique under the right comparator. A pair can be looked up, iterated
// and erased from either side, both sides are kept in sorted order.
//
// The zero value is not usable, create a Map with [New] or [NewFunc].
//
// A Map must not be copied by value; always pass by pointer.
//
// Map is not safe for concurrent use, concurrent access must be
// externally synchronized.
type Map[L, R any] struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	// anchor of both trees and the end position of both orders,
	// its keys are never read as payload.
	sentinel record[L, R]

	left  tree.Tree[L, record[L, R]]
	right tree.Tree[R, record[L, R]]

	// the number of pairs
	size int

	opts options
}

// New returns an empty Map ordered by the natural order of L and R.
func New[L, R cmp.Ordered](opts ...Option) *Map[L, R] {
	return NewFunc(cmp.Less[L], cmp.Less[R], opts...)
}

// NewFunc returns an empty Map ordered by lessL and lessR.
//
// Both functions must be strict weak orderings. Keys a and b with
// !less(a, b) && !less(b, a) are equivalent, the Map never holds two
// equivalent keys on the same side. No equality operator is required.
func NewFunc[L, R any](lessL func(a, b L) bool, lessR func(a, b R) bool, opts ...Option) *Map[L, R] {
	return newMap(lessL, lessR, newOptions(opts))
}

func newMap[L, R any](lessL func(a, b L) bool, lessR func(a, b R) bool, o options) *Map[L, R] {
	m := &Map[L, R]{opts: o}

	m.left.Init(&m.sentinel, tree.Ops[L, record[L, R]]{
		Link: leftLinkOf[L, R],
		Key:  leftKeyOf[L, R],
		Less: lessL,
	})

	m.right.Init(&m.sentinel, tree.Ops[R, record[L, R]]{
		Link: rightLinkOf[L, R],
		Key:  rightKeyOf[L, R],
		Less: lessR,
	})

	return m
}

// empty returns a new empty Map with the comparators and options of m.
func (m *Map[L, R]) empty() *Map[L, R] {
	return newMap(m.left.Less, m.right.Less, m.opts)
}

// Size returns the number of pairs.
func (m *Map[L, R]) Size() int {
	return m.size
}

// Empty reports whether m holds no pairs.
func (m *Map[L, R]) Empty() bool {
	return m.left.Empty()
}

// Insert adds the pair (left, right) and returns the iterator to it.
//
// If left or right is already present on its side, nothing is inserted
// and [Map.EndLeft] is returned.
//
// The pair is linked into the left order first and then into the right
// order. If a comparator panics during the second step, the first step
// is rolled back before the panic propagates and m is unchanged.
func (m *Map[L, R]) Insert(left L, right R) LeftIterator[L, R] {
	if m.left.Find(left) != m.left.End() || m.right.Find(right) != m.right.End() {
		return m.EndLeft()
	}

	rec := &record[L, R]{left: left, right: right}
	if !m.left.Insert(rec) {
		return m.EndLeft()
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		m.left.Erase(rec)
		m.opts.logger.Warn("bimap: insert rolled back",
			slog.Any("left", left),
			slog.Any("right", right),
		)
	}()

	// an inconsistent comparator may report a duplicate only now
	if !m.right.Insert(rec) {
		return m.EndLeft()
	}

	committed = true
	m.size++

	return LeftIterator[L, R]{rec}
}

// erase unlinks rec from both orders, rec is garbage afterwards.
func (m *Map[L, R]) erase(rec *record[L, R]) {
	m.right.Erase(rec)
	m.left.Erase(rec)
	m.size--
}

// EraseLeftAt erases the pair at it and returns the iterator to the
// next pair in left order.
//
// Iterators to the erased pair on either side are invalidated, all other
// iterators stay valid. Erasing [Map.EndLeft] is undefined.
func (m *Map[L, R]) EraseLeftAt(it LeftIterator[L, R]) LeftIterator[L, R] {
	next := it.Next()
	m.erase(it.rec)
	return next
}

// EraseRightAt erases the pair at it and returns the iterator to the
// next pair in right order, see [Map.EraseLeftAt].
func (m *Map[L, R]) EraseRightAt(it RightIterator[L, R]) RightIterator[L, R] {
	next := it.Next()
	m.erase(it.rec)
	return next
}

// EraseLeft erases the pair with the left key and reports whether it existed.
func (m *Map[L, R]) EraseLeft(left L) bool {
	rec := m.left.Find(left)
	if rec == m.left.End() {
		return false
	}
	m.erase(rec)
	return true
}

// EraseRight erases the pair with the right key and reports whether it existed.
func (m *Map[L, R]) EraseRight(right R) bool {
	rec := m.right.Find(right)
	if rec == m.right.End() {
		return false
	}
	m.erase(rec)
	return true
}

// EraseLeftRange erases the pairs in [first, last) in left order
// and returns last.
func (m *Map[L, R]) EraseLeftRange(first, last LeftIterator[L, R]) LeftIterator[L, R] {
	for it := first; it != last; {
		it = m.EraseLeftAt(it)
	}
	return last
}

// EraseRightRange erases the pairs in [first, last) in right order
// and returns last.
func (m *Map[L, R]) EraseRightRange(first, last RightIterator[L, R]) RightIterator[L, R] {
	for it := first; it != last; {
		it = m.EraseRightAt(it)
	}
	return last
}

// Clear erases all pairs in O(1).
// All iterators except the end iterators are invalidated.
func (m *Map[L, R]) Clear() {
	m.left.Clear()
	m.right.Clear()
	m.size = 0
}

// FindLeft returns the iterator to the pair with the left key,
// or [Map.EndLeft].
func (m *Map[L, R]) FindLeft(left L) LeftIterator[L, R] {
	return LeftIterator[L, R]{m.left.Find(left)}
}

// FindRight returns the iterator to the pair with the right key,
// or [Map.EndRight].
func (m *Map[L, R]) FindRight(right R) RightIterator[L, R] {
	return RightIterator[L, R]{m.right.Find(right)}
}

// LowerBoundLeft returns the iterator to the first pair whose left key is
// not less than left, or [Map.EndLeft].
func (m *Map[L, R]) LowerBoundLeft(left L) LeftIterator[L, R] {
	return LeftIterator[L, R]{m.left.LowerBound(left)}
}

// UpperBoundLeft returns the iterator to the first pair whose left key is
// greater than left, or [Map.EndLeft].
func (m *Map[L, R]) UpperBoundLeft(left L) LeftIterator[L, R] {
	return LeftIterator[L, R]{m.left.UpperBound(left)}
}

// LowerBoundRight returns the iterator to the first pair whose right key is
// not less than right, or [Map.EndRight].
func (m *Map[L, R]) LowerBoundRight(right R) RightIterator[L, R] {
	return RightIterator[L, R]{m.right.LowerBound(right)}
}

// UpperBoundRight returns the iterator to the first pair whose right key is
// greater than right, or [Map.EndRight].
func (m *Map[L, R]) UpperBoundRight(right R) RightIterator[L, R] {
	return RightIterator[L, R]{m.right.UpperBound(right)}
}

// BeginLeft returns the iterator to the pair with the smallest left key.
func (m *Map[L, R]) BeginLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{m.left.Begin()}
}

// EndLeft returns the iterator after the pair with the largest left key.
func (m *Map[L, R]) EndLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{m.left.End()}
}

// BeginRight returns the iterator to the pair with the smallest right key.
func (m *Map[L, R]) BeginRight() RightIterator[L, R] {
	return RightIterator[L, R]{m.right.Begin()}
}

// EndRight returns the iterator after the pair with the largest right key.
func (m *Map[L, R]) EndRight() RightIterator[L, R] {
	return RightIterator[L, R]{m.right.End()}
}

// Stats describes the shape of a Map.
type Stats struct {
	Size        int // number of pairs
	LeftHeight  int // longest root to leaf path in left order
	RightHeight int // longest root to leaf path in right order
}

// Stats returns the size and the tree heights of m in O(n).
// The trees are not rebalanced, the heights depend on the insertion order.
func (m *Map[L, R]) Stats() Stats {
	return Stats{
		Size:        m.size,
		LeftHeight:  m.left.Height(),
		RightHeight: m.right.Height(),
	}
}
