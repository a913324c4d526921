// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import "github.com/gaissmai/bimap/internal/tree"

// LeftIterator is a position in the left order of a [Map].
//
// Iterators are comparable, two iterators are equal if they point to the
// same pair, or both are the end of the same Map. The zero value is not a
// valid position.
//
// Walking is circular: Next of the last pair is the end, Next of the end is
// the first pair, and vice versa for Prev.
type LeftIterator[L, R any] struct {
	rec *record[L, R]
}

// Key returns the left key of the pair.
// For the end iterator the zero value is returned.
func (it LeftIterator[L, R]) Key() L {
	return it.rec.left
}

// Value returns the right key paired with Key.
// For the end iterator the zero value is returned.
func (it LeftIterator[L, R]) Value() R {
	return it.rec.right
}

// Next returns the iterator to the next pair in left order.
func (it LeftIterator[L, R]) Next() LeftIterator[L, R] {
	return LeftIterator[L, R]{tree.Next(it.rec, leftLinkOf[L, R])}
}

// Prev returns the iterator to the previous pair in left order.
func (it LeftIterator[L, R]) Prev() LeftIterator[L, R] {
	return LeftIterator[L, R]{tree.Prev(it.rec, leftLinkOf[L, R])}
}

// Flip returns the iterator to the same pair in right order in O(1).
// The end in left order flips to the end in right order.
func (it LeftIterator[L, R]) Flip() RightIterator[L, R] {
	return RightIterator[L, R](it)
}

// IsEnd reports whether it is the end of the left order.
func (it LeftIterator[L, R]) IsEnd() bool {
	return tree.IsSentinel(it.rec, leftLinkOf[L, R])
}

// RightIterator is a position in the right order of a [Map],
// see [LeftIterator].
type RightIterator[L, R any] struct {
	rec *record[L, R]
}

// Key returns the right key of the pair.
// For the end iterator the zero value is returned.
func (it RightIterator[L, R]) Key() R {
	return it.rec.right
}

// Value returns the left key paired with Key.
// For the end iterator the zero value is returned.
func (it RightIterator[L, R]) Value() L {
	return it.rec.left
}

// Next returns the iterator to the next pair in right order.
func (it RightIterator[L, R]) Next() RightIterator[L, R] {
	return RightIterator[L, R]{tree.Next(it.rec, rightLinkOf[L, R])}
}

// Prev returns the iterator to the previous pair in right order.
func (it RightIterator[L, R]) Prev() RightIterator[L, R] {
	return RightIterator[L, R]{tree.Prev(it.rec, rightLinkOf[L, R])}
}

// Flip returns the iterator to the same pair in left order in O(1).
// The end in right order flips to the end in left order.
func (it RightIterator[L, R]) Flip() LeftIterator[L, R] {
	return LeftIterator[L, R](it)
}

// IsEnd reports whether it is the end of the right order.
func (it RightIterator[L, R]) IsEnd() bool {
	return tree.IsSentinel(it.rec, rightLinkOf[L, R])
}
