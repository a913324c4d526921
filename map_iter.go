// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import "iter"

// All returns an iterator over all pairs in ascending left order.
//
// Pairs must not be inserted or erased during iteration, otherwise
// the behavior is undefined.
//
// If the yield function returns false, the iteration ends prematurely.
func (m *Map[L, R]) All() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for rec := m.left.Begin(); rec != m.left.End(); rec = m.left.Next(rec) {
			if !yield(rec.left, rec.right) {
				return
			}
		}
	}
}

// AllRight returns an iterator over all pairs in ascending right order,
// the right key first. See [Map.All].
func (m *Map[L, R]) AllRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for rec := m.right.Begin(); rec != m.right.End(); rec = m.right.Next(rec) {
			if !yield(rec.right, rec.left) {
				return
			}
		}
	}
}

// Backward returns an iterator over all pairs in descending left order.
// See [Map.All].
func (m *Map[L, R]) Backward() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		for rec := m.left.Last(); rec != m.left.End(); rec = m.left.Prev(rec) {
			if !yield(rec.left, rec.right) {
				return
			}
		}
	}
}

// BackwardRight returns an iterator over all pairs in descending right order,
// the right key first. See [Map.All].
func (m *Map[L, R]) BackwardRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		for rec := m.right.Last(); rec != m.right.End(); rec = m.right.Prev(rec) {
			if !yield(rec.right, rec.left) {
				return
			}
		}
	}
}
