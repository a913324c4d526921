// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import (
	"log/slog"

	"github.com/gaissmai/bimap/internal/value"
)

// Cloner is an interface that enables deep cloning of keys of type K.
// If a key type implements Cloner[K], [Map.Clone] and [Map.CopyFrom]
// use its Clone method to copy every key of that type.
type Cloner[K any] = value.Cloner[K]

// Clone returns a copy of m with the same comparators and options.
// The copy is independent, mutating one never affects the other.
//
// The pairs are inserted one by one, in preorder of the left tree, so the
// copy has the same left tree shape as m. If a comparator or a Clone method
// panics, the pairs copied so far are erased before the panic propagates.
func (m *Map[L, R]) Clone() *Map[L, R] {
	if m == nil {
		return nil
	}

	c := m.empty()
	cloneL := value.CloneFuncFor[L]()
	cloneR := value.CloneFuncFor[R]()

	committed := false
	defer func() {
		if committed {
			return
		}
		m.opts.logger.Warn("bimap: clone rolled back", slog.Int("copied", c.size))
		c.EraseLeftRange(c.BeginLeft(), c.EndLeft())
	}()

	for rec := range m.left.Preorder {
		c.Insert(cloneL(rec.left), cloneR(rec.right))
	}

	committed = true
	return c
}

// CopyFrom replaces the pairs and the comparators of m with a copy of o,
// see [Map.Clone]. Copying from itself or from an equal Map is a no-op.
// If the copy panics, m is unchanged. o must not be nil.
func (m *Map[L, R]) CopyFrom(o *Map[L, R]) {
	if m == o || m.Equal(o) {
		return
	}
	c := o.Clone()
	m.Swap(c)
}

// Move returns a new Map that takes over all pairs of m in O(1).
// m is empty afterwards and stays usable.
//
// Iterators to pairs stay valid and now belong to the returned Map, the
// end iterators of m stay the end iterators of m.
func (m *Map[L, R]) Move() *Map[L, R] {
	dst := m.empty()

	dst.left.Adopt(&m.left)
	dst.right.Adopt(&m.right)
	dst.size, m.size = m.size, 0

	return dst
}

// Swap exchanges the pairs and the comparators of m and o in O(1),
// no pair is touched. The options, e.g. the logger, stay.
func (m *Map[L, R]) Swap(o *Map[L, R]) {
	if m == o {
		return
	}
	m.left.Swap(&o.left)
	m.right.Swap(&o.right)
	m.size, o.size = o.size, m.size
}
