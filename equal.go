// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

// Equal reports whether m and o hold the same pairs.
//
// Keys are compared by equivalence under the comparators of m,
// two keys a and b are equivalent if neither is less than the other.
// No equality operator on L or R is needed.
func (m *Map[L, R]) Equal(o *Map[L, R]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m == o {
		return true
	}
	if m.size != o.size {
		return false
	}

	// walk both in left order in lock-step
	a, b := m.left.Begin(), o.left.Begin()
	for a != m.left.End() {
		if !equivalent(m.left.Less, a.left, b.left) || !equivalent(m.right.Less, a.right, b.right) {
			return false
		}
		a, b = m.left.Next(a), o.left.Next(b)
	}

	return true
}

// equivalent reports whether neither key is less than the other.
func equivalent[K any](less func(a, b K) bool, a, b K) bool {
	return !less(a, b) && !less(b, a)
}
