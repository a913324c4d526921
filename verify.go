// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import "fmt"

// Verify checks the invariants of m in O(n):
//
//   - both orders are valid search trees with consistent links
//   - both orders hold exactly the same pairs
//   - Size is the number of pairs
//
// It is meant for tests and debugging, the returned error wraps
// [ErrCorrupt] and describes the first violation found.
func (m *Map[L, R]) Verify() error {
	if err := m.left.Verify(); err != nil {
		return fmt.Errorf("%w: left: %w", ErrCorrupt, err)
	}
	if err := m.right.Verify(); err != nil {
		return fmt.Errorf("%w: right: %w", ErrCorrupt, err)
	}

	inLeft := make(map[*record[L, R]]struct{}, m.size)
	for rec := m.left.Begin(); rec != m.left.End(); rec = m.left.Next(rec) {
		inLeft[rec] = struct{}{}
	}
	if len(inLeft) != m.size {
		return fmt.Errorf("%w: left holds %d records, size is %d", ErrCorrupt, len(inLeft), m.size)
	}

	n := 0
	for rec := m.right.Begin(); rec != m.right.End(); rec = m.right.Next(rec) {
		if _, ok := inLeft[rec]; !ok {
			return fmt.Errorf("%w: record (%v, %v) only in right", ErrCorrupt, rec.left, rec.right)
		}
		n++
	}
	if n != m.size {
		return fmt.Errorf("%w: right holds %d records, size is %d", ErrCorrupt, n, m.size)
	}

	return nil
}
