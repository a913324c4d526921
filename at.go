// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import (
	"fmt"
	"log/slog"
)

// AtLeft returns the right key paired with left.
// If left is absent, the error wraps [ErrNotFound].
func (m *Map[L, R]) AtLeft(left L) (R, error) {
	rec := m.left.Find(left)
	if rec == m.left.End() {
		var zero R
		return zero, fmt.Errorf("%w: left %v", ErrNotFound, left)
	}
	return rec.right, nil
}

// AtRight returns the left key paired with right.
// If right is absent, the error wraps [ErrNotFound].
func (m *Map[L, R]) AtRight(right R) (L, error) {
	rec := m.right.Find(right)
	if rec == m.right.End() {
		var zero L
		return zero, fmt.Errorf("%w: right %v", ErrNotFound, right)
	}
	return rec.left, nil
}

// AtLeftOrDefault returns the right key paired with left.
//
// If left is absent it is bound to the zero value of R:
//
//   - if the zero value of R is unbound, the pair (left, zero) is inserted
//   - if the zero value of R is bound to some old left key, that pair is
//     replaced by (left, zero), the size does not change
//
// In both cases the bound right key is returned.
func (m *Map[L, R]) AtLeftOrDefault(left L) R {
	if rec := m.left.Find(left); rec != m.left.End() {
		return rec.right
	}

	var zero R
	rec := m.right.Find(zero)
	if rec == m.right.End() {
		m.Insert(left, zero)
		return zero
	}

	// rebind: replace the old pair by a fresh one with the same right key
	m.opts.logger.Debug("bimap: rebind default right key",
		slog.Any("old", rec.left),
		slog.Any("new", left),
	)

	right := rec.right
	m.erase(rec)
	m.Insert(left, right)

	return right
}

// AtRightOrDefault returns the left key paired with right.
// If right is absent it is bound to the zero value of L,
// see [Map.AtLeftOrDefault].
func (m *Map[L, R]) AtRightOrDefault(right R) L {
	if rec := m.right.Find(right); rec != m.right.End() {
		return rec.left
	}

	var zero L
	rec := m.left.Find(zero)
	if rec == m.left.End() {
		m.Insert(zero, right)
		return zero
	}

	m.opts.logger.Debug("bimap: rebind default left key",
		slog.Any("old", rec.right),
		slog.Any("new", right),
	)

	left := rec.left
	m.erase(rec)
	m.Insert(left, right)

	return left
}
