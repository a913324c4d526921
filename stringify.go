// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Map.Fprint].
func (m *Map[L, R]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := m.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns the pairs in left order as string, just a wrapper for
// [Map.Fprint]. If Fprint returns an error, String panics.
func (m *Map[L, R]) String() string {
	w := new(strings.Builder)
	if err := m.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes the pairs in ascending left order to w,
// one pair per line, with the default formats of L and R.
// If w is nil, Fprint panics.
//
//	▼
//	├─ 1 ⇄ a
//	├─ 2 ⇄ c
//	└─ 3 ⇄ b
func (m *Map[L, R]) Fprint(w io.Writer) error {
	if m == nil || m.Empty() {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	last := m.left.Last()
	for rec := m.left.Begin(); rec != m.left.End(); rec = m.left.Next(rec) {
		glyph := "├─ "
		if rec == last {
			glyph = "└─ "
		}

		if _, err := fmt.Fprintf(w, "%s%v ⇄ %v\n", glyph, rec.left, rec.right); err != nil {
			return err
		}
	}

	return nil
}
