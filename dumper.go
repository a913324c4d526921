// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (m *Map[L, R]) dumpString() string {
	w := new(strings.Builder)
	m.dump(w)

	return w.String()
}

// dump the shape of both trees to w.
func (m *Map[L, R]) dump(w io.Writer) {
	if m == nil {
		return
	}

	st := m.Stats()

	fmt.Fprintf(w, "### left: size(%d), height(%d)\n", st.Size, st.LeftHeight)
	_ = m.left.Fprint(w, func(rec *record[L, R]) string {
		return fmt.Sprintf("%v (%v)", rec.left, rec.right)
	})

	fmt.Fprintf(w, "### right: size(%d), height(%d)\n", st.Size, st.RightHeight)
	_ = m.right.Fprint(w, func(rec *record[L, R]) string {
		return fmt.Sprintf("%v (%v)", rec.right, rec.left)
	})
}
