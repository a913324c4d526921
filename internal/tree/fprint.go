// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"io"
)

// Fprint writes a diagram of the tree shape to w, one node per line.
// Left children are printed before right children, each labelled
// with the side it hangs on:
//
//	▼
//	└─ 4
//	   ├─ L 2
//	   │  └─ R 3
//	   └─ R 6
//
// format renders a node, nil means the key is printed with %v.
func (t *Tree[K, N]) Fprint(w io.Writer, format func(n *N) string) error {
	if format == nil {
		format = func(n *N) string { return fmt.Sprint(t.Key(n)) }
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	root := t.root()
	if root == nil {
		return nil
	}

	if _, err := fmt.Fprintf(w, "└─ %s\n", format(root)); err != nil {
		return err
	}
	return t.fprintRec(w, root, "   ", format)
}

// fprintRec prints the children of n, pad is the current indentation.
func (t *Tree[K, N]) fprintRec(w io.Writer, n *N, pad string, format func(*N) string) error {
	nl := t.Link(n)

	type kid struct {
		n    *N
		side string
	}

	kids := make([]kid, 0, 2)
	if nl.left != nil {
		kids = append(kids, kid{nl.left, "L"})
	}
	if nl.right != nil {
		kids = append(kids, kid{nl.right, "R"})
	}

	glyph := "├─ "
	spacer := "│  "
	for i, k := range kids {
		if i == len(kids)-1 {
			glyph = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s %s\n", pad, glyph, k.side, format(k.n)); err != nil {
			return err
		}

		if err := t.fprintRec(w, k.n, pad+spacer, format); err != nil {
			return err
		}
	}

	return nil
}
