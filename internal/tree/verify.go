// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned by [Tree.Verify] for a broken tree.
var ErrCorrupt = errors.New("tree: corrupt")

// Verify checks the structural invariants of t:
//
//   - the sentinel has no parent and no right child
//   - the root, if any, has the sentinel as parent
//   - every child points back to its parent
//   - the in-order sequence of keys is strictly increasing
//
// It is O(n) and meant for tests and debugging.
func (t *Tree[K, N]) Verify() error {
	sl := t.Link(t.sentinel)
	if sl.parent != nil || sl.right != nil {
		return fmt.Errorf("%w: sentinel has parent or right child", ErrCorrupt)
	}

	root := sl.left
	if root == nil {
		return nil
	}
	if t.Link(root).parent != t.sentinel {
		return fmt.Errorf("%w: root is not a child of the sentinel", ErrCorrupt)
	}

	if err := t.verifyRec(root); err != nil {
		return err
	}

	// strictly increasing in-order, at most one pass over n nodes
	prev := t.Begin()
	for cur := t.Next(prev); cur != t.sentinel; prev, cur = cur, t.Next(cur) {
		if !t.Less(t.Key(prev), t.Key(cur)) {
			return fmt.Errorf("%w: keys out of order: %v, %v", ErrCorrupt, t.Key(prev), t.Key(cur))
		}
	}

	return nil
}

// verifyRec checks the parent pointers of the subtree below n.
func (t *Tree[K, N]) verifyRec(n *N) error {
	nl := t.Link(n)
	for _, kid := range [2]*N{nl.left, nl.right} {
		if kid == nil {
			continue
		}
		if kid == t.sentinel {
			return fmt.Errorf("%w: sentinel linked as child", ErrCorrupt)
		}
		if t.Link(kid).parent != n {
			return fmt.Errorf("%w: child of %v has wrong parent", ErrCorrupt, t.Key(n))
		}
		if err := t.verifyRec(kid); err != nil {
			return err
		}
	}
	return nil
}
