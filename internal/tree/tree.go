// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package tree implements an intrusive, unbalanced binary search tree.
//
// The tree does not own its nodes. Every node embeds one [Link] per tree it
// participates in, and the tree reaches that link through [Ops.Link]. This
// allows the same node to be linked into several independent orderings at
// once, each with its own key and comparator.
//
// Each tree is anchored at a caller supplied sentinel node. The sentinel's
// left slot points to the root, its parent is always nil and it is the
// position returned by [Tree.End]. A linked payload node always has a
// non-nil parent, the root's parent is the sentinel.
//
// The tree never rebalances, insertion order determines its shape.
//
// This is an internal package used by the bimap data structure.
package tree

// Link holds the child and parent pointers of one node in one tree.
type Link[N any] struct {
	left   *N
	right  *N
	parent *N
}

// Ops parameterizes a Tree with the link and key accessors and the order.
type Ops[K, N any] struct {
	// Link returns the link structure of n for this tree.
	Link func(n *N) *Link[N]

	// Key returns the ordering key of n, never called for the sentinel.
	Key func(n *N) K

	// Less must be a strict weak ordering. Keys a and b with
	// !Less(a, b) && !Less(b, a) are equivalent.
	Less func(a, b K) bool
}

// Tree is a binary search tree anchored at a sentinel.
//
// The zero value is not usable, call [Tree.Init].
type Tree[K, N any] struct {
	sentinel *N
	Ops[K, N]
}

// Init anchors t at sentinel, the tree is empty afterwards.
func (t *Tree[K, N]) Init(sentinel *N, ops Ops[K, N]) {
	t.sentinel = sentinel
	t.Ops = ops
	*t.Link(sentinel) = Link[N]{}
}

// Sentinel returns the anchor node of t.
func (t *Tree[K, N]) Sentinel() *N {
	return t.sentinel
}

// root returns the root node or nil.
func (t *Tree[K, N]) root() *N {
	return t.Link(t.sentinel).left
}

// Empty reports whether no node is linked into t.
func (t *Tree[K, N]) Empty() bool {
	return t.root() == nil
}

// compare classifies a against b as less, equivalent or greater,
// with two calls of the one-directional comparator.
func (t *Tree[K, N]) compare(a, b K) int {
	if t.Less(a, b) {
		return -1
	}
	if t.Less(b, a) {
		return 1
	}
	return 0
}

// Insert links n into t at its sorted position and reports true.
// If a node with an equivalent key is already linked, Insert reports false
// and leaves t unchanged, first writer wins.
//
// The links of n for this tree must be unused.
func (t *Tree[K, N]) Insert(n *N) bool {
	nl := t.Link(n)
	*nl = Link[N]{}

	cur := t.root()
	if cur == nil {
		t.Link(t.sentinel).left = n
		nl.parent = t.sentinel
		return true
	}

	key := t.Key(n)
	for {
		cl := t.Link(cur)

		switch t.compare(key, t.Key(cur)) {
		case -1:
			if cl.left == nil {
				cl.left = n
				nl.parent = cur
				return true
			}
			cur = cl.left

		case 1:
			if cl.right == nil {
				cl.right = n
				nl.parent = cur
				return true
			}
			cur = cl.right

		default:
			return false
		}
	}
}

// Find returns the node with a key equivalent to key, or the sentinel.
func (t *Tree[K, N]) Find(key K) *N {
	for cur := t.root(); cur != nil; {
		switch t.compare(key, t.Key(cur)) {
		case -1:
			cur = t.Link(cur).left
		case 1:
			cur = t.Link(cur).right
		default:
			return cur
		}
	}
	return t.sentinel
}

// LowerBound returns the first node whose key is not less than key,
// or the sentinel.
func (t *Tree[K, N]) LowerBound(key K) *N {
	res := t.sentinel
	for cur := t.root(); cur != nil; {
		if t.Less(t.Key(cur), key) {
			cur = t.Link(cur).right
			continue
		}
		res = cur
		cur = t.Link(cur).left
	}
	return res
}

// UpperBound returns the first node whose key is greater than key,
// or the sentinel.
func (t *Tree[K, N]) UpperBound(key K) *N {
	res := t.sentinel
	for cur := t.root(); cur != nil; {
		if t.Less(key, t.Key(cur)) {
			res = cur
			cur = t.Link(cur).left
			continue
		}
		cur = t.Link(cur).right
	}
	return res
}

// Erase unlinks n from t and returns it with cleared links.
// The memory of n is not touched otherwise, the caller owns it.
//
// n must be linked into t, erasing the sentinel is undefined.
func (t *Tree[K, N]) Erase(n *N) *N {
	nl := t.Link(n)

	switch {
	case nl.left == nil && nl.right == nil:
		t.replace(n, nil)

	case nl.left == nil:
		t.replace(n, nl.right)

	case nl.right == nil:
		t.replace(n, nl.left)

	default:
		// in-order successor, it has no left child
		succ := leftmost(nl.right, t.Link)
		sl := t.Link(succ)

		if succ != nl.right {
			// detach succ from deep inside the right subtree
			t.replace(succ, sl.right)

			sl.right = nl.right
			t.Link(sl.right).parent = succ
		}

		sl.left = nl.left
		t.Link(sl.left).parent = succ

		t.replace(n, succ)
	}

	*nl = Link[N]{}
	return n
}

// replace puts repl into the child slot of old's parent.
// repl may be nil, the slot is emptied then.
func (t *Tree[K, N]) replace(old, repl *N) {
	parent := t.Link(old).parent
	pl := t.Link(parent)

	if pl.left == old {
		pl.left = repl
	} else {
		pl.right = repl
	}

	if repl != nil {
		t.Link(repl).parent = parent
	}
}

// Begin returns the node with the smallest key, or the sentinel.
func (t *Tree[K, N]) Begin() *N {
	return Next(t.sentinel, t.Link)
}

// Last returns the node with the largest key, or the sentinel.
func (t *Tree[K, N]) Last() *N {
	return Prev(t.sentinel, t.Link)
}

// End returns the sentinel, the position after the last node.
func (t *Tree[K, N]) End() *N {
	return t.sentinel
}

// Next returns the in-order successor of n, see [Next].
func (t *Tree[K, N]) Next(n *N) *N {
	return Next(n, t.Link)
}

// Prev returns the in-order predecessor of n, see [Prev].
func (t *Tree[K, N]) Prev(n *N) *N {
	return Prev(n, t.Link)
}

// Swap exchanges the contents and the comparators of t and o in O(1).
// The link and key accessors stay, both trees must use the same.
func (t *Tree[K, N]) Swap(o *Tree[K, N]) {
	tRoot, oRoot := t.root(), o.root()

	t.setRoot(oRoot)
	o.setRoot(tRoot)

	t.Less, o.Less = o.Less, t.Less
}

// Adopt moves all nodes of o into t in O(1), o is empty afterwards.
// Nodes already linked into t are dropped, the comparator of t is kept.
func (t *Tree[K, N]) Adopt(o *Tree[K, N]) {
	root := o.root()
	o.setRoot(nil)
	t.setRoot(root)
}

// Clear detaches the root in O(1), the nodes keep their stale links.
func (t *Tree[K, N]) Clear() {
	t.setRoot(nil)
}

func (t *Tree[K, N]) setRoot(root *N) {
	t.Link(t.sentinel).left = root
	if root != nil {
		t.Link(root).parent = t.sentinel
	}
}

// Preorder calls yield for every node, parents before their children and
// left subtrees before right subtrees. Inserting the nodes in this order into
// an empty tree reproduces the shape of t.
//
// If yield returns false, the walk stops.
func (t *Tree[K, N]) Preorder(yield func(n *N) bool) {
	t.preorderRec(t.root(), yield)
}

func (t *Tree[K, N]) preorderRec(n *N, yield func(*N) bool) bool {
	if n == nil {
		return true
	}
	nl := t.Link(n)
	return yield(n) &&
		t.preorderRec(nl.left, yield) &&
		t.preorderRec(nl.right, yield)
}

// Len counts the linked nodes in O(n).
func (t *Tree[K, N]) Len() int {
	n := 0
	for cur := t.Begin(); cur != t.sentinel; cur = t.Next(cur) {
		n++
	}
	return n
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *Tree[K, N]) Height() int {
	return t.heightRec(t.root())
}

func (t *Tree[K, N]) heightRec(n *N) int {
	if n == nil {
		return 0
	}
	nl := t.Link(n)
	return 1 + max(t.heightRec(nl.left), t.heightRec(nl.right))
}

// Next returns the in-order successor of n in the tree reached through link.
//
// The walk is circular: the successor of the last node is the sentinel and
// the successor of the sentinel is the first node.
func Next[N any](n *N, link func(*N) *Link[N]) *N {
	nl := link(n)

	// sentinel, step to the leftmost node
	if nl.parent == nil {
		if nl.left == nil {
			return n
		}
		return leftmost(nl.left, link)
	}

	if nl.right != nil {
		return leftmost(nl.right, link)
	}

	// climb while n is a right child, the root is the left child
	// of the sentinel and stops the climb.
	p := nl.parent
	for link(p).right == n {
		n, p = p, link(p).parent
	}
	return p
}

// Prev returns the in-order predecessor of n in the tree reached through link.
//
// The walk is circular: the predecessor of the first node is the sentinel and
// the predecessor of the sentinel is the last node.
func Prev[N any](n *N, link func(*N) *Link[N]) *N {
	nl := link(n)

	if nl.left != nil {
		// sentinel or node with left subtree
		return rightmost(nl.left, link)
	}

	if nl.parent == nil {
		// empty tree
		return n
	}

	// climb while n is a left child, stop at the sentinel
	p := nl.parent
	for link(p).parent != nil && link(p).left == n {
		n, p = p, link(p).parent
	}
	return p
}

// IsSentinel reports whether n is the anchor of its tree.
func IsSentinel[N any](n *N, link func(*N) *Link[N]) bool {
	return link(n).parent == nil
}

func leftmost[N any](n *N, link func(*N) *Link[N]) *N {
	for l := link(n).left; l != nil; l = link(n).left {
		n = l
	}
	return n
}

func rightmost[N any](n *N, link func(*N) *Link[N]) *N {
	for r := link(n).right; r != nil; r = link(n).right {
		n = r
	}
	return n
}
