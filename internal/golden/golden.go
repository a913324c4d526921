// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple reference bijective map as a golden
// model for bimap tests and the workload driver.
//
// GoldMap keeps every pair twice, in two B-trees ordered by the left and
// by the right key. The trees are independent, consistency between them
// is maintained by hand in every method.
package golden

import (
	"cmp"
	"fmt"

	"github.com/google/btree"
)

const degree = 8

// Pair is a left and a right key.
type Pair[L, R cmp.Ordered] struct {
	Left  L
	Right R
}

func (p Pair[L, R]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}

// GoldMap is the slow but obviously correct reference for bimap.Map.
type GoldMap[L, R cmp.Ordered] struct {
	byLeft  *btree.BTreeG[Pair[L, R]]
	byRight *btree.BTreeG[Pair[L, R]]
}

// New returns an empty GoldMap in natural order.
func New[L, R cmp.Ordered]() *GoldMap[L, R] {
	return &GoldMap[L, R]{
		byLeft: btree.NewG(degree, func(a, b Pair[L, R]) bool {
			return a.Left < b.Left
		}),
		byRight: btree.NewG(degree, func(a, b Pair[L, R]) bool {
			return a.Right < b.Right
		}),
	}
}

// Len returns the number of pairs.
func (g *GoldMap[L, R]) Len() int {
	return g.byLeft.Len()
}

// Insert adds the pair and reports true, if neither key is present.
func (g *GoldMap[L, R]) Insert(left L, right R) bool {
	p := Pair[L, R]{left, right}
	if g.byLeft.Has(p) || g.byRight.Has(p) {
		return false
	}
	g.byLeft.ReplaceOrInsert(p)
	g.byRight.ReplaceOrInsert(p)
	return true
}

// AtLeft returns the right key paired with left.
func (g *GoldMap[L, R]) AtLeft(left L) (right R, ok bool) {
	p, ok := g.byLeft.Get(Pair[L, R]{Left: left})
	return p.Right, ok
}

// AtRight returns the left key paired with right.
func (g *GoldMap[L, R]) AtRight(right R) (left L, ok bool) {
	p, ok := g.byRight.Get(Pair[L, R]{Right: right})
	return p.Left, ok
}

// EraseLeft deletes the pair with the left key.
func (g *GoldMap[L, R]) EraseLeft(left L) bool {
	p, ok := g.byLeft.Delete(Pair[L, R]{Left: left})
	if ok {
		g.byRight.Delete(p)
	}
	return ok
}

// EraseRight deletes the pair with the right key.
func (g *GoldMap[L, R]) EraseRight(right R) bool {
	p, ok := g.byRight.Delete(Pair[L, R]{Right: right})
	if ok {
		g.byLeft.Delete(p)
	}
	return ok
}

// AtLeftOrDefault returns the right key of left, an absent left key is
// bound to the zero right key, which is taken away from its old left key.
func (g *GoldMap[L, R]) AtLeftOrDefault(left L) R {
	if right, ok := g.AtLeft(left); ok {
		return right
	}

	var zero R
	g.EraseRight(zero)
	g.Insert(left, zero)
	return zero
}

// AtRightOrDefault is the mirror of AtLeftOrDefault.
func (g *GoldMap[L, R]) AtRightOrDefault(right R) L {
	if left, ok := g.AtRight(right); ok {
		return left
	}

	var zero L
	g.EraseLeft(zero)
	g.Insert(zero, right)
	return zero
}

// LowerBoundLeft returns the first pair with a left key not less than left.
func (g *GoldMap[L, R]) LowerBoundLeft(left L) (p Pair[L, R], ok bool) {
	g.byLeft.AscendGreaterOrEqual(Pair[L, R]{Left: left}, func(item Pair[L, R]) bool {
		p, ok = item, true
		return false
	})
	return
}

// LowerBoundRight returns the first pair with a right key not less than right.
func (g *GoldMap[L, R]) LowerBoundRight(right R) (p Pair[L, R], ok bool) {
	g.byRight.AscendGreaterOrEqual(Pair[L, R]{Right: right}, func(item Pair[L, R]) bool {
		p, ok = item, true
		return false
	})
	return
}

// AllLeft returns all pairs in left order.
func (g *GoldMap[L, R]) AllLeft() []Pair[L, R] {
	return collect(g.byLeft)
}

// AllRight returns all pairs in right order.
func (g *GoldMap[L, R]) AllRight() []Pair[L, R] {
	return collect(g.byRight)
}

// Clone returns an independent copy, the B-trees are copied lazily.
func (g *GoldMap[L, R]) Clone() *GoldMap[L, R] {
	return &GoldMap[L, R]{
		byLeft:  g.byLeft.Clone(),
		byRight: g.byRight.Clone(),
	}
}

func collect[L, R cmp.Ordered](t *btree.BTreeG[Pair[L, R]]) []Pair[L, R] {
	ps := make([]Pair[L, R], 0, t.Len())
	t.Ascend(func(p Pair[L, R]) bool {
		ps = append(ps, p)
		return true
	})
	return ps
}
