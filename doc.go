// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bimap provides an ordered bijective map of left and right keys.
//
// A [Map] holds pairs (left, right) where every left key is unique under
// the left comparator and every right key is unique under the right
// comparator. Each pair is stored exactly once, in a record that is linked
// into two binary search trees at the same time, one ordered by the left
// keys and one ordered by the right keys.
//
// Both orders can be searched, walked in both directions and erased from:
//
//   - [Map.FindLeft], [Map.LowerBoundLeft], [Map.UpperBoundLeft]
//   - [Map.FindRight], [Map.LowerBoundRight], [Map.UpperBoundRight]
//   - [LeftIterator.Flip] and [RightIterator.Flip] switch the order
//     of a position in O(1)
//
// Keys need no equality operator, two keys are equivalent if neither is
// less than the other.
//
// The trees are not rebalanced, the insertion order determines their
// height. A Map is not safe for concurrent use.
package bimap
