// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides helpers for copying generic keys at runtime.
//
// Keys stored in a bimap are treated as immutable once ordered. A plain Go
// assignment is a sufficient copy for value types, but keys holding pointers,
// slices or maps share their backing storage with the source. Such keys may
// implement [Cloner] and [Map.Clone] then calls their Clone method for every
// copied key.
//
// This is an internal package used by the bimap data structure.
package value

// Cloner is implemented by keys that need a deep copy.
type Cloner[K any] interface {
	Clone() K
}

// CloneFunc copies a key of type K.
type CloneFunc[K any] func(K) K

// CloneFuncFor returns the copy function for keys of type K.
//
// If K implements Cloner[K] the returned function calls Clone,
// otherwise it returns the key unchanged.
func CloneFuncFor[K any]() CloneFunc[K] {
	var zero K
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[K]); ok {
		return Clone[K]
	}
	return Copy[K]
}

// Clone returns a deep copy of key by calling Clone when key implements
// Cloner[K], a key without Clone method is returned unchanged.
//
// Clone methods on pointer or slice keys must accept a nil receiver.
func Clone[K any](key K) K {
	c, ok := any(key).(Cloner[K])
	if !ok {
		return key
	}
	return c.Clone()
}

// Copy returns key unchanged, the assignment is the copy.
func Copy[K any](key K) K {
	return key
}
