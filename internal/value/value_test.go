// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tags is a slice key with a deep copy.
type tags []string

func (t tags) Clone() tags {
	if t == nil {
		return nil
	}
	return append(tags(nil), t...)
}

// ref is a pointer key with a deep copy.
type ref struct{ n int }

func (r *ref) Clone() *ref {
	if r == nil {
		return nil
	}
	return &ref{n: r.n}
}

func TestCloneFuncFor(t *testing.T) {
	t.Parallel()

	t.Run("plain value", func(t *testing.T) {
		t.Parallel()
		fn := CloneFuncFor[int]()
		assert.Equal(t, 42, fn(42))
	})

	t.Run("slice cloner", func(t *testing.T) {
		t.Parallel()
		src := tags{"a", "b"}
		dst := CloneFuncFor[tags]()(src)

		assert.Equal(t, src, dst)
		dst[0] = "z"
		assert.Equal(t, "a", src[0], "clone must not share storage")
	})

	t.Run("pointer cloner", func(t *testing.T) {
		t.Parallel()
		src := &ref{n: 1}
		dst := CloneFuncFor[*ref]()(src)

		assert.NotSame(t, src, dst)
		assert.Equal(t, 1, dst.n)
	})
}

func TestCloneNilReceiver(t *testing.T) {
	t.Parallel()

	var r *ref
	assert.Nil(t, Clone(r))

	var ts tags
	assert.Nil(t, Clone(ts))
}
