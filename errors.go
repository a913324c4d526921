// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bimap

import "errors"

// ErrNotFound is returned by [Map.AtLeft] and [Map.AtRight] for a missing key.
// Test for it with errors.Is, the returned error carries the key.
var ErrNotFound = errors.New("bimap: key not found")

// ErrCorrupt is returned by [Map.Verify] for a broken Map.
var ErrCorrupt = errors.New("bimap: corrupt")
