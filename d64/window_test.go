// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLZWindowAppendAndAt(t *testing.T) {
	w := NewLZWindow()
	for i, b := range []byte("hello") {
		w.Append(b)
		assert.Equal(t, i+1, w.Head())
	}
	assert.Equal(t, byte('h'), w.At(0))
	assert.Equal(t, byte('o'), w.At(4))
}

func TestLZWindowWrapsAtCapacity(t *testing.T) {
	w := NewLZWindow()
	for i := 0; i < WindowSize; i++ {
		w.Append(byte(i))
	}
	assert.Equal(t, 0, w.Head())
	w.Append(0xFF)
	assert.Equal(t, 1, w.Head())
	assert.Equal(t, byte(0xFF), w.At(0))
}

// MatchBytes must stay correct even for a distance shorter than length
// (telescoping self-reference), even though no match this package's own
// encoder produces ever has distance < length.
func TestLZWindowMatchBytesTelescopes(t *testing.T) {
	w := NewLZWindow()
	w.Append('A')
	got := w.MatchBytes(1, 5)
	require.Len(t, got, 5)
	for _, b := range got {
		assert.Equal(t, byte('A'), b)
	}
}

func TestLZWindowFindMatch(t *testing.T) {
	w := NewLZWindow()
	for _, b := range []byte("abcabc") {
		w.Append(b)
	}
	input := []byte("abcabcabc")
	length, distance, ok := w.FindMatch(input, 6)
	require.True(t, ok)
	assert.Equal(t, 3, distance)
	assert.GreaterOrEqual(t, length, 3)
}

func TestLZWindowFindMatchNone(t *testing.T) {
	w := NewLZWindow()
	for _, b := range []byte("xyz") {
		w.Append(b)
	}
	_, _, ok := w.FindMatch([]byte("abcdef"), 0)
	assert.False(t, ok)
}
