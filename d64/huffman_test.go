// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuffmanTreeInitialLayout(t *testing.T) {
	tr := NewHuffmanTree()
	assert.EqualValues(t, 1, tr.parent[rootIdx])
	for i := 1; i <= numInternal; i++ {
		assert.EqualValues(t, 2*i, tr.left[i], "left[%d]", i)
		assert.EqualValues(t, 2*i+1, tr.right[i], "right[%d]", i)
	}
	for i := 2; i <= numNodes; i++ {
		assert.EqualValues(t, i/2, tr.parent[i], "parent[%d]", i)
		assert.EqualValues(t, 1, tr.weight[i], "weight[%d]", i)
	}
}

func TestLeafIndexRoundTrip(t *testing.T) {
	for sym := 0; sym < numSymbols; sym++ {
		idx := leafIndex(sym)
		require.True(t, idx > numInternal && idx <= numNodes)
		assert.Equal(t, sym, idx-numInternal-1)
	}
}

// encodeThenDecode round-trips a sequence of symbols through a fresh
// writer/reader pair, each side driving its own tree exactly as the D64
// encoder and decoder do.
func encodeThenDecode(t *testing.T, symbols []int) {
	t.Helper()
	encTree := NewHuffmanTree()
	buf := make([]byte, 4*len(symbols)+8)
	bw := NewBitWriter(buf)
	for _, s := range symbols {
		encTree.EncodeSymbol(s, bw)
		encTree.Update(s)
	}
	bw.Flush()

	decTree := NewHuffmanTree()
	br := NewBitReader(buf)
	for _, want := range symbols {
		got := decTree.DecodeSymbol(br)
		decTree.Update(got)
		assert.Equal(t, want, got)
	}
}

func TestHuffmanTreeSynchrony(t *testing.T) {
	symbols := []int{65, 65, 66, 256 + 1, 0, 255, 628, 65, 65, 65}
	encodeThenDecode(t, symbols)
}

func TestHuffmanTreeRescaleBound(t *testing.T) {
	tr := NewHuffmanTree()
	buf := make([]byte, 1<<20)
	bw := NewBitWriter(buf)
	for i := 0; i < 20000; i++ {
		sym := i % numSymbols
		tr.EncodeSymbol(sym, bw)
		tr.Update(sym)
		assert.LessOrEqual(t, tr.RootWeight(), rescaleLimit)
	}
}

func TestLengthSymbolDecompose(t *testing.T) {
	for c := 0; c < numShiftClasses; c++ {
		for length := 3; length <= 64; length++ {
			sym := lengthSymbol(c, length)
			gotC, gotLen := decomposeLengthSymbol(sym)
			assert.Equal(t, c, gotC)
			assert.Equal(t, length, gotLen)
		}
	}
}
