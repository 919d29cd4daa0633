// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

// Alphabet layout (see spec §3): 629 symbols, one leaf per symbol.
const (
	numSymbols  = 629 // 0..255 literals, 256 EOS, 257..628 length symbols
	numInternal = numSymbols - 1
	numNodes    = numInternal + numSymbols // 1257

	eosSymbol = 256

	numShiftClasses  = 6
	symsPerShiftClass = 62

	rootIdx      = 1
	rescaleLimit = 2000
)

// ShiftTable gives the number of little-endian "extra" bits that follow each
// shift class's length symbol.
var ShiftTable = [numShiftClasses]uint{4, 6, 8, 10, 12, 14}

// OffsetBase is the prefix sum of 1<<ShiftTable, i.e. the cumulative base
// distance contributed by each shift class.
var OffsetBase = [numShiftClasses]int{0, 16, 80, 336, 1360, 5456}

// OffsetUpperBound[c] is the largest (base + extra) reach of shift class c,
// not counting the match length, i.e. OffsetBase[c] + (1<<ShiftTable[c]) - 1. Derived from the
// "tableVar01[6..11]" cache in the original source (see SPEC_FULL.md §3).
var OffsetUpperBound = func() (out [numShiftClasses]int) {
	for i, base := range OffsetBase {
		out[i] = base + (1 << ShiftTable[i]) - 1
	}
	return out
}()

// WindowSize is the capacity of the LZ back-reference window: OffsetBase[5],
// the sum of 1<<ShiftTable[i] over the first five shift classes.
const WindowSize = 5456

// lengthSymbol returns the symbol encoding (shiftClass, length).
func lengthSymbol(shiftClass int, length int) int {
	return 257 + symsPerShiftClass*shiftClass + (length - 3)
}

// decomposeLengthSymbol splits a length symbol (>= 257) into its shift class
// and literal match length.
func decomposeLengthSymbol(sym int) (shiftClass, length int) {
	rel := sym - 257
	shiftClass = rel / symsPerShiftClass
	length = rel - symsPerShiftClass*shiftClass + 3
	return shiftClass, length
}

func leafIndex(symbol int) int { return numInternal + 1 + symbol }

// HuffmanTree is the adaptive Huffman tree shared, in lockstep, by the D64
// encoder and decoder: every decode_symbol/encode_symbol call is followed by
// exactly one update() call, and both sides run the identical update so
// their code assignments never diverge.
//
// Node indices run 1..numNodes. Index 0 is unused so that node index and
// array index coincide. Internal nodes occupy 1..numInternal (628); leaves
// occupy numInternal+1..numNodes (629..1257), with the leaf for symbol s at
// numInternal+1+s.
type HuffmanTree struct {
	weight [numNodes + 1]int16
	left   [numNodes + 1]int32
	right  [numNodes + 1]int32
	parent [numNodes + 1]int32
}

// NewHuffmanTree builds the tree in its deterministic initial layout (spec
// §3): a complete binary tree of numInternal internal nodes and numSymbols
// leaves, left[i]=2i, right[i]=2i+1, parent[i]=i/2, every node's weight
// initialized to 1 except the root (whose weight is derived the first time
// an update reaches it).
func NewHuffmanTree() *HuffmanTree {
	t := new(HuffmanTree)
	t.Reset()
	return t
}

// Reset restores the tree to its initial deterministic layout, discarding
// any adaptation performed so far.
func (t *HuffmanTree) Reset() {
	t.parent[rootIdx] = rootIdx
	t.weight[rootIdx] = 0
	for i := 1; i <= numInternal; i++ {
		t.left[i] = int32(2 * i)
		t.right[i] = int32(2*i + 1)
	}
	for i := 2; i <= numNodes; i++ {
		t.parent[i] = int32(i / 2)
		t.weight[i] = 1
	}
}

// DecodeSymbol walks from the root following left[node] on a 0 bit and
// right[node] on a 1 bit until it reaches a leaf, and returns that leaf's
// symbol. The caller must invoke Update(symbol) immediately afterward.
func (t *HuffmanTree) DecodeSymbol(r *BitReader) int {
	node := rootIdx
	for node <= numInternal {
		if r.ReadBit() == 0 {
			node = int(t.left[node])
		} else {
			node = int(t.right[node])
		}
	}
	return node - numInternal - 1
}

// EncodeSymbol emits the current code for symbol by walking from its leaf to
// the root recording left/right choices, then writing those bits root-first
// (the reverse of traversal order). The caller must invoke Update(symbol)
// immediately afterward.
func (t *HuffmanTree) EncodeSymbol(symbol int, w *BitWriter) {
	k := leafIndex(symbol)
	var path [numNodes]uint8 // path[i] = bit taken at depth i, leaf-to-root order
	n := 0
	for k != rootIdx {
		p := int(t.parent[k])
		if int(t.left[p]) == k {
			path[n] = 0
		} else {
			path[n] = 1
		}
		n++
		k = p
	}
	for i := n - 1; i >= 0; i-- {
		w.WriteBit(uint(path[i]))
	}
}

// Update performs the post-symbol adaptive rebalance described in spec §4.3:
// increment the leaf's weight, then repeatedly compare the current node
// against its "uncle" (its parent's sibling under the grandparent) one level
// up, swapping positions whenever the uncle is lighter, recomputing ancestor
// weights bottom-up after each step, until the walk reaches a direct child
// of the root. A final rescale halves every weight once the root reaches
// rescaleLimit.
func (t *HuffmanTree) Update(symbol int) {
	k := leafIndex(symbol)
	t.weight[k]++

	for t.parent[k] != rootIdx {
		p := int(t.parent[k])
		gp := int(t.parent[p])

		var sibling int
		if int(t.left[gp]) == p {
			sibling = int(t.right[gp])
		} else {
			sibling = int(t.left[gp])
		}

		if t.weight[sibling] < t.weight[k] {
			if int(t.left[p]) == k {
				t.left[p] = int32(sibling)
			} else {
				t.right[p] = int32(sibling)
			}
			if int(t.left[gp]) == sibling {
				t.left[gp] = int32(k)
			} else {
				t.right[gp] = int32(k)
			}
			t.parent[k] = int32(gp)
			t.parent[sibling] = int32(p)
		}

		for a := p; ; a = int(t.parent[a]) {
			t.weight[a] = t.weight[t.left[a]] + t.weight[t.right[a]]
			if a == rootIdx {
				break
			}
		}

		k = p
	}

	if t.weight[rootIdx] == rescaleLimit {
		for i := 1; i <= numNodes; i++ {
			t.weight[i] >>= 1
		}
	}
}

// RootWeight reports the root node's current weight, exposed for the
// rescale-bound test property (spec §8 property 4).
func (t *HuffmanTree) RootWeight() int { return int(t.weight[rootIdx]) }
