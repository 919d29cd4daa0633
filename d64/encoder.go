// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

import "github.com/dsnet/golib/errs"

// bootstrapSymbols is the number of leading input bytes the encoder always
// emits as plain literals before attempting any match search (spec §4.4b).
const bootstrapSymbols = 14

// Encode compresses input into the D64 bit-stream format, writing into
// output and returning the number of bytes produced (always a multiple of
// 4). It fails if output is too small to hold the compressed result or if
// an internal invariant is violated; on failure output's contents are
// indeterminate.
func Encode(input, output []byte) (n int, err error) {
	defer errs.Recover(&err)
	return encode(input, output), nil
}

func encode(input, output []byte) int {
	tree := NewHuffmanTree()
	window := NewLZWindow()
	bw := NewBitWriter(output)

	emitLiteral := func(b byte) {
		tree.EncodeSymbol(int(b), bw)
		tree.Update(int(b))
		window.Append(b)
	}

	pos := 0
	bootstrapLen := bootstrapSymbols
	if bootstrapLen > len(input) {
		bootstrapLen = len(input)
	}
	for ; pos < bootstrapLen; pos++ {
		emitLiteral(input[pos])
	}

	for pos < len(input) {
		length, distance, found := window.FindMatch(input, pos)
		if !found {
			emitLiteral(input[pos])
			pos++
			continue
		}

		shiftClass := selectShiftClass(distance, length)
		extra := distance - length - OffsetBase[shiftClass]
		assert(extra >= 0 && extra < (1<<ShiftTable[shiftClass]), ErrInvalid)

		// Re-verify the candidate against the real input and fall back to a
		// literal if it does not hold up, rather than emitting a match the
		// decoder would expand into different bytes (spec §4.4b and §7).
		if !bytesEqual(window.MatchBytes(distance, length), input[pos:pos+length]) {
			emitLiteral(input[pos])
			pos++
			continue
		}

		sym := lengthSymbol(shiftClass, length)
		tree.EncodeSymbol(sym, bw)
		tree.Update(sym)
		bw.WriteBitsLSBFirst(uint(extra), ShiftTable[shiftClass])

		for i := 0; i < length; i++ {
			window.Append(input[pos+i])
		}
		pos += length
	}

	tree.EncodeSymbol(eosSymbol, bw)
	tree.Update(eosSymbol)
	bw.Flush()

	for bw.BytesWritten()%4 != 0 {
		assert(bw.writeRawByte(0), ErrShortBuffer)
	}
	return bw.BytesWritten()
}

// selectShiftClass picks the smallest shift class whose offset range can
// reach distance for the given match length, per spec §4.4b step 2.
func selectShiftClass(distance, length int) int {
	for c := 0; c < numShiftClasses; c++ {
		if distance <= OffsetUpperBound[c]+length {
			return c
		}
	}
	return numShiftClasses - 1
}
