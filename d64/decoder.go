// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

import "github.com/dsnet/golib/errs"

// maxWindowDistance is the largest back-reference distance the decoder
// accepts: the window's last index plus the 64-byte maximum match length
// (5455+64, spec §3/§8 property 5). Shift class 5 can encode larger
// distances; a decoded distance beyond this bound is treated as corrupt.
const maxWindowDistance = WindowSize - 1 + 64

// Decode decompresses a D64 bit-stream produced by Encode. It returns the
// number of bytes written to output, or an error if the stream is truncated,
// corrupt, or the decompressed data would not fit in output. output is never
// partially trusted on failure: the caller must treat its contents as
// indeterminate in that case.
func Decode(input, output []byte) (n int, err error) {
	defer errs.Recover(&err)
	return decode(input, output), nil
}

func decode(input, output []byte) int {
	tree := NewHuffmanTree()
	window := NewLZWindow()
	br := NewBitReader(input)
	out := newOutputSink(output)

	for {
		sym := tree.DecodeSymbol(br)
		tree.Update(sym)

		switch {
		case sym < 256:
			assert(out.put(byte(sym)), ErrShortBuffer)
			window.Append(byte(sym))

		case sym == eosSymbol:
			// Encode pads its output to a multiple of 4 bytes, so an input
			// shorter than the padded length of what was read is truncated.
			assert(len(input) >= (br.BytesRead()+3)&^3, ErrCorrupt)
			return out.written()

		default:
			shiftClass, length := decomposeLengthSymbol(sym)
			extra := br.ReadBitsLSBFirst(ShiftTable[shiftClass])
			distance := OffsetBase[shiftClass] + int(extra) + length
			assert(distance >= length && distance <= maxWindowDistance, ErrCorrupt)

			src := wrap(window.Head() - distance)
			for i := 0; i < length; i++ {
				b := window.At(src)
				assert(out.put(b), ErrShortBuffer)
				window.Append(b)
				src = wrap(src + 1)
			}
		}
	}
}
