// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jaguar

import "github.com/dsnet/golib/errs"

// Decode decompresses a Jaguar LZSS stream produced by Encode, writing into
// output and returning the number of bytes written. It fails rather than
// overrun output if the stream claims more data than output can hold, and
// fails rather than read past input if the stream is truncated.
func Decode(input, output []byte) (n int, err error) {
	defer errs.Recover(&err)
	return decode(input, output), nil
}

func decode(input, output []byte) int {
	getidbyte := 0
	var idbyte byte
	inPos, outPos := 0, 0

	for {
		if getidbyte == 0 {
			assert(inPos < len(input), ErrCorrupt)
			idbyte = input[inPos]
			inPos++
		}
		getidbyte = (getidbyte + 1) & 7

		if idbyte&1 != 0 {
			assert(inPos+1 < len(input), ErrCorrupt)
			h, l := input[inPos], input[inPos+1]
			inPos += 2

			pos := (int(h) << 4) | (int(l) >> 4)
			length := int(l&0xF) + 1
			if length == 1 {
				break
			}

			src := outPos - pos - 1
			assert(src >= 0, ErrCorrupt)
			for i := 0; i < length; i++ {
				assert(outPos < len(output), ErrShortBuffer)
				output[outPos] = output[src]
				outPos++
				src++
			}
		} else {
			assert(inPos < len(input), ErrCorrupt)
			assert(outPos < len(output), ErrShortBuffer)
			output[outPos] = input[inPos]
			outPos++
			inPos++
		}

		idbyte >>= 1
	}

	return outPos
}
