// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jaguar

import "github.com/dsnet/golib/errs"

// Encode compresses input into the Jaguar LZSS format, writing into output
// and returning the number of bytes produced. It refuses to run at all if
// output is smaller than the format's worst-case expansion bound
// (inputlen*9/8 + 1, one control byte per 8 literals), and fails rather
// than overrun output during encoding.
func Encode(input, output []byte) (n int, err error) {
	defer errs.Recover(&err)
	assert(len(output) >= len(input)*9/8+1, ErrShortBuffer)
	return encode(input, output), nil
}

func encode(input, output []byte) int {
	h := newHashAccelerator()
	pos, outPos := 0, 0
	putidbyte := 0
	idbyteIdx := 0

	for pos < len(input) {
		if putidbyte == 0 {
			idbyteIdx = outPos
			assert(outPos < len(output), ErrShortBuffer)
			output[outPos] = 0
			outPos++
		}
		putidbyte = (putidbyte + 1) & 7

		lookaheadLen := lookaheadSize
		if rem := len(input) - pos; rem < lookaheadLen {
			lookaheadLen = rem
		}

		matchPos, matchLen := h.bestMatch(input, pos, lookaheadLen)

		var consumed int
		if matchLen >= 3 {
			output[idbyteIdx] = (output[idbyteIdx] >> 1) | 0x80

			distance := pos - matchPos - 1
			assert(outPos+1 < len(output), ErrShortBuffer)
			output[outPos] = byte(distance >> lenShift)
			output[outPos+1] = byte((distance << lenShift) | (matchLen - 1))
			outPos += 2
			consumed = matchLen
		} else {
			output[idbyteIdx] = output[idbyteIdx] >> 1

			assert(outPos < len(output), ErrShortBuffer)
			output[outPos] = input[pos]
			outPos++
			consumed = 1
		}

		for i := 0; i < consumed; i++ {
			h.insert(input, pos)
			pos++
		}
	}

	if putidbyte == 0 {
		assert(outPos < len(output), ErrShortBuffer)
		output[outPos] = 1
		outPos++
	} else {
		output[idbyteIdx] = ((output[idbyteIdx] >> 1) | 0x80) >> uint(7-putidbyte)
	}

	assert(outPos+1 < len(output), ErrShortBuffer)
	output[outPos] = 0
	output[outPos+1] = 0
	outPos += 2

	return outPos
}
