// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

// byteCursor is a fixed-extent, bounds-checked cursor over a caller-owned
// byte buffer. It never grows the underlying slice and never reads or
// writes outside of it; callers detect exhaustion with the ok return.
//
// Two independent cursors back the bit layer: one over the input (for
// decoding) and one over the output (for encoding). Decoded bytes go to an
// outputSink instead, since the decoder
// never needs random access into its own output the way the bit layer needs
// sequential byte pulls from input.
type byteCursor struct {
	buf []byte
	pos int
}

func newByteCursor(buf []byte) byteCursor {
	return byteCursor{buf: buf}
}

// readByte returns the next byte and advances the cursor, or reports failure
// if the cursor has reached the end of buf.
func (c *byteCursor) readByte() (b byte, ok bool) {
	if c.pos >= len(c.buf) {
		return 0, false
	}
	b = c.buf[c.pos]
	c.pos++
	return b, true
}

// writeByte writes b at the cursor and advances it, or reports failure if
// the cursor has reached the end of buf.
func (c *byteCursor) writeByte(b byte) (ok bool) {
	if c.pos >= len(c.buf) {
		return false
	}
	c.buf[c.pos] = b
	c.pos++
	return true
}

// written reports the number of bytes consumed (read cursor) or produced
// (write cursor) so far.
func (c *byteCursor) written() int { return c.pos }

// outputSink is a fixed-extent output region for decoded bytes. It is kept
// separate from byteCursor because the decoder only ever appends, never
// reads back through it (the LZ window is the thing the decoder reads back
// through).
type outputSink struct {
	buf []byte
	n   int
}

func newOutputSink(buf []byte) outputSink {
	return outputSink{buf: buf}
}

func (s *outputSink) put(b byte) (ok bool) {
	if s.n >= len(s.buf) {
		return false
	}
	s.buf[s.n] = b
	s.n++
	return true
}

func (s *outputSink) written() int { return s.n }
