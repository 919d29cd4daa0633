// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package d64 implements the adaptive-Huffman + LZ77 compression codec used
// by the Doom 64 / PSX Doom asset pipeline.
//
// The codec operates on fully-buffered byte regions: the caller supplies the
// complete input and a fixed-capacity output buffer, and Encode/Decode return
// the number of bytes produced or fail the whole operation. There is no
// streaming mode and no partial-success result; see Decode and Encode.
package d64

import "github.com/dsnet/golib/errs"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "d64: " + string(e) }

var (
	// ErrCorrupt reports that the input bit-stream could not be decoded,
	// either because it ended early or because it produced a symbol the
	// decoder could not act on.
	ErrCorrupt error = Error("stream is corrupted or truncated")

	// ErrShortBuffer reports that the caller-supplied output buffer ran out
	// of space before the operation completed.
	ErrShortBuffer error = Error("output buffer too small")

	// ErrInvalid reports an encoder-side invariant violation: a selected
	// match's distance does not fit the extra bits of its shift class.
	ErrInvalid error = Error("internal encoding invariant violated")
)

func assert(cond bool, err error) { errs.Assert(cond, err) }
