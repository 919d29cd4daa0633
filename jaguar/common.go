// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package jaguar implements the byte-aligned LZSS codec used by the
// original Jaguar Doom asset pipeline. It shares the D64 codec's
// buffer-in/buffer-out calling convention but has no relation to its
// Huffman machinery: matches are encoded as plain distance/length byte
// pairs behind an 8-bit control byte.
package jaguar

import "github.com/dsnet/golib/errs"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "jaguar: " + string(e) }

var (
	// ErrCorrupt reports that the input stream ended early or referenced a
	// back-reference position before the start of the output.
	ErrCorrupt error = Error("stream is corrupted or truncated")

	// ErrShortBuffer reports that the caller-supplied output buffer ran out
	// of space before the operation completed.
	ErrShortBuffer error = Error("output buffer too small")
)

func assert(cond bool, err error) { errs.Assert(cond, err) }
