// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Killertamagotchi/d64make/internal/testutil"
)

// roundTrip encodes then decodes input, asserting both stages succeed and
// the decoded bytes equal the original.
func roundTrip(t *testing.T, input []byte) (encoded []byte) {
	t.Helper()
	outBuf := make([]byte, len(input)*2+256)
	n, err := Encode(input, outBuf)
	require.NoError(t, err)
	encoded = outBuf[:n]

	decBuf := make([]byte, len(input))
	m, err := Decode(encoded, decBuf)
	require.NoError(t, err)
	assert.Equal(t, len(input), m)
	if diff := cmp.Diff(input, decBuf[:m]); diff != "" {
		t.Errorf("decoded output mismatch (-want +got):\n%s", diff)
	}
	return encoded
}

// S1: empty input.
func TestCodecEmptyInput(t *testing.T) {
	enc := roundTrip(t, nil)
	assert.Equal(t, 0, len(enc)%4)
}

// S2: single byte.
func TestCodecSingleByte(t *testing.T) {
	roundTrip(t, []byte{0x42})
}

// S3: a long run of one repeated byte, covered by the bootstrap literals
// followed by one or more back-reference matches.
func TestCodecRepeatedByteRun(t *testing.T) {
	input := make([]byte, 86)
	for i := range input {
		input[i] = 'Z'
	}
	roundTrip(t, input)
}

// S4: a 14-distinct-byte pattern repeated 4 times, exercising the bootstrap
// window (first 14 literals) followed by back-references to the pattern.
func TestCodecRepeatedPattern(t *testing.T) {
	pattern := []byte("ABCDEFGHIJKLMN")
	input := testutil.RepeatingPattern(pattern, len(pattern)*4)
	roundTrip(t, input)
}

// Property 7: output buffer too small must fail without writing beyond its
// bounds.
func TestCodecDecodeShortOutputBuffer(t *testing.T) {
	input := testutil.RepeatingPattern([]byte("hello world"), 256)
	outBuf := make([]byte, len(input)*2+256)
	n, err := Encode(input, outBuf)
	require.NoError(t, err)

	shortBuf := make([]byte, len(input)-1)
	_, err = Decode(outBuf[:n], shortBuf)
	assert.Error(t, err)
}

// Property: encoded length is always a multiple of 4 (alignment padding).
func TestCodecOutputAlignment(t *testing.T) {
	r := testutil.NewRand(1)
	for _, size := range []int{0, 1, 3, 17, 100, 999} {
		input := r.Bytes(size)
		outBuf := make([]byte, size*2+256)
		n, err := Encode(input, outBuf)
		require.NoError(t, err)
		assert.Equal(t, 0, n%4, "size=%d", size)
	}
}

// Property: deterministic output for identical input.
func TestCodecDeterministic(t *testing.T) {
	r := testutil.NewRand(7)
	input := r.Bytes(512)

	buf1 := make([]byte, 2048)
	n1, err := Encode(input, buf1)
	require.NoError(t, err)

	buf2 := make([]byte, 2048)
	n2, err := Encode(input, buf2)
	require.NoError(t, err)

	assert.Equal(t, n1, n2)
	assert.Equal(t, buf1[:n1], buf2[:n2])
}

// Property: round trip holds over varied pseudo-random inputs, including
// ones large enough to force window wraparound.
func TestCodecRoundTripRandomized(t *testing.T) {
	r := testutil.NewRand(42)
	sizes := []int{0, 1, 2, 13, 14, 15, 64, 65, 1000, 6000, 20000}
	for _, size := range sizes {
		input := r.Bytes(size)
		roundTrip(t, input)
	}
}

// S6: truncating valid encoded output by one byte must fail decoding
// cleanly rather than overrunning the output buffer.
func TestCodecDecodeTruncatedInput(t *testing.T) {
	r := testutil.NewRand(6)
	input := r.Bytes(300)
	outBuf := make([]byte, len(input)*2+256)
	n, err := Encode(input, outBuf)
	require.NoError(t, err)

	decBuf := make([]byte, len(input))
	_, err = Decode(outBuf[:n-1], decBuf)
	assert.Error(t, err)
}

// Property: encoding into an undersized output buffer fails cleanly rather
// than overrunning it.
func TestCodecEncodeShortOutputBuffer(t *testing.T) {
	r := testutil.NewRand(3)
	input := r.Bytes(4096)
	tinyBuf := make([]byte, 4)
	_, err := Encode(input, tinyBuf)
	assert.Error(t, err)
}
