// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package d64

// LZWindow is the 5456-byte circular back-reference window shared by the
// D64 decoder and encoder. head always points at the next byte to be
// written and advances modulo WindowSize on every Append.
type LZWindow struct {
	buf   [WindowSize]byte
	head  int
	total int // total bytes ever appended, uncapped (bounds valid history)
}

// NewLZWindow returns an empty window with head at 0.
func NewLZWindow() *LZWindow { return &LZWindow{} }

// Append writes b at head and advances head modulo WindowSize.
func (w *LZWindow) Append(b byte) {
	w.buf[w.head] = b
	w.head = wrap(w.head + 1)
	w.total++
}

// At returns the byte stored at logical index i (must be in [0, WindowSize)).
func (w *LZWindow) At(i int) byte { return w.buf[i] }

// Head returns the current head index.
func (w *LZWindow) Head() int { return w.head }

func wrap(i int) int {
	i %= WindowSize
	if i < 0 {
		i += WindowSize
	}
	return i
}

// maxDistance reports the largest back-reference distance that can
// currently point at real history rather than unwritten buffer contents.
func (w *LZWindow) maxDistance() int {
	if w.total < WindowSize {
		return w.total
	}
	return WindowSize
}

// MatchBytes reconstructs the length bytes a back-reference of the given
// distance would copy, starting from the current head. Every legal D64
// match satisfies distance >= length (spec §4.4b step 1), so i < distance
// holds for the whole loop and every byte comes from already-written window
// content; the i >= distance branch exists only so this helper stays
// correct if ever called with a distance shorter than the length (it never
// is, for matches this package's own encoder produces).
func (w *LZWindow) MatchBytes(distance, length int) []byte {
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		if i < distance {
			out[i] = w.At(wrap(w.head - distance + i))
		} else {
			out[i] = out[i-distance]
		}
	}
	return out
}

// searchSpan bounds how many candidate start positions the heuristic search
// below examines per length, mirroring the reference encoder's narrower
// 1024-byte reach (spec §9 Design Notes, Open Question: the decoder accepts
// the full WindowSize+63 reach regardless of what the encoder's search
// strategy chooses to emit).
const searchSpan = 1024

// FindMatch searches the window for the longest legal back-reference that
// reproduces input[pos:pos+length]. It scans candidate lengths from 64 down
// to 3 and, for each length, candidate distances from length up to the
// lesser of the available history and searchSpan+length, verifying every
// candidate against the actual input bytes before accepting it (never
// trusting window content alone, per spec §4.4b).
func (w *LZWindow) FindMatch(input []byte, pos int) (length, distance int, ok bool) {
	maxLen := 64
	if rem := len(input) - pos; rem < maxLen {
		maxLen = rem
	}
	if maxLen < 3 {
		return 0, 0, false
	}

	maxHist := w.maxDistance()
	for l := maxLen; l >= 3; l-- {
		maxD := maxHist
		if limit := searchSpan + l; limit < maxD {
			maxD = limit
		}
		if maxD < l {
			continue
		}
		for d := l; d <= maxD; d++ {
			cand := w.MatchBytes(d, l)
			if bytesEqual(cand, input[pos:pos+l]) {
				return l, d, true
			}
		}
	}
	return 0, 0, false
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
