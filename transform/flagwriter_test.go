/*
Copyright 2024 The fastyz Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package transform

import "testing"

func TestFlagWriterBulkLiterals(t *testing.T) {
	dst := make([]byte, 32)
	w := newFlagWriter(dst, 0)
	w.emitLiterals([]byte("ABCDEFGH"), 8)

	if dst[0] != 0xFF {
		t.Fatalf("flag byte = %#x, want 0xFF", dst[0])
	}

	if string(dst[1:9]) != "ABCDEFGH" {
		t.Fatalf("literal bytes = %q, want ABCDEFGH", dst[1:9])
	}

	// 1 flag byte + 8 literals, then the next group's flag byte is reserved.
	if w.dstIdx != 10 {
		t.Fatalf("dstIdx = %d, want 10", w.dstIdx)
	}
}

func TestFlagWriterTailLiterals(t *testing.T) {
	dst := make([]byte, 32)
	w := newFlagWriter(dst, 0)
	w.emitLiterals([]byte("ABC"), 3)

	// high 3 bits set: 1110 0000 = 0xE0
	if dst[0] != 0xE0 {
		t.Fatalf("flag byte = %#x, want 0xE0", dst[0])
	}

	if w.mask != 0x10 {
		t.Fatalf("mask after 3 literals = %#x, want 0x10", w.mask)
	}
}

func TestFlagWriterShortMatch(t *testing.T) {
	dst := make([]byte, 32)
	w := newFlagWriter(dst, 0)
	w.emitMatch(5, 10) // length 5 -> nibble 3, distance-1 = 9

	if dst[0] != 0x00 {
		t.Fatalf("flag byte = %#x, want 0x00 (match bit clear)", dst[0])
	}

	// byte0 = (length-2)<<4 | (distance-1)>>8 = 3<<4 | 0 = 0x30
	if dst[1] != 0x30 {
		t.Fatalf("match byte0 = %#x, want 0x30", dst[1])
	}

	if dst[2] != 9 {
		t.Fatalf("match byte1 = %#x, want 9", dst[2])
	}
}

func TestFlagWriterLongMatch(t *testing.T) {
	dst := make([]byte, 32)
	w := newFlagWriter(dst, 0)
	w.emitMatch(100, 2000) // length 100 -> long form

	d := 2000 - 1

	if got, want := dst[1], byte(d>>8)&0x0F; got != want {
		t.Fatalf("match byte0 = %#x, want %#x", got, want)
	}

	if got, want := dst[2], byte(d); got != want {
		t.Fatalf("match byte1 = %#x, want %#x", got, want)
	}

	if got, want := dst[3], byte(100-18); got != want {
		t.Fatalf("match byte2 = %#x, want %#x", got, want)
	}
}

func TestFlagWriterSplitsLongMatches(t *testing.T) {
	dst := make([]byte, 64)
	w := newFlagWriter(dst, 0)

	// length 500 splits into one 273 chunk and one 227 chunk (500-273=227,
	// not in {1,2}, so the normal 273 chunk size applies).
	w.emitMatch(500, 4000)

	flag := dst[0]

	if flag&0x80 != 0 || flag&0x40 != 0 {
		t.Fatalf("flag byte = %#x, want both top bits clear (two match tokens)", flag)
	}

	// first chunk: long form, length-18 = 255
	if dst[3] != 255 {
		t.Fatalf("first chunk length byte = %d, want 255", dst[3])
	}

	// second chunk: long form, length-18 = 227-18 = 209
	if dst[6] != 209 {
		t.Fatalf("second chunk length byte = %d, want 209", dst[6])
	}
}

func TestFlagWriterSplitAvoidsShortTail(t *testing.T) {
	dst := make([]byte, 64)
	w := newFlagWriter(dst, 0)

	// length 274: 274-273=1, so the split rule uses a 271-byte first
	// chunk, leaving a tail of 3 (the minimum match length).
	w.emitMatch(274, 10)

	if dst[3] != byte(271-18) {
		t.Fatalf("first chunk length byte = %d, want %d", dst[3], 271-18)
	}

	// second token (starting at dst[4]) is short form since the tail length is 3
	if dst[4]>>4 != byte(3-2) {
		t.Fatalf("second chunk nibble = %d, want %d", dst[4]>>4, 3-2)
	}
}
