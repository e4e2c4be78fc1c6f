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

// Package transform implements the Yaz0 (SZS) LZ77 codec: a hash-table
// indexed greedy match finder, the flag-group token writer, and the
// symmetric flag-driven decoder.
//
// The shape follows the teacher framework's byte transforms (e.g. its
// LZ77-family LZXCodec): a small struct holding reusable scratch state,
// a Forward-like Encode method and an Inverse-like Decode method, plus a
// MaxEncodedLen method giving the worst-case output size.
package transform

import "encoding/binary"

const (
	// hashBits is the width of the match finder's hash table index.
	hashBits = 14
	hashSize = 1 << hashBits

	// hashMultiplier is Knuth's 32-bit golden-ratio multiplicative hash
	// constant. This exact value is part of the observable Yaz0 output:
	// changing it changes which matches the encoder finds and, therefore,
	// the compressed bytes it emits.
	hashMultiplier = 2654435769

	minMatchLen = 3
	maxMatchLen = 273

	minDistance = 1
	maxDistance = 4096

	// shortMatchMaxLen is the largest length representable in the 2-byte
	// short match code (length - 2 must fit a nibble).
	shortMatchMaxLen = 17
)

// readU32LE loads 4 bytes starting at p[0] in little-endian order.
func readU32LE(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

// hash3 hashes the low 24 bits of a 32-bit word into a 14-bit table index
// using multiplicative hashing: multiply by the golden-ratio constant and
// take the high hashBits bits of the 32-bit product.
func hash3(seq24 uint32) uint32 {
	return (seq24 * hashMultiplier) >> (32 - hashBits) & (hashSize - 1)
}

// comparePrefix returns the length of the longest common prefix of
// src[a:] and src[b:], capped at maxLen. Never reads src[b+maxLen] or
// beyond, so callers must pass maxLen = ip_bound - b to stay in-bounds.
func comparePrefix(src []byte, a, b, maxLen int) int {
	n := 0

	for n < maxLen && src[a+n] == src[b+n] {
		n++
	}

	return n
}
