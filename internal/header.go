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

// Package internal holds the Yaz0 header utilities: magic detection, the
// big-endian decompressed-size field, and the worst-case output bound.
// Keeping these out of the transform package mirrors how the teacher
// framework keeps magic/header sniffing in its own internal package,
// separate from the codecs that use it.
package internal

import "encoding/binary"

const (
	// HeaderSize is the fixed size of a Yaz0 header in bytes.
	HeaderSize = 16

	// magic0..magic3 are the four ASCII magic bytes "Yaz0".
	magic0 = 'Y'
	magic1 = 'a'
	magic2 = 'z'
	magic3 = '0'
)

// IsYaz0 returns true iff the first four bytes of src equal the ASCII
// magic "Yaz0". Returns false if src is shorter than 4 bytes.
func IsYaz0(src []byte) bool {
	if len(src) < 4 {
		return false
	}

	return src[0] == magic0 && src[1] == magic1 && src[2] == magic2 && src[3] == magic3
}

// PeekDecompressedSize reads the big-endian 32-bit decompressed size from
// bytes 4..7 of a Yaz0 stream. Returns 0 if src is shorter than 8 bytes or
// the magic does not match.
func PeekDecompressedSize(src []byte) uint32 {
	if len(src) < 8 || !IsYaz0(src) {
		return 0
	}

	return binary.BigEndian.Uint32(src[4:8])
}

// WriteHeader writes the 16-byte Yaz0 header (magic, big-endian
// decompressed size, 8 reserved zero bytes) to the start of dst. dst must
// be at least HeaderSize bytes long.
func WriteHeader(dst []byte, decompressedSize uint32) {
	dst[0], dst[1], dst[2], dst[3] = magic0, magic1, magic2, magic3
	binary.BigEndian.PutUint32(dst[4:8], decompressedSize)

	for i := 8; i < HeaderSize; i++ {
		dst[i] = 0
	}
}

// MaxEncodedLen returns FASTYZ_BOUND(n): the worst-case size of a Yaz0
// stream encoding n bytes of input (header, plus one flag bit per byte
// in the worst case, every token a literal, plus one trailing partial
// flag byte).
func MaxEncodedLen(n int) int {
	return HeaderSize + n + (n+7)/8 + 1
}
