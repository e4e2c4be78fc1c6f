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

// Package fastyz implements a codec for the Yaz0 (SZS) compression
// container used by Nintendo titles.
//
// The core LZ77 encoder and the flag-driven decoder live in the transform
// sub-package; header parsing utilities live in internal; the command
// line front end lives in app.
package fastyz

import "github.com/fastyz/fastyz/internal"

const (
	ERR_MISSING_PARAM   = 1
	ERR_INVALID_PARAM   = 2
	ERR_OPEN_FILE       = 3
	ERR_CREATE_FILE     = 4
	ERR_READ_FILE       = 5
	ERR_WRITE_FILE      = 6
	ERR_OVERWRITE_FILE  = 7
	ERR_BAD_MAGIC       = 8
	ERR_ENCODE          = 9
	ERR_DECODE          = 10
	ERR_UNKNOWN         = 127
)

// ByteCodec is the interface implemented by the Yaz0 transform. It mirrors
// the Forward/Inverse shape of a generic byte transform: Encode maps raw
// bytes to the compressed container, Decode maps the container back to the
// original bytes.
type ByteCodec interface {
	// Encode compresses src into dst and returns the number of bytes
	// written to dst.
	Encode(src, dst []byte) (int, error)

	// Decode decompresses src into dst and returns the number of bytes
	// written to dst.
	Decode(src, dst []byte) (int, error)

	// MaxEncodedLen returns the size of the output buffer required to
	// encode an input of the given length in the worst case.
	MaxEncodedLen(srcLen int) int
}

// IsYaz0 reports whether src begins with the Yaz0 magic. Re-exported from
// internal so external callers of this module can sniff a file without
// importing an internal package, the way kanzi-go's CLI reaches its own
// internal helpers through the root package.
func IsYaz0(src []byte) bool {
	return internal.IsYaz0(src)
}

// PeekDecompressedSize reads the declared decompressed size from a Yaz0
// stream's header without decoding it. Returns 0 if src is too short or
// does not carry the Yaz0 magic.
func PeekDecompressedSize(src []byte) uint32 {
	return internal.PeekDecompressedSize(src)
}
