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

import (
	"errors"

	"github.com/fastyz/fastyz/internal"
)

// Sentinel errors returned by Decoder.Decode. All of them collapse to the
// same "0 bytes written" external contract described by spec.md section 7;
// callers that only care about success/failure can ignore the specific
// error and just check for nil.
var (
	ErrShortInput     = errors.New("fastyz: input shorter than the Yaz0 header")
	ErrBadMagic       = errors.New("fastyz: bad Yaz0 magic")
	ErrEmptyOutput    = errors.New("fastyz: declared decompressed size is zero")
	ErrOutputTooSmall = errors.New("fastyz: declared decompressed size exceeds capacity")
	ErrTruncated      = errors.New("fastyz: source exhausted before declared size was reached")
	ErrOutOfRange     = errors.New("fastyz: match distance exceeds bytes written so far")
	ErrOverrun        = errors.New("fastyz: match length would overrun output capacity")
)

// Decoder implements the symmetric half of the Yaz0 codec: it walks flag
// groups and dispatches each token to either a literal copy or a bounded,
// possibly overlapping, back-reference copy.
type Decoder struct{}

// NewDecoder creates a new Decoder. Decoder holds no state between calls;
// the type exists to mirror Encoder and to give Decode a natural home on
// the ByteCodec interface.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// MaxEncodedLen is not meaningful for decoding and is provided only to
// satisfy a symmetric codec interface alongside Encoder.
func (d *Decoder) MaxEncodedLen(srcLen int) int {
	return internal.MaxEncodedLen(srcLen)
}

// Decode decompresses a Yaz0 stream from src into dst and returns the
// number of bytes written. dst must have capacity for the declared
// decompressed size; maxOut bounds how much Decode is allowed to write
// (normally len(dst)).
func (d *Decoder) Decode(src, dst []byte, maxOut int) (int, error) {
	if len(src) < internal.HeaderSize {
		return 0, ErrShortInput
	}

	if !internal.IsYaz0(src) {
		return 0, ErrBadMagic
	}

	declared := int(internal.PeekDecompressedSize(src))

	if declared == 0 {
		return 0, ErrEmptyOutput
	}

	if declared > maxOut {
		return 0, ErrOutputTooSmall
	}

	srcIdx := internal.HeaderSize
	srcEnd := len(src)
	written := 0

	var flagByte byte
	bitsRemaining := 0

	for written < declared {
		if bitsRemaining == 0 {
			if srcIdx >= srcEnd {
				return 0, ErrTruncated
			}

			flagByte = src[srcIdx]
			srcIdx++
			bitsRemaining = 8
		}

		if flagByte&0x80 != 0 {
			if srcIdx >= srcEnd || written >= maxOut {
				return 0, ErrTruncated
			}

			dst[written] = src[srcIdx]
			srcIdx++
			written++
		} else {
			if srcIdx+2 > srcEnd {
				return 0, ErrTruncated
			}

			b0 := src[srcIdx]
			b1 := src[srcIdx+1]
			srcIdx += 2

			distance := (int(b0&0x0F)<<8 | int(b1)) + 1

			var length int

			if b0>>4 == 0 {
				if srcIdx >= srcEnd {
					return 0, ErrTruncated
				}

				length = int(src[srcIdx]) + 18
				srcIdx++
			} else {
				length = int(b0>>4) + 2
			}

			if distance > written {
				return 0, ErrOutOfRange
			}

			if written+length > maxOut {
				return 0, ErrOverrun
			}

			ref := written - distance

			for i := 0; i < length; i++ {
				dst[written+i] = dst[ref+i]
			}

			written += length
		}

		flagByte <<= 1
		bitsRemaining--
	}

	return written, nil
}
