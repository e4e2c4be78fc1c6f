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
	"fmt"

	"github.com/fastyz/fastyz/internal"
)

// Encoder implements the Yaz0 LZ77 encoder: a hash-table indexed greedy
// match finder feeding a flag-group token writer. An Encoder instance may
// be reused across calls to Encode to amortize the hash table allocation,
// but each call is otherwise stateless (no information about one input
// carries over into the match search for the next), matching the teacher
// framework's ByteTransform contract ("no information is retained between
// invocations of Forward or Inverse").
type Encoder struct {
	hashes [hashSize]uint32
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// MaxEncodedLen returns the worst-case size of the Yaz0 stream encoding an
// input of the given length.
func (e *Encoder) MaxEncodedLen(srcLen int) int {
	return internal.MaxEncodedLen(srcLen)
}

// Encode compresses src into dst, which must be at least
// MaxEncodedLen(len(src)) bytes, and returns the number of bytes written.
//
// Inputs shorter than 16 bytes are not rejected: the match search never
// runs for them, so every input byte is emitted as a literal.
func (e *Encoder) Encode(src, dst []byte) (int, error) {
	n := len(src)

	if need := e.MaxEncodedLen(n); len(dst) < need {
		return 0, fmt.Errorf("fastyz: output buffer too small: have %d, need %d", len(dst), need)
	}

	for i := range e.hashes {
		e.hashes[i] = 0
	}

	internal.WriteHeader(dst, uint32(n))

	w := newFlagWriter(dst, internal.HeaderSize)

	anchor := 0
	ip := 2
	ipLimit := n - 13

	for ip < ipLimit {
		var minRef int

		if ip < maxDistance {
			minRef = 0
		} else {
			minRef = ip - maxDistance
		}

		h := hash3(readU32LE(src[ip:]) & 0xFFFFFF)
		ref := int(e.hashes[h])
		e.hashes[h] = uint32(ip)

		dist := ip - ref

		if dist < minDistance || dist > maxDistance || ref < minRef ||
			readU32LE(src[ref:])&0xFFFFFF != readU32LE(src[ip:])&0xFFFFFF {
			ip++
			continue
		}

		ipBound := n - 4
		matchLen := minMatchLen + comparePrefix(src, ref+3, ip+3, ipBound-(ip+3))

		w.emitLiterals(src[anchor:ip], ip-anchor)
		w.emitMatch(matchLen, dist)

		ip += matchLen
		anchor = ip

		// Prime the table with the two positions right after the match so
		// a subsequent search starting just past it can find this region
		// again immediately.
		if ip <= n-4 {
			e.hashes[hash3(readU32LE(src[ip:])&0xFFFFFF)] = uint32(ip)
		}

		if ip+1 <= n-4 {
			e.hashes[hash3(readU32LE(src[ip+1:])&0xFFFFFF)] = uint32(ip + 1)
		}
	}

	w.emitLiterals(src[anchor:n], n-anchor)

	return w.dstIdx, nil
}
