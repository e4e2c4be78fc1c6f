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

func TestReadU32LE(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0xFF}

	if got, want := readU32LE(b), uint32(0x04030201); got != want {
		t.Errorf("readU32LE() = %#x, want %#x", got, want)
	}
}

func TestHash3InRange(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xFFFFFF, 0x123456, 0xABCDEF} {
		h := hash3(v)

		if h >= hashSize {
			t.Errorf("hash3(%#x) = %d, out of range [0, %d)", v, h, hashSize)
		}
	}
}

func TestHash3Deterministic(t *testing.T) {
	if hash3(0x123456) != hash3(0x123456) {
		t.Error("hash3 is not deterministic")
	}
}

func TestComparePrefix(t *testing.T) {
	src := []byte("ABCDEFGHABCDXYZZ")

	if got, want := comparePrefix(src, 0, 8, 8), 4; got != want {
		t.Errorf("comparePrefix = %d, want %d", got, want)
	}

	if got, want := comparePrefix(src, 0, 8, 2), 2; got != want {
		t.Errorf("comparePrefix with tight limit = %d, want %d", got, want)
	}

	if got, want := comparePrefix(src, 0, 0, 16), 16; got != want {
		t.Errorf("comparePrefix of identical range = %d, want %d", got, want)
	}
}
