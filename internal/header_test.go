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

package internal

import "testing"

func TestIsYaz0(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want bool
	}{
		{"valid magic", []byte("Yaz0rest"), true},
		{"wrong magic", []byte("Yay0rest"), false},
		{"too short", []byte("Yaz"), false},
		{"empty", nil, false},
	}

	for _, c := range cases {
		if got := IsYaz0(c.in); got != c.want {
			t.Errorf("%s: IsYaz0(%q) = %v, want %v", c.name, c.in, got, c.want)
		}
	}
}

func TestPeekDecompressedSize(t *testing.T) {
	src := []byte{'Y', 'a', 'z', '0', 0x00, 0x00, 0x10, 0x00}

	if got, want := PeekDecompressedSize(src), uint32(0x1000); got != want {
		t.Errorf("PeekDecompressedSize() = %d, want %d", got, want)
	}

	if got := PeekDecompressedSize([]byte("Yaz0")); got != 0 {
		t.Errorf("PeekDecompressedSize(short) = %d, want 0", got)
	}

	if got := PeekDecompressedSize([]byte("Yay0rest")); got != 0 {
		t.Errorf("PeekDecompressedSize(bad magic) = %d, want 0", got)
	}
}

func TestWriteHeader(t *testing.T) {
	dst := make([]byte, HeaderSize)
	WriteHeader(dst, 0x12345678)

	if !IsYaz0(dst) {
		t.Fatal("WriteHeader did not write a valid magic")
	}

	if got := PeekDecompressedSize(dst); got != 0x12345678 {
		t.Errorf("PeekDecompressedSize() = %#x, want %#x", got, 0x12345678)
	}

	for i := 8; i < HeaderSize; i++ {
		if dst[i] != 0 {
			t.Errorf("reserved byte %d = %#x, want 0", i, dst[i])
		}
	}
}

func TestMaxEncodedLen(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 16 + 0 + 0 + 1},
		{8, 16 + 8 + 1 + 1},
		{4096, 16 + 4096 + 512 + 1},
	}

	for _, c := range cases {
		if got := MaxEncodedLen(c.n); got != c.want {
			t.Errorf("MaxEncodedLen(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
