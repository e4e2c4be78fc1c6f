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

// Codec bundles an Encoder and a Decoder behind the fastyz.ByteCodec
// shape, the way the teacher framework's composite codecs delegate to an
// inner implementation (see LZCodec delegating to LZXCodec).
type Codec struct {
	enc *Encoder
	dec *Decoder
}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{enc: NewEncoder(), dec: NewDecoder()}
}

// Encode compresses src into dst. See Encoder.Encode.
func (c *Codec) Encode(src, dst []byte) (int, error) {
	return c.enc.Encode(src, dst)
}

// Decode decompresses src into dst, writing at most len(dst) bytes. See
// Decoder.Decode.
func (c *Codec) Decode(src, dst []byte) (int, error) {
	return c.dec.Decode(src, dst, len(dst))
}

// MaxEncodedLen returns the worst-case size of the Yaz0 stream encoding an
// input of the given length.
func (c *Codec) MaxEncodedLen(srcLen int) int {
	return c.enc.MaxEncodedLen(srcLen)
}
