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

package main

import (
	"errors"
	"strings"

	"github.com/fastyz/fastyz/internal"
)

// ErrAmbiguousMode is returned when both -c and -d are given.
var ErrAmbiguousMode = errors.New("both compress and decompress options were provided")

// mode identifies which direction the CLI should run.
type mode int

const (
	modeEncode mode = iota
	modeDecode
)

// detectMode resolves the -c/-d flags against the input filename and
// leading bytes, the way Kanzi.go resolves --compress/--decompress before
// falling back to auto-detection. When neither flag is forced, the mode is
// decode if the input name ends (case-insensitively) in .yaz0, .szs or
// .carc, or if its leading bytes are the Yaz0 magic; otherwise encode.
func detectMode(forceEncode, forceDecode bool, inputPath string, head []byte) (mode, error) {
	if forceEncode && forceDecode {
		return 0, ErrAmbiguousMode
	}

	if forceEncode {
		return modeEncode, nil
	}

	if forceDecode {
		return modeDecode, nil
	}

	lower := strings.ToLower(inputPath)

	for _, suffix := range []string{".yaz0", ".szs", ".carc"} {
		if strings.HasSuffix(lower, suffix) {
			return modeDecode, nil
		}
	}

	if internal.IsYaz0(head) {
		return modeDecode, nil
	}

	return modeEncode, nil
}

// inferOutputPath derives an output path from the input path and mode when
// -o is not given. Encode appends .yaz0. Decode strips a .yaz0 or .szs
// suffix, rewrites a .carc suffix to .arc, or else appends .bin; suffix
// matching is case-insensitive.
func inferOutputPath(m mode, inputPath string) string {
	if m == modeEncode {
		return inputPath + ".yaz0"
	}

	lower := strings.ToLower(inputPath)

	if strings.HasSuffix(lower, ".yaz0") {
		return inputPath[:len(inputPath)-len(".yaz0")]
	}

	if strings.HasSuffix(lower, ".szs") {
		return inputPath[:len(inputPath)-len(".szs")]
	}

	if strings.HasSuffix(lower, ".carc") {
		return inputPath[:len(inputPath)-len(".carc")] + ".arc"
	}

	return inputPath + ".bin"
}
