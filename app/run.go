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
	"fmt"
	"os"
	"time"

	"github.com/fastyz/fastyz"
	"github.com/fastyz/fastyz/internal"
	"github.com/fastyz/fastyz/transform"
)

// options holds the resolved command line configuration for one run, the
// way BlockCompressor/BlockDecompressor bundle their resolved argsMap into
// struct fields before doing any I/O.
type options struct {
	input     string
	output    string
	forceC    bool
	forceD    bool
	overwrite bool
}

// run executes one encode or decode pass: it reads the input file, sniffs
// or forces a mode, infers an output path if none was given, runs the
// codec, and writes the result. It returns a process exit code, never
// calling os.Exit itself, so the cobra command and tests can both drive it.
func run(o options, stdout, stderr *os.File) int {
	if o.input == "" {
		fmt.Fprintln(stderr, "Missing input file name, try --help")
		return fastyz.ERR_MISSING_PARAM
	}

	data, err := os.ReadFile(o.input)

	if err != nil {
		fmt.Fprintf(stderr, "Cannot open input file '%s': %v\n", o.input, err)
		return fastyz.ERR_OPEN_FILE
	}

	head := data

	if len(head) > 8 {
		head = head[:8]
	}

	m, err := detectMode(o.forceC, o.forceD, o.input, head)

	if err != nil {
		fmt.Fprintln(stderr, err)
		return fastyz.ERR_INVALID_PARAM
	}

	outputPath := o.output

	if outputPath == "" {
		outputPath = inferOutputPath(m, o.input)
	}

	if !o.overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			fmt.Fprintf(stderr, "File '%s' already exists, use an explicit -o or remove it first\n", outputPath)
			return fastyz.ERR_OVERWRITE_FILE
		}
	}

	p := newPrinter(stdout)
	codec := transform.NewCodec()

	if m == modeEncode {
		return runEncode(codec, data, outputPath, p, stderr)
	}

	return runDecode(codec, data, outputPath, p, stderr)
}

func runEncode(codec *transform.Codec, data []byte, outputPath string, p *printer, stderr *os.File) int {
	p.ProcessEvent(fastyz.NewEvent(fastyz.EVT_ENCODE_START, int64(len(data)), time.Time{}))

	dst := make([]byte, codec.MaxEncodedLen(len(data)))
	n, err := codec.Encode(data, dst)

	if err != nil {
		fmt.Fprintf(stderr, "Encoding failed: %v\n", err)
		return fastyz.ERR_ENCODE
	}

	if err := os.WriteFile(outputPath, dst[:n], 0644); err != nil {
		fmt.Fprintf(stderr, "Cannot write output file '%s': %v\n", outputPath, err)
		return fastyz.ERR_WRITE_FILE
	}

	p.ProcessEvent(fastyz.NewEvent(fastyz.EVT_ENCODE_END, int64(n), time.Time{}))
	return 0
}

func runDecode(codec *transform.Codec, data []byte, outputPath string, p *printer, stderr *os.File) int {
	p.ProcessEvent(fastyz.NewEvent(fastyz.EVT_DECODE_START, int64(len(data)), time.Time{}))

	size := internal.PeekDecompressedSize(data)
	dst := make([]byte, size)
	n, err := codec.Decode(data, dst)

	if errors.Is(err, transform.ErrBadMagic) {
		fmt.Fprintln(stderr, "Input file does not have a Yaz0 header")
		return fastyz.ERR_BAD_MAGIC
	}

	if err != nil {
		fmt.Fprintf(stderr, "Decoding failed: %v\n", err)
		return fastyz.ERR_DECODE
	}

	if err := os.WriteFile(outputPath, dst[:n], 0644); err != nil {
		fmt.Fprintf(stderr, "Cannot write output file '%s': %v\n", outputPath, err)
		return fastyz.ERR_WRITE_FILE
	}

	p.ProcessEvent(fastyz.NewEvent(fastyz.EVT_DECODE_END, int64(n), time.Time{}))
	return 0
}
