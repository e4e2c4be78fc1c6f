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
	"fmt"
	"io"
	"time"

	"github.com/fastyz/fastyz"
)

// printer renders fastyz.Event notifications to an io.Writer, the way
// InfoPrinter renders kanzi.Event notifications for the BlockCompressor
// and BlockDecompressor. fastyz has no block splitting, so it tracks a
// single start time rather than a per-block map.
type printer struct {
	writer io.Writer
	start  time.Time
}

func newPrinter(w io.Writer) *printer {
	return &printer{writer: w}
}

// ProcessEvent implements fastyz.Listener.
func (p *printer) ProcessEvent(evt *fastyz.Event) {
	switch evt.Type() {
	case fastyz.EVT_ENCODE_START, fastyz.EVT_DECODE_START:
		p.start = evt.Time()
		fmt.Fprintf(p.writer, "Input size: %d\n", evt.Size())
	case fastyz.EVT_ENCODE_END:
		elapsed := evt.Time().Sub(p.start)
		fmt.Fprintf(p.writer, "Output size: %d\n", evt.Size())
		fmt.Fprintf(p.writer, "Elapsed: %v\n", elapsed)
	case fastyz.EVT_DECODE_END:
		elapsed := evt.Time().Sub(p.start)
		fmt.Fprintf(p.writer, "Output size: %d\n", evt.Size())
		fmt.Fprintf(p.writer, "Elapsed: %v\n", elapsed)
	}
}
