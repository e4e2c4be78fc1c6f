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

package fastyz

import (
	"fmt"
	"time"
)

// Event types fired by the CLI around a single Encode or Decode call.
// fastyz has no block splitting, so there is exactly one start/end pair
// per invocation (unlike a multi-block framework, which would fire one
// pair per block).
const (
	EVT_ENCODE_START = 0
	EVT_ENCODE_END   = 1
	EVT_DECODE_START = 2
	EVT_DECODE_END   = 3
)

// Event is a progress notification describing one stage of an encode or
// decode call.
type Event struct {
	eventType int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEvent creates a new Event carrying a byte count.
func NewEvent(evtType int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, size: size, eventTime: evtTime}
}

// NewEventFromString creates a new Event that wraps a preformatted message.
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// Size returns the byte count carried by the event.
func (this *Event) Size() int64 {
	return this.size
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EVT_ENCODE_START:
		t = "ENCODE_START"
	case EVT_ENCODE_END:
		t = "ENCODE_END"
	case EVT_DECODE_START:
		t = "DECODE_START"
	case EVT_DECODE_END:
		t = "DECODE_END"
	}

	return fmt.Sprintf("{ \"type\": \"%s\", \"size\": %d, \"time\": %d }",
		t, this.size, this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by anything that wants to observe encode/decode
// progress events.
type Listener interface {
	ProcessEvent(evt *Event)
}
