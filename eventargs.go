// Copyright (c) 2026 - The Event Horizon authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eventemitter

import (
	"fmt"
)

type emptyData struct{}

func (emptyData) String() string {
	return "<empty>"
}

// EmptyData is the payload of events emitted without data.
var EmptyData interface{} = emptyData{}

// EventArgs is the immutable argument passed to handlers, carrying the
// event type and the payload given to Emit.
type EventArgs struct {
	eventType EventType
	data      interface{}
}

// NewEventArgs creates the arguments for an event.
func NewEventArgs(t EventType, data interface{}) EventArgs {
	return EventArgs{
		eventType: t,
		data:      data,
	}
}

// Type returns the type of the emitted event.
func (a EventArgs) Type() EventType {
	return a.eventType
}

// Data returns the payload of the emitted event. It is EmptyData for events
// emitted without a payload and may be nil if nil was emitted.
func (a EventArgs) Data() interface{} {
	return a.data
}

// HasData reports whether the event was emitted with a payload.
func (a EventArgs) HasData() bool {
	return a.data != EmptyData
}

// String implements the String method of the fmt.Stringer interface.
func (a EventArgs) String() string {
	return fmt.Sprintf("%s(%v)", a.eventType, a.data)
}
