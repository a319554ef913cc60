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

// Package eventemitter turns any Go type into an in-process event source.
//
// A source composes an *Emitter, exposes its registration half through the
// Registrar interface and keeps emission to itself:
//
//	type Pet struct {
//		ee.Registrar
//		events *ee.Emitter
//	}
//
//	func NewPet() *Pet {
//		p := &Pet{}
//		p.events = ee.NewEmitter(ee.WithSource(p))
//		p.Registrar = p.events
//		return p
//	}
//
// Handlers are grouped by event type and by the owner they are bound to.
// Removing a handler only touches the chain of its own owner, and handlers
// added twice run twice. Emission is synchronous; owners that must run on a
// specific goroutine declare an ExecutionContext and the emission blocks
// until their handlers have returned there.
//
// An Emitter is not safe for concurrent use. Handlers may register and
// remove handlers (including themselves) while an emission is in progress.
package eventemitter

// EventType is the name of an event, used to group handlers.
type EventType string

// String returns the string representation of an event type.
func (et EventType) String() string {
	return string(et)
}

// Owner is the identity a handler is bound to. Owners are compared with ==
// and must therefore be comparable, typically a pointer.
type Owner interface{}

type noOwner struct{ _ byte }

// NoOwner is the owner of handlers that are not bound to any object.
var NoOwner Owner = &noOwner{}
