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
	"github.com/looplab/eventemitter/uuid"
)

// Registrar is the part of an emitter that other code uses to listen to
// events. Sources embed it to expose registration without exposing Emit.
type Registrar interface {
	// AddHandler appends h to the chain of its owner for the event type.
	AddHandler(EventType, Handler) error
	// RemoveHandler removes the first handler equal to h from the chain of
	// its owner. Unknown types, owners and handlers are ignored.
	RemoveHandler(EventType, Handler) error
	// RemoveAllHandlers removes the handlers of every owner for the event type.
	RemoveAllHandlers(EventType)
}

// Emitter keeps the handlers of an event source and emits events to them.
type Emitter struct {
	id         uuid.UUID
	source     interface{}
	middleware []HandlerMiddleware
	registry   registry
}

var _ = Registrar(&Emitter{})

// NewEmitter creates an Emitter without handlers.
func NewEmitter(options ...Option) *Emitter {
	e := &Emitter{
		id:       uuid.New(),
		registry: registry{},
	}

	for _, option := range options {
		option(e)
	}

	if e.source == nil {
		e.source = e
	}

	return e
}

// Option is an option setter used to configure creation.
type Option func(*Emitter)

// WithSource sets the source that handlers receive, usually the object that
// composes the emitter. Defaults to the emitter itself.
func WithSource(source interface{}) Option {
	return func(e *Emitter) {
		e.source = source
	}
}

// WithMiddleware adds middleware that wraps every handler when it is called.
// Middleware is applied in the order given.
func WithMiddleware(middleware ...HandlerMiddleware) Option {
	return func(e *Emitter) {
		e.middleware = append(e.middleware, middleware...)
	}
}

// WithID sets the ID of the emitter, used by tracing and logging.
func WithID(id uuid.UUID) Option {
	return func(e *Emitter) {
		e.id = id
	}
}

// ID returns the ID of the emitter.
func (e *Emitter) ID() uuid.UUID {
	return e.id
}

// Source returns the source passed to handlers.
func (e *Emitter) Source() interface{} {
	return e.source
}

// AddHandler implements the AddHandler method of the Registrar interface.
func (e *Emitter) AddHandler(t EventType, h Handler) error {
	if h.IsZero() {
		return ErrMissingHandler
	}

	if e.registry == nil {
		e.registry = registry{}
	}
	e.registry.add(t, h)

	return nil
}

// RemoveHandler implements the RemoveHandler method of the Registrar interface.
func (e *Emitter) RemoveHandler(t EventType, h Handler) error {
	if h.IsZero() {
		return ErrMissingHandler
	}

	e.registry.remove(t, h)

	return nil
}

// RemoveAllHandlers implements the RemoveAllHandlers method of the Registrar interface.
func (e *Emitter) RemoveAllHandlers(t EventType) {
	e.registry.removeAll(t)
}

// Listeners returns a copy of the owners and their handler chains for an
// event type, in the order the owners were added.
func (e *Emitter) Listeners(t EventType) []Listener {
	return e.registry.listeners(t)
}

// HandlerCount returns the number of handlers for an event type.
func (e *Emitter) HandlerCount(t EventType) int {
	n := 0
	for _, l := range e.registry.listeners(t) {
		n += len(l.Chain)
	}

	return n
}
