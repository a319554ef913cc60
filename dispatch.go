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
	"context"
)

// Emit emits an event without payload, handlers receive EmptyData.
func (e *Emitter) Emit(ctx context.Context, t EventType) error {
	return e.EmitData(ctx, t, EmptyData)
}

// EmitData emits an event with a payload to every owner listening for the
// event type, one owner at a time in the order they were added.
//
// The owners are read once before calling any handler; handlers added or
// removed while the event is emitted take effect on the next emit. Owners
// implementing ContextBound are called through their execution context when
// ctx is not already in it, and the emit waits for them to finish.
//
// The first failing handler stops the emit and its error is returned as an
// *EmitError. Panics are not recovered.
func (e *Emitter) EmitData(ctx context.Context, t EventType, data interface{}) error {
	listeners := e.registry.listeners(t)
	if len(listeners) == 0 {
		return nil
	}

	source := e.source
	if source == nil {
		source = e
	}

	for _, l := range listeners {
		if err := e.deliver(ctx, source, l, NewEventArgs(t, data)); err != nil {
			return &EmitError{
				Err:   err,
				Type:  t,
				Owner: l.Owner,
			}
		}
	}

	return nil
}

func (e *Emitter) deliver(ctx context.Context, source interface{}, l Listener, args EventArgs) error {
	chain := l.Chain
	if len(e.middleware) > 0 {
		chain = make(HandlerChain, len(l.Chain))
		for i, h := range l.Chain {
			chain[i] = UseHandlerMiddleware(h, e.middleware...)
		}
	}

	ctx = NewContextWithEmitterID(ctx, e.id)

	if ec := executionContextOf(l.Owner); ec != nil && !ec.InContext(ctx) {
		return ec.Invoke(ctx, func(ctx context.Context) error {
			return chain.HandleEvent(ctx, source, args)
		})
	}

	return chain.HandleEvent(ctx, source, args)
}
