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

// Package mocks contains owners and execution contexts that record how they
// are called, useful in testing.
package mocks

import (
	"context"
	"sync"
	"testing"
	"time"

	ee "github.com/looplab/eventemitter"
)

const (
	// EventType is a the type for events in tests.
	EventType ee.EventType = "Event"
	// EventOtherType is another type for events in tests.
	EventOtherType ee.EventType = "EventOther"
)

// EventData is a mocked event payload, useful in testing.
type EventData struct {
	Content string
}

// Call is a recorded handler call.
type Call struct {
	Owner   string
	Source  interface{}
	Args    ee.EventArgs
	Context context.Context
}

// Owner is a mocked owner of handlers that records the events it handles,
// useful in testing.
type Owner struct {
	Name string
	// Used to simulate errors in HandleEvent.
	Err error
	// Used to require an execution context.
	ExecCtx ee.ExecutionContext
	// Called from HandleEvent after recording the call, if set.
	OnEvent func(ctx context.Context, source interface{}, args ee.EventArgs)

	Recv chan Call

	calls   []Call
	callsMu sync.Mutex
}

var _ = ee.ContextBound(&Owner{})

// NewOwner creates a new Owner.
func NewOwner(name string) *Owner {
	return &Owner{
		Name: name,
		Recv: make(chan Call, 10),
	}
}

// HandleEvent is a ee.HandlerFunc recording the call.
func (o *Owner) HandleEvent(ctx context.Context, source interface{}, args ee.EventArgs) error {
	c := o.record(o.Name, ctx, source, args)

	select {
	case o.Recv <- c:
	default:
	}

	if o.OnEvent != nil {
		o.OnEvent(ctx, source, args)
	}

	return o.Err
}

// HandleOther is a second ee.HandlerFunc of the owner, recording the call
// under the name suffixed with ".other".
func (o *Owner) HandleOther(ctx context.Context, source interface{}, args ee.EventArgs) error {
	o.record(o.Name+".other", ctx, source, args)

	return o.Err
}

func (o *Owner) record(name string, ctx context.Context, source interface{}, args ee.EventArgs) Call {
	c := Call{
		Owner:   name,
		Source:  source,
		Args:    args,
		Context: ctx,
	}

	o.callsMu.Lock()
	defer o.callsMu.Unlock()
	o.calls = append(o.calls, c)

	return c
}

// Handler returns HandleEvent bound to the owner.
func (o *Owner) Handler() ee.Handler {
	return ee.Bind(o, o.HandleEvent)
}

// OtherHandler returns HandleOther bound to the owner.
func (o *Owner) OtherHandler() ee.Handler {
	return ee.Bind(o, o.HandleOther)
}

// ExecutionContext implements the ExecutionContext method of the ee.ContextBound interface.
func (o *Owner) ExecutionContext() ee.ExecutionContext {
	return o.ExecCtx
}

// Calls returns a copy of the recorded calls.
func (o *Owner) Calls() []Call {
	o.callsMu.Lock()
	defer o.callsMu.Unlock()

	return append([]Call(nil), o.calls...)
}

// CallCount returns the number of recorded calls.
func (o *Owner) CallCount() int {
	o.callsMu.Lock()
	defer o.callsMu.Unlock()

	return len(o.calls)
}

// Reset forgets the recorded calls.
func (o *Owner) Reset() {
	o.callsMu.Lock()
	defer o.callsMu.Unlock()

	o.calls = nil
}

// WaitForCall is a helper to wait until an event has been handled, it timeouts
// after 1 second.
func (o *Owner) WaitForCall(t *testing.T) Call {
	t.Helper()

	select {
	case c := <-o.Recv:
		return c
	case <-time.After(time.Second):
		t.Error("did not receive event in time")
	}

	return Call{}
}

// Recorder records the order of handler calls across owners.
type Recorder struct {
	mu    sync.Mutex
	names []string
}

// Func returns a handler func that records name when called.
func (r *Recorder) Func(name string) ee.HandlerFunc {
	return func(ctx context.Context, source interface{}, args ee.EventArgs) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.names = append(r.names, name)

		return nil
	}
}

// Names returns the recorded names in call order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.names...)
}

type contextKey int

const execCtxKey contextKey = iota

// ExecutionContext is a mocked ee.ExecutionContext that runs every invoked
// func on a new goroutine and waits for it, useful in testing.
type ExecutionContext struct {
	// Used to simulate errors in Invoke; the func is not called.
	Err error

	mu      sync.Mutex
	invoked int
}

var _ = ee.ExecutionContext(&ExecutionContext{})

// NewExecutionContext creates a new ExecutionContext.
func NewExecutionContext() *ExecutionContext {
	return &ExecutionContext{}
}

// InContext implements the InContext method of the ee.ExecutionContext interface.
func (m *ExecutionContext) InContext(ctx context.Context) bool {
	ec, ok := ctx.Value(execCtxKey).(*ExecutionContext)
	return ok && ec == m
}

// Invoke implements the Invoke method of the ee.ExecutionContext interface.
func (m *ExecutionContext) Invoke(ctx context.Context, f func(context.Context) error) error {
	m.mu.Lock()
	m.invoked++
	m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- f(context.WithValue(ctx, execCtxKey, m))
	}()

	return <-errCh
}

// Invoked returns the number of calls to Invoke.
func (m *ExecutionContext) Invoked() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.invoked
}

// Inside returns a context that the execution context considers itself.
func (m *ExecutionContext) Inside(ctx context.Context) context.Context {
	return context.WithValue(ctx, execCtxKey, m)
}
