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

// Package loop provides an event loop that runs funcs one at a time on a
// single goroutine, like the main loop of a UI toolkit. A Loop is an
// eventemitter.ExecutionContext: owners bound to it have their handlers run
// on the loop no matter which goroutine emits.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ee "github.com/looplab/eventemitter"
)

// ErrClosed is returned when invoking a func on a closed loop.
var ErrClosed = errors.New("loop is closed")

// ErrAlreadyRunning is returned when running a loop twice.
var ErrAlreadyRunning = errors.New("loop is already running")

type contextKey int

const loopKey contextKey = iota

// FromContext returns the loop that is running the caller, if any.
func FromContext(ctx context.Context) (*Loop, bool) {
	l, ok := ctx.Value(loopKey).(*Loop)
	return l, ok
}

// Loop runs invoked funcs in order on the goroutine calling Run.
type Loop struct {
	calls     chan call
	done      chan struct{}
	closeOnce sync.Once
	running   chan struct{}
	stopped   chan struct{}
}

var _ = ee.ExecutionContext(&Loop{})

type call struct {
	ctx    context.Context
	f      func(context.Context) error
	result chan result
}

type result struct {
	err       error
	panicked  bool
	recovered interface{}
}

// PanicError is the value re-panicked in the invoking goroutine when a func
// panics on the loop.
type PanicError struct {
	// Value is the value passed to panic on the loop.
	Value interface{}
}

// Error implements the Error method of the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic on loop: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// New creates a Loop. Call Run or Start to process invoked funcs.
func New() *Loop {
	return &Loop{
		calls:   make(chan call),
		done:    make(chan struct{}),
		running: make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

// Start creates a Loop running on a new goroutine.
func Start() *Loop {
	l := New()
	l.running <- struct{}{}
	go l.run()

	return l
}

// Run processes invoked funcs on the calling goroutine until the loop is
// closed.
func (l *Loop) Run() error {
	select {
	case l.running <- struct{}{}:
	default:
		return ErrAlreadyRunning
	}

	l.run()

	return nil
}

func (l *Loop) run() {
	defer close(l.stopped)

	for {
		select {
		case c := <-l.calls:
			c.result <- l.call(c)
		case <-l.done:
			return
		}
	}
}

func (l *Loop) call(c call) (r result) {
	defer func() {
		if v := recover(); v != nil {
			r = result{panicked: true, recovered: v}
		}
	}()

	return result{err: c.f(context.WithValue(c.ctx, loopKey, l))}
}

// InContext implements the InContext method of the eventemitter.ExecutionContext
// interface. It is true for contexts passed to funcs running on the loop.
func (l *Loop) InContext(ctx context.Context) bool {
	running, ok := FromContext(ctx)
	return ok && running == l
}

// Invoke implements the Invoke method of the eventemitter.ExecutionContext
// interface. It runs f on the loop and waits for it to return. Called from
// the loop itself, f runs directly. A panic in f is re-raised in the caller
// as a *PanicError.
//
// The loop is recognized from ctx only: funcs on the loop must pass on the
// ctx they were given. Invoking with a fresh context, such as
// context.Background, from the loop deadlocks.
func (l *Loop) Invoke(ctx context.Context, f func(context.Context) error) error {
	if l.InContext(ctx) {
		return f(ctx)
	}

	c := call{
		ctx:    ctx,
		f:      f,
		result: make(chan result, 1),
	}

	select {
	case l.calls <- c:
	case <-l.done:
		return ErrClosed
	}

	r := <-c.result
	if r.panicked {
		panic(&PanicError{Value: r.recovered})
	}

	return r.err
}

// Close stops the loop after the func currently running returns. Invoke
// returns ErrClosed afterwards.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		close(l.done)
	})
}

// Wait waits for a running loop to stop.
func (l *Loop) Wait() {
	<-l.stopped
}
