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

package loop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	ee "github.com/looplab/eventemitter"
	"github.com/looplab/eventemitter/mocks"
)

func TestLoopInvoke(t *testing.T) {
	l := Start()
	defer l.Close()

	ctx := context.Background()
	if l.InContext(ctx) {
		t.Error("the background context should not be in the loop")
	}

	var inside bool
	if err := l.Invoke(ctx, func(ctx context.Context) error {
		inside = l.InContext(ctx)
		return nil
	}); err != nil {
		t.Error("there should be no error:", err)
	}
	if !inside {
		t.Error("the func should run in the loop")
	}

	invokeErr := errors.New("invoke error")
	if err := l.Invoke(ctx, func(ctx context.Context) error {
		return invokeErr
	}); !errors.Is(err, invokeErr) {
		t.Error("the error should be correct:", err)
	}
}

func TestLoopInvokeFromLoop(t *testing.T) {
	l := Start()
	defer l.Close()

	var nested bool
	if err := l.Invoke(context.Background(), func(ctx context.Context) error {
		// Would deadlock if not run directly.
		return l.Invoke(ctx, func(ctx context.Context) error {
			nested = true
			return nil
		})
	}); err != nil {
		t.Error("there should be no error:", err)
	}
	if !nested {
		t.Error("the nested func should run")
	}
}

func TestLoopOtherLoop(t *testing.T) {
	l1 := Start()
	defer l1.Close()
	l2 := Start()
	defer l2.Close()

	if err := l1.Invoke(context.Background(), func(ctx context.Context) error {
		if l2.InContext(ctx) {
			t.Error("the context should not be in the other loop")
		}

		return l2.Invoke(ctx, func(ctx context.Context) error {
			if !l2.InContext(ctx) {
				t.Error("the context should be in the other loop")
			}
			return nil
		})
	}); err != nil {
		t.Error("there should be no error:", err)
	}
}

func TestLoopSerializes(t *testing.T) {
	l := Start()
	defer l.Close()

	var (
		wg      sync.WaitGroup
		running int
		max     int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Invoke(context.Background(), func(ctx context.Context) error {
				running++
				if running > max {
					max = running
				}
				time.Sleep(time.Millisecond)
				running--
				return nil
			})
		}()
	}
	wg.Wait()

	if max != 1 {
		t.Error("only one func should run at a time:", max)
	}
}

func TestLoopPanic(t *testing.T) {
	l := Start()
	defer l.Close()

	func() {
		defer func() {
			r := recover()
			pe, ok := r.(*PanicError)
			if !ok {
				t.Fatal("the panic should be a PanicError:", r)
			}
			if pe.Value != "loop panic" {
				t.Error("the panic value should be correct:", pe.Value)
			}
		}()

		_ = l.Invoke(context.Background(), func(ctx context.Context) error {
			panic("loop panic")
		})
	}()

	// The loop survives.
	if err := l.Invoke(context.Background(), func(ctx context.Context) error {
		return nil
	}); err != nil {
		t.Error("there should be no error:", err)
	}

	errPanic := errors.New("panic error")
	pe := &PanicError{Value: errPanic}
	if !errors.Is(pe, errPanic) {
		t.Error("the panic error should unwrap to the value")
	}
}

func TestLoopClose(t *testing.T) {
	l := Start()
	l.Close()
	l.Close()
	l.Wait()

	if err := l.Invoke(context.Background(), func(ctx context.Context) error {
		t.Error("the func should not run")
		return nil
	}); !errors.Is(err, ErrClosed) {
		t.Error("the error should be correct:", err)
	}

	if err := l.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Error("the error should be correct:", err)
	}
}

func TestLoopRun(t *testing.T) {
	l := New()
	errCh := make(chan error, 1)
	go func() {
		errCh <- l.Run()
	}()

	if err := l.Invoke(context.Background(), func(ctx context.Context) error {
		return nil
	}); err != nil {
		t.Error("there should be no error:", err)
	}

	l.Close()
	select {
	case err := <-errCh:
		if err != nil {
			t.Error("there should be no error:", err)
		}
	case <-time.After(time.Second):
		t.Error("the loop should stop")
	}
}

func TestEmitOnLoop(t *testing.T) {
	l := Start()
	defer l.Close()

	e := ee.NewEmitter()
	bound := mocks.NewOwner("bound")
	bound.ExecCtx = l
	free := mocks.NewOwner("free")

	order := make(chan string, 10)
	bound.OnEvent = func(ctx context.Context, source interface{}, args ee.EventArgs) {
		time.Sleep(10 * time.Millisecond)
		order <- "bound"
	}
	free.OnEvent = func(ctx context.Context, source interface{}, args ee.EventArgs) {
		order <- "free"
	}

	if err := e.AddHandler(mocks.EventType, bound.Handler()); err != nil {
		t.Fatal("there should be no error:", err)
	}
	if err := e.AddHandler(mocks.EventType, free.Handler()); err != nil {
		t.Fatal("there should be no error:", err)
	}

	if err := e.Emit(context.Background(), mocks.EventType); err != nil {
		t.Error("there should be no error:", err)
	}

	calls := bound.Calls()
	if len(calls) != 1 {
		t.Fatal("the bound owner should be called once:", len(calls))
	}
	if ran, ok := FromContext(calls[0].Context); !ok || ran != l {
		t.Error("the bound owner should be called on the loop")
	}
	if _, ok := FromContext(free.Calls()[0].Context); ok {
		t.Error("the free owner should not be called on the loop")
	}

	// The emit waits for the loop before moving on.
	if first := <-order; first != "bound" {
		t.Error("the bound owner should be called first:", first)
	}

	// Emitting from the loop calls the owner directly.
	if err := l.Invoke(context.Background(), func(ctx context.Context) error {
		return e.Emit(ctx, mocks.EventType)
	}); err != nil {
		t.Error("there should be no error:", err)
	}
	if bound.CallCount() != 2 {
		t.Error("the bound owner should be called again:", bound.CallCount())
	}
}

func TestEmitOnLoopPanic(t *testing.T) {
	l := Start()
	defer l.Close()

	e := ee.NewEmitter()
	bound := mocks.NewOwner("bound")
	bound.ExecCtx = l
	bound.OnEvent = func(ctx context.Context, source interface{}, args ee.EventArgs) {
		panic("handler panic")
	}
	if err := e.AddHandler(mocks.EventType, bound.Handler()); err != nil {
		t.Fatal("there should be no error:", err)
	}

	defer func() {
		if _, ok := recover().(*PanicError); !ok {
			t.Error("the panic should reach the emitting goroutine")
		}
	}()
	_ = e.Emit(context.Background(), mocks.EventType)
	t.Error("emit should panic")
}

func TestEmitOnLoopFromHandler(t *testing.T) {
	l := Start()
	defer l.Close()

	hungry := ee.NewEmitter()
	feed := ee.NewEmitter()

	master := mocks.NewOwner("master")
	master.ExecCtx = l
	pet := mocks.NewOwner("pet")
	pet.ExecCtx = l

	// The handler on the loop emits with the ctx it was given.
	master.OnEvent = func(ctx context.Context, source interface{}, args ee.EventArgs) {
		if err := feed.Emit(ctx, mocks.EventType); err != nil {
			t.Error("there should be no error:", err)
		}
	}
	if err := hungry.AddHandler(mocks.EventType, master.Handler()); err != nil {
		t.Fatal("there should be no error:", err)
	}
	if err := feed.AddHandler(mocks.EventType, pet.Handler()); err != nil {
		t.Fatal("there should be no error:", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- hungry.Emit(context.Background(), mocks.EventType)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Error("there should be no error:", err)
		}
	case <-time.After(time.Second):
		t.Fatal("the nested emit should not block the loop")
	}

	calls := pet.Calls()
	if len(calls) != 1 {
		t.Fatal("the pet should be called once:", len(calls))
	}
	if !l.InContext(calls[0].Context) {
		t.Error("the pet should be called on the loop")
	}
}
