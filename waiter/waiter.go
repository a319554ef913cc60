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

// Package waiter lets goroutines block until an emitter emits an event
// matching some criteria.
package waiter

import (
	"context"
	"errors"
	"sync"

	ee "github.com/looplab/eventemitter"
	"github.com/looplab/eventemitter/uuid"
)

// DefaultBufferSize is the number of matched events a listener keeps until
// they are waited for. Events exceeding it are dropped.
var DefaultBufferSize = 10

// ErrClosed is returned when waiting on a closed listener.
var ErrClosed = errors.New("listener is closed")

// Event is an event received by a listener.
type Event struct {
	Source interface{}
	Args   ee.EventArgs
}

// Matcher is a func that can match the arguments of an event to a criteria.
type Matcher func(ee.EventArgs) bool

// MatchAny matches any event.
func MatchAny() Matcher {
	return func(ee.EventArgs) bool {
		return true
	}
}

// MatchData matches events whose payload passes f, events without payload
// never match.
func MatchData(f func(interface{}) bool) Matcher {
	return func(args ee.EventArgs) bool {
		return args.HasData() && f(args.Data())
	}
}

// MatchAll matches if all of several matchers match.
func MatchAll(matchers ...Matcher) Matcher {
	return func(args ee.EventArgs) bool {
		for _, m := range matchers {
			if !m(args) {
				return false
			}
		}
		return true
	}
}

// Listener receives the matching events of one type from a registrar.
type Listener struct {
	id        uuid.UUID
	registrar ee.Registrar
	eventType ee.EventType
	match     Matcher
	inbox     chan Event
	closed    chan struct{}
	closeOnce sync.Once
}

// NewListener adds a listener for an event type to the registrar. A nil
// matcher matches every event. Close the listener to remove it.
func NewListener(r ee.Registrar, t ee.EventType, match Matcher) (*Listener, error) {
	if match == nil {
		match = MatchAny()
	}

	l := &Listener{
		id:        uuid.New(),
		registrar: r,
		eventType: t,
		match:     match,
		inbox:     make(chan Event, DefaultBufferSize),
		closed:    make(chan struct{}),
	}

	if err := r.AddHandler(t, l.handler()); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Listener) handler() ee.Handler {
	return ee.Bind(l, l.HandleEvent)
}

// ID returns the ID of the listener.
func (l *Listener) ID() uuid.UUID {
	return l.id
}

// HandleEvent is the ee.HandlerFunc of the listener, it forwards matching
// events to the inbox without blocking. A closed listener ignores events,
// it can still be called by an emit that was running when it was closed.
func (l *Listener) HandleEvent(ctx context.Context, source interface{}, args ee.EventArgs) error {
	select {
	case <-l.closed:
		return nil
	default:
	}

	if !l.match(args) {
		return nil
	}

	select {
	case l.inbox <- Event{Source: source, Args: args}:
	default: // Drop any events exceeding the listener buffer.
	}

	return nil
}

// Wait waits for the next matching event or for the context to be cancelled.
// Events received before the listener was closed can still be waited for.
func (l *Listener) Wait(ctx context.Context) (Event, error) {
	select {
	case e := <-l.inbox:
		return e, nil
	default:
	}

	select {
	case e := <-l.inbox:
		return e, nil
	case <-l.closed:
		return Event{}, ErrClosed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Inbox returns the channel that events will be delivered on so that you can
// integrate into your own select() if needed. The inbox is never closed, use
// Done to learn when the listener is.
func (l *Listener) Inbox() <-chan Event {
	return l.inbox
}

// Done returns a channel that is closed when the listener is closed.
func (l *Listener) Done() <-chan struct{} {
	return l.closed
}

// Close removes the listener from the registrar. It may be called by a
// handler during an emit of the registrar, but not concurrently with one.
func (l *Listener) Close() error {
	var err error
	l.closeOnce.Do(func() {
		err = l.registrar.RemoveHandler(l.eventType, l.handler())
		close(l.closed)
	})

	return err
}
