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
	"fmt"
	"reflect"
)

// HandlerFunc is the signature of event handlers. The source is the object
// that emitted the event.
type HandlerFunc func(ctx context.Context, source interface{}, args EventArgs) error

// Handler is a HandlerFunc bound to an owner. Handlers made with Bind are
// values and can be recreated at will, two of them are equal when they are
// bound to the same owner and wrap the same method. Handlers made with Func
// are only equal to copies of themselves.
type Handler struct {
	owner Owner
	fn    HandlerFunc
	id    *funcID
}

// funcID identifies a handler made with Func. Non-zero size so that every
// allocation has its own address.
type funcID struct{ _ byte }

// Bind returns a handler for fn owned by owner, usually the receiver of a
// method value:
//
//	h := ee.Bind(master, master.Feed)
//
// Bind compares funcs by their code, so fn should be a method value or a
// top-level func. Closures made from one literal share their code; wrap them
// with Func instead and keep the returned handler to remove it.
//
// A nil owner is the same as calling Func. Bind panics if owner is not
// comparable.
func Bind(owner Owner, fn HandlerFunc) Handler {
	if owner == nil {
		return Func(fn)
	}
	if !reflect.TypeOf(owner).Comparable() {
		panic(fmt.Sprintf("eventemitter: owner of type %T is not comparable", owner))
	}

	return Handler{owner: owner, fn: fn}
}

// Func returns a handler for fn that is not bound to any owner. Every call
// returns a new handler, equal only to copies of itself.
func Func(fn HandlerFunc) Handler {
	return Handler{owner: NoOwner, fn: fn, id: &funcID{}}
}

// Owner returns the owner of the handler.
func (h Handler) Owner() Owner {
	if h.owner == nil {
		return NoOwner
	}

	return h.owner
}

// HandleEvent calls the handler func.
func (h Handler) HandleEvent(ctx context.Context, source interface{}, args EventArgs) error {
	return h.fn(ctx, source, args)
}

// IsZero reports whether the handler has no func.
func (h Handler) IsZero() bool {
	return h.fn == nil
}

// Equal reports whether both handlers are bound to the same owner and wrap
// the same function. Method values of the same method compare equal, the
// owner tells them apart. Handlers made with Func compare by identity.
func (h Handler) Equal(o Handler) bool {
	if h.Owner() != o.Owner() {
		return false
	}
	if h.id != nil || o.id != nil {
		return h.id == o.id
	}
	if h.fn == nil || o.fn == nil {
		return h.fn == nil && o.fn == nil
	}

	return reflect.ValueOf(h.fn).Pointer() == reflect.ValueOf(o.fn).Pointer()
}

// WithFunc returns a handler with the same owner calling fn instead. A
// handler made with Func keeps its identity.
func (h Handler) WithFunc(fn HandlerFunc) Handler {
	return Handler{owner: h.Owner(), fn: fn, id: h.id}
}

// String implements the String method of the fmt.Stringer interface.
func (h Handler) String() string {
	if h.Owner() == NoOwner {
		return "Handler(<no owner>)"
	}

	return fmt.Sprintf("Handler(%T)", h.owner)
}

// HandlerMiddleware is a function that middlewares can implement to be able
// to chain. Middleware must keep the owner of the handler.
type HandlerMiddleware func(Handler) Handler

// UseHandlerMiddleware wraps a Handler in one or more middleware.
func UseHandlerMiddleware(h Handler, middleware ...HandlerMiddleware) Handler {
	// Apply in reverse order.
	for i := len(middleware) - 1; i >= 0; i-- {
		m := middleware[i]
		h = m(h)
	}

	return h
}
