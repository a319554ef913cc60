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

// ExecutionContext is a goroutine or loop that some handlers must run on,
// like the event loop of a UI toolkit.
//
// Being in the context is known from ctx only. Code running in the context
// must pass on the ctx it was given when emitting; emitting with a fresh
// context such as context.Background from inside a single goroutine
// context deadlocks.
type ExecutionContext interface {
	// InContext reports whether a caller with ctx is already running in the
	// execution context.
	InContext(ctx context.Context) bool

	// Invoke runs f in the execution context and blocks until it returns,
	// returning the error of f. The context passed to f must be recognized
	// by InContext.
	Invoke(ctx context.Context, f func(context.Context) error) error
}

// ContextBound is implemented by owners whose handlers must run in a
// specific execution context. A nil ExecutionContext means no requirement.
type ContextBound interface {
	ExecutionContext() ExecutionContext
}

// executionContextOf returns the execution context the owner requires, or
// nil if it can be called from anywhere.
func executionContextOf(owner Owner) ExecutionContext {
	if cb, ok := owner.(ContextBound); ok {
		return cb.ExecutionContext()
	}

	return nil
}
