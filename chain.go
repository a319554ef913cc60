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

// HandlerChain is the ordered list of handlers added by one owner for one
// event type. Handlers run in the order they were added.
type HandlerChain []Handler

// Add returns the chain with h appended. Adding a handler twice makes it run
// twice.
func (c HandlerChain) Add(h Handler) HandlerChain {
	return append(c, h)
}

// Remove returns the chain without the first handler equal to h, and whether
// one was found. The receiver is never modified.
func (c HandlerChain) Remove(h Handler) (HandlerChain, bool) {
	for i, existing := range c {
		if !existing.Equal(h) {
			continue
		}

		rest := make(HandlerChain, 0, len(c)-1)
		rest = append(rest, c[:i]...)
		rest = append(rest, c[i+1:]...)

		return rest, true
	}

	return c, false
}

// HandleEvent calls every handler of the chain in order, stopping at the
// first error.
func (c HandlerChain) HandleEvent(ctx context.Context, source interface{}, args EventArgs) error {
	for _, h := range c {
		if err := h.HandleEvent(ctx, source, args); err != nil {
			return err
		}
	}

	return nil
}
