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

	"github.com/looplab/eventemitter/uuid"
)

type contextKey int

// Context keys for values set while emitting.
const (
	emitterIDKey contextKey = iota
)

// EmitterIDFromContext returns the ID of the emitter that is calling the
// handler, if any.
func EmitterIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(emitterIDKey).(uuid.UUID)
	return id, ok
}

// NewContextWithEmitterID sets the emitter ID in the context. Emit sets it
// for every handler it calls.
func NewContextWithEmitterID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, emitterIDKey, id)
}
