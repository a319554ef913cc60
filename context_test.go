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
	"testing"

	"github.com/looplab/eventemitter/uuid"
)

func TestContextEmitterID(t *testing.T) {
	ctx := context.Background()

	if id, ok := EmitterIDFromContext(ctx); ok {
		t.Error("there should be no emitter ID:", id)
	}

	id := uuid.New()
	ctx = NewContextWithEmitterID(ctx, id)
	if val, ok := EmitterIDFromContext(ctx); !ok || val != id {
		t.Error("the emitter ID should be correct:", val)
	}
}
