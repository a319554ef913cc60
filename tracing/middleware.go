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

// Package tracing adds opentracing spans to event handling.
package tracing

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	ee "github.com/looplab/eventemitter"
)

// NewMiddleware returns a handler middleware that adds a tracing span for
// every handler call, using the global tracer.
func NewMiddleware() ee.HandlerMiddleware {
	return NewMiddlewareWithTracer(nil)
}

// NewMiddlewareWithTracer returns a handler middleware that adds a tracing
// span for every handler call, using tracer or the global tracer if nil.
func NewMiddlewareWithTracer(tracer opentracing.Tracer) ee.HandlerMiddleware {
	return ee.HandlerMiddleware(func(h ee.Handler) ee.Handler {
		return h.WithFunc(func(ctx context.Context, source interface{}, args ee.EventArgs) error {
			t := tracer
			if t == nil {
				t = opentracing.GlobalTracer()
			}

			opName := fmt.Sprintf("%s.Event(%s)", ownerName(h.Owner()), args.Type())
			sp, ctx := opentracing.StartSpanFromContextWithTracer(ctx, t, opName)

			err := h.HandleEvent(ctx, source, args)
			if err != nil {
				ext.LogError(sp, err)
			}

			sp.SetTag("ee.event_type", args.Type().String())
			sp.SetTag("ee.owner", ownerName(h.Owner()))
			sp.SetTag("ee.source", fmt.Sprintf("%T", source))
			if id, ok := ee.EmitterIDFromContext(ctx); ok {
				sp.SetTag("ee.emitter_id", id.String())
			}

			sp.Finish()

			return err
		})
	})
}

func ownerName(o ee.Owner) string {
	if o == ee.NoOwner {
		return "NoOwner"
	}

	return fmt.Sprintf("%T", o)
}
