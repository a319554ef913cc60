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

// Package logging logs event handling with logrus.
package logging

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	ee "github.com/looplab/eventemitter"
)

// NewMiddleware returns a handler middleware that logs every handler call at
// debug level and failing calls at error level.
func NewMiddleware(logger logrus.FieldLogger) ee.HandlerMiddleware {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return ee.HandlerMiddleware(func(h ee.Handler) ee.Handler {
		return h.WithFunc(func(ctx context.Context, source interface{}, args ee.EventArgs) error {
			log := logger.WithFields(Fields(ctx, h.Owner(), args))

			log.Debug("handling event")
			err := h.HandleEvent(ctx, source, args)
			if err != nil {
				log.WithError(err).Error("could not handle event")
			}

			return err
		})
	})
}

// Fields returns the log fields describing a handler call.
func Fields(ctx context.Context, owner ee.Owner, args ee.EventArgs) logrus.Fields {
	fields := logrus.Fields{
		"event_type": args.Type().String(),
	}

	if owner == ee.NoOwner {
		fields["owner"] = "none"
	} else {
		fields["owner"] = fmt.Sprintf("%T", owner)
	}

	if id, ok := ee.EmitterIDFromContext(ctx); ok {
		fields["emitter_id"] = id.String()
	}

	return fields
}
