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

// Package cron triggers funcs on a cron schedule, typically emitting timed
// events from a source that lives on an execution context.
package cron

import (
	"context"
	"time"

	"github.com/gorhill/cronexpr"

	ee "github.com/looplab/eventemitter"
)

// Scheduler runs scheduled funcs through an execution context.
// It uses the cron syntax from https://github.com/gorhill/cronexpr.
type Scheduler struct {
	ec    ee.ExecutionContext
	errCh chan error
}

// NewScheduler creates a new Scheduler. Scheduled funcs are invoked through
// ec, or directly on the scheduling goroutine if ec is nil.
func NewScheduler(ec ee.ExecutionContext) *Scheduler {
	return &Scheduler{
		ec:    ec,
		errCh: make(chan error, 1),
	}
}

// Schedule calls f on regular intervals, using a line in the crontab format
// to setup the timing. f is given the triggered time. Cancelling the context
// will stop the triggering.
func (s *Scheduler) Schedule(ctx context.Context, cronLine string, f func(context.Context, time.Time) error) error {
	expr, err := cronexpr.Parse(cronLine)
	if err != nil {
		return err
	}

	go func() {
		for {
			nextTime := expr.Next(time.Now())
			if nextTime.IsZero() {
				return
			}

			select {
			case <-time.After(time.Until(nextTime)):
				if err := s.trigger(ctx, nextTime, f); err != nil {
					select {
					case s.errCh <- err:
					default:
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// ScheduleEmit emits an event of type t with the triggered time as payload
// on regular intervals. The emitter must only be used on the execution
// context of the scheduler.
func (s *Scheduler) ScheduleEmit(ctx context.Context, cronLine string, e *ee.Emitter, t ee.EventType) error {
	return s.Schedule(ctx, cronLine, func(ctx context.Context, triggered time.Time) error {
		return e.EmitData(ctx, t, triggered)
	})
}

func (s *Scheduler) trigger(ctx context.Context, triggered time.Time, f func(context.Context, time.Time) error) error {
	if s.ec == nil {
		return f(ctx, triggered)
	}

	return s.ec.Invoke(ctx, func(ctx context.Context) error {
		return f(ctx, triggered)
	})
}

// Errors returns the error channel.
func (s *Scheduler) Errors() <-chan error {
	return s.errCh
}
