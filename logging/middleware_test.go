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

package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ee "github.com/looplab/eventemitter"
	"github.com/looplab/eventemitter/mocks"
)

func TestMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	e := ee.NewEmitter(ee.WithMiddleware(NewMiddleware(logger)))
	ok, failing := mocks.NewOwner("ok"), mocks.NewOwner("failing")
	failing.Err = errors.New("handler error")
	require.NoError(t, e.AddHandler(mocks.EventType, ok.Handler()))
	require.NoError(t, e.AddHandler(mocks.EventType, failing.Handler()))

	err := e.Emit(context.Background(), mocks.EventType)
	require.ErrorIs(t, err, failing.Err)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "handling event", entries[0].Message)
	assert.Equal(t, "Event", entries[0].Data["event_type"])
	assert.Equal(t, "*mocks.Owner", entries[0].Data["owner"])
	assert.Equal(t, e.ID().String(), entries[0].Data["emitter_id"])

	last := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, last.Level)
	assert.Equal(t, "could not handle event", last.Message)
	assert.Equal(t, failing.Err, last.Data[logrus.ErrorKey])
}

func TestFields(t *testing.T) {
	fields := Fields(context.Background(), ee.NoOwner, ee.NewEventArgs("hungry", nil))
	assert.Equal(t, logrus.Fields{
		"event_type": "hungry",
		"owner":      "none",
	}, fields)
}

func TestMiddlewareStandardLogger(t *testing.T) {
	h := ee.UseHandlerMiddleware(ee.Func(mocks.NewOwner("o").HandleEvent), NewMiddleware(nil))
	assert.NoError(t, h.HandleEvent(context.Background(), nil, ee.NewEventArgs(mocks.EventType, nil)))
}
