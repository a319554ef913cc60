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
	"errors"
	"fmt"
)

// ErrMissingHandler is when a handler without a func is added or removed.
var ErrMissingHandler = errors.New("missing handler")

// EmitError is returned by Emit when delivering an event to an owner fails.
// Owners after the failing one are not called.
type EmitError struct {
	// Err is the error returned by the handler or the execution context.
	Err error
	// Type is the type of the event that was emitted.
	Type EventType
	// Owner is the owner of the failing handler chain.
	Owner Owner
}

// Error implements the Error method of the error interface.
func (e *EmitError) Error() string {
	owner := "<no owner>"
	if e.Owner != NoOwner {
		owner = fmt.Sprintf("%T", e.Owner)
	}

	str := "could not emit " + string(e.Type) + " to " + owner + ": "
	if e.Err != nil {
		str += e.Err.Error()
	} else {
		str += "unknown error"
	}

	return str
}

// Unwrap implements the errors.Unwrap method.
func (e *EmitError) Unwrap() error {
	return e.Err
}

// Cause implements the github.com/pkg/errors Unwrap method.
func (e *EmitError) Cause() error {
	return e.Unwrap()
}
