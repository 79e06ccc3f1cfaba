// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import "errors"

// Protocol errors returned by the Builder when events are not well nested.
var (
	// ErrEmptyStack is returned when an event arrives while no context is open, e.g. a Pop
	// without a matching StartObject or AddTag.
	ErrEmptyStack = errors.New("metadata: context stack is empty")

	// ErrTagOutsideObject is returned when AddTag is called while the open context is a tag
	// that does not supply children.
	ErrTagOutsideObject = errors.New("metadata: tag added outside of an object")

	// ErrUnexpectedValue is returned when a value is supplied directly to an object context.
	ErrUnexpectedValue = errors.New("metadata: value supplied to an object")
)
