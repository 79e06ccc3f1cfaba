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

import (
	"fmt"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
)

// Object maps tags or attribute names to values. It backs one data set or sequence item.
type Object map[string]interface{}

// ObjectContext accumulates one data set or sequence item.
type ObjectContext struct {
	// parent receives the object when the context is popped. It is nil for the root.
	parent Context
	obj    Object
}

func newObjectContext(parent Context) *ObjectContext {
	return &ObjectContext{parent: parent}
}

// AddTag allocates the backing object. Objects never supply specialized children.
func (c *ObjectContext) AddTag(string, *dicom.TagInfo) Context {
	if c.obj == nil {
		c.obj = Object{}
	}
	return nil
}

// Set stores v under key
func (c *ObjectContext) Set(key string, v interface{}) {
	if c.obj == nil {
		c.obj = Object{}
	}
	c.obj[key] = v
}

// Object returns the object accumulated so far. It is nil until the first tag is added.
func (c *ObjectContext) Object() Object {
	return c.obj
}

// Value always fails: values belong to tags, not objects.
func (c *ObjectContext) Value(v interface{}) error {
	return fmt.Errorf("%w: got %T", ErrUnexpectedValue, v)
}

// Pop forwards the object to the parent context, if any, and returns it.
func (c *ObjectContext) Pop() (interface{}, error) {
	if c.obj == nil {
		c.obj = Object{}
	}
	if c.parent != nil {
		if err := c.parent.Value(c.obj); err != nil {
			return nil, fmt.Errorf("forwarding object to parent: %w", err)
		}
	}
	return c.obj, nil
}
