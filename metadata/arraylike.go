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
	"encoding/json"
	"iter"
	"reflect"
)

// Sequence is a read-only ordered view of values
type Sequence interface {
	Len() int
	At(i int) interface{}
	All() iter.Seq[interface{}]
}

// ArrayLike holds a lone non-primitive value so that it also behaves as a one item Sequence.
// DICOM sequences are lists even when they hold one item; ArrayLike lets callers index or range
// over an attribute without knowing whether it was stored as a scalar or a list.
type ArrayLike struct {
	v interface{}
}

var _ Sequence = (*ArrayLike)(nil)

// MakeArrayLike wraps v in an *ArrayLike. Nil, primitives (booleans, numbers, strings, []byte)
// and values that are already *ArrayLike are returned unchanged.
func MakeArrayLike(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case []byte, *ArrayLike:
		return v
	}
	if k := reflect.ValueOf(v).Kind(); k == reflect.String || (k >= reflect.Bool && k <= reflect.Complex128) {
		return v
	}
	return &ArrayLike{v}
}

// Unwrap returns the value held by an *ArrayLike, or v itself for any other value
func Unwrap(v interface{}) interface{} {
	if a, ok := v.(*ArrayLike); ok {
		return a.v
	}
	return v
}

// Unwrap returns the wrapped value
func (a *ArrayLike) Unwrap() interface{} {
	return a.v
}

// Object returns the wrapped value as an Object, if it is one
func (a *ArrayLike) Object() (Object, bool) {
	switch o := a.v.(type) {
	case Object:
		return o, true
	case map[string]interface{}:
		return Object(o), true
	}
	return nil, false
}

// Len is always 1
func (a *ArrayLike) Len() int {
	return 1
}

// At returns a itself for index 0 and nil otherwise
func (a *ArrayLike) At(i int) interface{} {
	if i != 0 {
		return nil
	}
	return a
}

// All yields a once. Each call returns a fresh iteration.
func (a *ArrayLike) All() iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		yield(a)
	}
}

// MarshalJSON encodes the wrapped value
func (a *ArrayLike) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v)
}

// MarshalYAML encodes the wrapped value
func (a *ArrayLike) MarshalYAML() (interface{}, error) {
	return a.v, nil
}

// List is a Sequence over a slice of values
type List []interface{}

// Len returns the number of values
func (l List) Len() int { return len(l) }

// At returns the value at index i, or nil when i is out of range
func (l List) At(i int) interface{} {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// All yields the values in order
func (l List) All() iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for _, v := range l {
			if !yield(v) {
				return
			}
		}
	}
}

// AsSequence returns a Sequence view of an attribute value of a Natural or Normal tree: lists
// and *ArrayLike values are returned as is, an *Attribute as its Value, any other non-nil value
// as a one item List and nil as an empty List.
func AsSequence(v interface{}) Sequence {
	switch s := v.(type) {
	case nil:
		return List{}
	case *ArrayLike:
		return s
	case List:
		return s
	case []interface{}:
		return List(s)
	case *Attribute:
		return List(s.Value)
	}
	return List{v}
}
