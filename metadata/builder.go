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

	"github.com/charmbracelet/log"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
)

// Option configures a Builder
type Option struct {
	apply func(b *Builder)
}

// WithFactory sets the factory creating tag accumulators. The default is Standard.
func WithFactory(f ContextFactory) Option {
	return Option{func(b *Builder) { b.factory = f }}
}

// WithDictionary sets the dictionary handed to tag accumulators. The default is
// dicom.StandardDictionary.
func WithDictionary(d dicom.Dictionary) Option {
	return Option{func(b *Builder) { b.dict = d }}
}

// WithLogger sets the logger used to report recoverable problems such as an attribute receiving
// more values than its dictionary multiplicity allows.
func WithLogger(l *log.Logger) Option {
	return Option{func(b *Builder) { b.logger = l }}
}

// Builder turns a well-nested event stream into an attribute tree. The result of the outermost
// Pop is the finished tree.
//
// A Builder is not safe for concurrent use; use one Builder per event stream.
type Builder struct {
	factory ContextFactory
	dict    dicom.Dictionary
	logger  *log.Logger

	// stack owns the open contexts. Contexts only reference their parent to forward values.
	stack []Context
}

var _ dicom.EventHandler = (*Builder)(nil)

// NewBuilder returns an empty Builder configured by opts
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		factory: Standard,
		dict:    dicom.StandardDictionary,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt.apply(b)
	}
	return b
}

// Depth returns the number of open contexts
func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) top() Context {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// StartObject opens a data set or sequence item
func (b *Builder) StartObject() {
	b.stack = append(b.stack, newObjectContext(b.top()))
}

// AddTag opens the accumulator for tag within the open object. info, when non nil, overrides
// the dictionary for this occurrence of the tag.
func (b *Builder) AddTag(tag string, info *dicom.TagInfo) error {
	cur := b.top()
	if cur == nil {
		return fmt.Errorf("adding tag %v: %w", tag, ErrEmptyStack)
	}

	var child Context
	if s, ok := cur.(ChildSupplier); ok {
		child = s.AddTag(tag, info)
	}
	if child == nil {
		parent, ok := cur.(*ObjectContext)
		if !ok {
			return fmt.Errorf("adding tag %v: %w", tag, ErrTagOutsideObject)
		}
		child = b.factory(TagRequest{
			Parent:     parent,
			Tag:        tag,
			Info:       info,
			Dictionary: b.dict,
			Logger:     b.logger,
		})
	}
	if child == nil {
		child = skipContext{}
	}

	b.stack = append(b.stack, child)
	return nil
}

// Value supplies one value to the open context
func (b *Builder) Value(v interface{}) error {
	cur := b.top()
	if cur == nil {
		return fmt.Errorf("adding value: %w", ErrEmptyStack)
	}
	return cur.Value(v)
}

// Values supplies all values of the open context and closes it, returning the result of Pop.
func (b *Builder) Values(vs []interface{}) (interface{}, error) {
	cur := b.top()
	if cur == nil {
		return nil, fmt.Errorf("adding values: %w", ErrEmptyStack)
	}

	if s, ok := cur.(BulkSetter); ok {
		if err := s.Values(vs); err != nil {
			return nil, err
		}
		return b.Pop()
	}

	for _, v := range vs {
		if err := cur.Value(v); err != nil {
			return nil, err
		}
	}
	return b.Pop()
}

// Pop finalizes the open context and returns its result. The context below it becomes the open
// context.
func (b *Builder) Pop() (interface{}, error) {
	n := len(b.stack)
	if n == 0 {
		return nil, fmt.Errorf("pop: %w", ErrEmptyStack)
	}

	cur := b.stack[n-1]
	b.stack[n-1] = nil
	b.stack = b.stack[:n-1]

	return cur.Pop()
}
