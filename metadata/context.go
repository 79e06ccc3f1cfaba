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
	"github.com/charmbracelet/log"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
)

// Context is one node of the Builder's stack. It accumulates either an object or the values of
// one tag.
type Context interface {
	// Value accumulates one value
	Value(v interface{}) error

	// Pop finalizes the context and returns its result
	Pop() (interface{}, error)
}

// BulkSetter is implemented by contexts that accept all their values at once.
type BulkSetter interface {
	Values(vs []interface{}) error
}

// ChildSupplier is implemented by contexts that may supply a specialized child context for a
// tag. Returning nil lets the Builder's factory create the child.
type ChildSupplier interface {
	AddTag(tag string, info *dicom.TagInfo) Context
}

// TagRequest holds what a ContextFactory needs to create the accumulator for one tag.
type TagRequest struct {
	// Parent is the object the tag belongs to
	Parent *ObjectContext

	// Tag is the tag identifier as supplied to AddTag
	Tag string

	// Info optionally overrides the dictionary for this occurrence of the tag
	Info *dicom.TagInfo

	Dictionary dicom.Dictionary
	Logger     *log.Logger
}

// ContextFactory creates the accumulator for a tag. Returning nil makes the Builder discard the
// tag's values.
type ContextFactory func(req TagRequest) Context

func (r TagRequest) entry() (dicom.DictionaryEntry, bool) {
	if r.Dictionary == nil {
		return dicom.DictionaryEntry{}, false
	}
	return r.Dictionary.Lookup(r.Tag)
}

// VR returns the VR override, else the dictionary VR, else "UN".
func (r TagRequest) VR() string {
	if r.Info != nil && r.Info.VR != "" {
		return r.Info.VR
	}
	if e, ok := r.entry(); ok && e.VR != nil {
		return e.VR.Name
	}
	return dicom.UNVR.Name
}

// VM returns the VM override, else the dictionary VM. The empty VM means unknown.
func (r TagRequest) VM() dicom.VM {
	if r.Info != nil && r.Info.VM != "" {
		return r.Info.VM
	}
	if e, ok := r.entry(); ok {
		return e.VM
	}
	return ""
}

// Name returns the name override, else the dictionary keyword, else the tag itself.
func (r TagRequest) Name() string {
	if r.Info != nil && r.Info.Name != "" {
		return r.Info.Name
	}
	if e, ok := r.entry(); ok && e.Name != "" {
		return e.Name
	}
	return r.Tag
}

// Filter returns a factory that delegates to f for tags accepted by keep and discards the rest.
func Filter(keep func(TagRequest) bool, f ContextFactory) ContextFactory {
	return func(req TagRequest) Context {
		if !keep(req) {
			return nil
		}
		return f(req)
	}
}

type skipContext struct{}

// Skip is a ContextFactory whose accumulators discard every value.
func Skip(TagRequest) Context {
	return skipContext{}
}

func (skipContext) Value(interface{}) error { return nil }

func (skipContext) Values([]interface{}) error { return nil }

func (skipContext) Pop() (interface{}, error) { return nil, nil }
