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

package bulkdata

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/metadata"
)

// Option configures Defer
type Option struct {
	apply func(d *deferral)
}

// WithBulkDataDefinition sets which tags hold bulk data. The default is
// dicom.DefaultBulkDataDefinition.
func WithBulkDataDefinition(isBulkData func(dicom.DataElementTag) bool) Option {
	return Option{func(d *deferral) { d.isBulkData = isBulkData }}
}

// WithThreshold keeps payloads smaller than n bytes in the tree
func WithThreshold(n int) Option {
	return Option{func(d *deferral) { d.threshold = n }}
}

// WithURIPrefix sets the prefix of the references written into the tree. The reference URI of a
// payload is the prefix followed by its id.
func WithURIPrefix(prefix string) Option {
	return Option{func(d *deferral) { d.prefix = prefix }}
}

type deferral struct {
	ctx        context.Context
	store      Store
	isBulkData func(dicom.DataElementTag) bool
	threshold  int
	prefix     string
}

// Defer returns a factory that creates accumulators with next and, for bulk data tags, moves
// []byte values into store. Each deferred payload is stored under a new UUID when its tag is
// popped and next's accumulator receives a dicom.BulkDataReference in place of the bytes.
// Values of other types are passed to next's accumulator unchanged. ctx is used for all store
// operations.
func Defer(ctx context.Context, store Store, next metadata.ContextFactory, opts ...Option) metadata.ContextFactory {
	d := &deferral{
		ctx:        ctx,
		store:      store,
		isBulkData: dicom.DefaultBulkDataDefinition,
	}
	for _, opt := range opts {
		opt.apply(d)
	}

	return func(req metadata.TagRequest) metadata.Context {
		inner := next(req)
		if inner == nil {
			return nil
		}
		tag, ok := resolveTag(req)
		if !ok || !d.isBulkData(tag) {
			return inner
		}
		return &deferredContext{d: d, inner: inner, tag: tag}
	}
}

func resolveTag(req metadata.TagRequest) (dicom.DataElementTag, bool) {
	if tag, err := dicom.ParseTag(req.Tag); err == nil {
		return tag, true
	}
	if req.Dictionary == nil {
		return 0, false
	}
	e, ok := req.Dictionary.Lookup(req.Tag)
	return e.Tag, ok
}

type deferredContext struct {
	d       *deferral
	inner   metadata.Context
	tag     dicom.DataElementTag
	payload []byte
	chunks  int
}

func (c *deferredContext) Value(v interface{}) error {
	if b, ok := v.([]byte); ok {
		c.payload = append(c.payload, b...)
		c.chunks++
		return nil
	}
	return c.inner.Value(v)
}

func (c *deferredContext) Values(vs []interface{}) error {
	for _, v := range vs {
		if err := c.Value(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *deferredContext) Pop() (interface{}, error) {
	if c.chunks > 0 {
		v, err := c.reference()
		if err != nil {
			return nil, err
		}
		if err := c.inner.Value(v); err != nil {
			return nil, err
		}
	}
	return c.inner.Pop()
}

func (c *deferredContext) reference() (interface{}, error) {
	if len(c.payload) < c.d.threshold {
		return c.payload, nil
	}
	id := uuid.NewString()
	if err := c.d.store.Put(c.d.ctx, id, c.payload); err != nil {
		return nil, fmt.Errorf("storing bulk data of %v: %w", c.tag, err)
	}
	return dicom.BulkDataReference{URI: c.d.prefix + id}, nil
}
