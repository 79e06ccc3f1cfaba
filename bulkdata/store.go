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

// Package bulkdata keeps large binary values out of metadata trees. Defer wraps a
// metadata.ContextFactory so that the payload of bulk data attributes is written to a Store and
// only a reference to it is kept in the tree.
package bulkdata

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when no payload is stored under the id
var ErrNotFound = errors.New("bulkdata: not found")

// Store holds bulk data payloads keyed by id. Implementations are safe for concurrent use.
type Store interface {
	Put(ctx context.Context, id string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
