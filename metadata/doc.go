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

// Package metadata builds in-memory attribute trees from the well-nested event stream of a DICOM
// tokenizer.
//
// A Builder keeps an explicit stack of contexts. StartObject pushes an ObjectContext for a data
// set or sequence item, AddTag pushes a tag accumulator created by a ContextFactory, Value and
// Values feed the context on top of the stack and Pop finalizes it. The factory decides the shape
// of the tree:
//
//	Standard  keys are 8 hex digit tags, values are *Attribute envelopes in the DICOM JSON model
//	Natural   keys are attribute keywords, single valued attributes hold the bare value
//	Normal    same observable shape as Natural
//
// Values of single valued attributes that are not primitives are wrapped in an *ArrayLike so that
// they can be indexed and ranged over like a one item sequence.
package metadata
