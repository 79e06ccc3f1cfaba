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

package dicom

// Transform describes a transformation applied to a DataElement
type Transform func(*DataElement) (*DataElement, error)

// ReplayOption configures the behavior of the Replay function.
type ReplayOption struct {
	transform Transform
}

// WithTransform returns a ReplayOption that applies the given transformation to each DataElement
// before its events are emitted. For DataElements that contain a sequence, the transform is
// applied to the sequence element before its items are replayed (i.e. in pre-order).
// If the transform returns an error, Replay stops and returns the error. If a nil DataElement is
// returned, no events are emitted for the element.
func WithTransform(t Transform) ReplayOption {
	return ReplayOption{t}
}

// DropGroupLengths will exclude all group length elements (gggg,0000) from the replayed events
var DropGroupLengths = WithTransform(func(element *DataElement) (*DataElement, error) {
	if element.Tag.IsGroupLength() {
		return nil, nil
	}
	return element, nil
})

// DropPrivateTags will exclude all elements of odd groups from the replayed events
var DropPrivateTags = WithTransform(func(element *DataElement) (*DataElement, error) {
	if element.Tag.IsPrivate() {
		return nil, nil
	}
	return element, nil
})
