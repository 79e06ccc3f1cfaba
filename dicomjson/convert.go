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

package dicomjson

import (
	"io"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/metadata"
)

// Convert builds the metadata tree of each data set of the DICOM JSON document read from r using
// the named form (see metadata.FactoryForForm). opts are applied after the form, so a WithFactory
// option overrides it. The result has the shape of the document: a single tree for a data set and
// a []interface{} of trees for an array.
func Convert(r io.Reader, form string, opts ...metadata.Option) (interface{}, error) {
	f, err := metadata.FactoryForForm(form)
	if err != nil {
		return nil, err
	}
	b := metadata.NewBuilder(append([]metadata.Option{metadata.WithFactory(f)}, opts...)...)

	trees := []interface{}{}
	array, err := decode(r, func(ds map[string]interface{}) error {
		tree, err := replayObject(ds, b)
		if err != nil {
			return err
		}
		trees = append(trees, tree)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if array {
		return trees, nil
	}
	return trees[0], nil
}
