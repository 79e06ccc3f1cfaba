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
	"encoding/base64"
	"encoding/json"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
)

// Attribute is the envelope holding the values of one tag in the DICOM JSON model
// (http://dicom.nema.org/medical/dicom/current/output/html/part18.html#sect_F.2).
type Attribute struct {
	VR    string
	Value []interface{}

	// BulkDataURI is set instead of Value when the value is stored out-of-band
	BulkDataURI string
}

type jsonAttribute struct {
	VR           string        `json:"vr" yaml:"vr"`
	Value        []interface{} `json:"Value,omitempty" yaml:"Value,omitempty"`
	BulkDataURI  string        `json:"BulkDataURI,omitempty" yaml:"BulkDataURI,omitempty"`
	InlineBinary *string       `json:"InlineBinary,omitempty" yaml:"InlineBinary,omitempty"`
}

func (a *Attribute) encoded() jsonAttribute {
	out := jsonAttribute{VR: a.VR, BulkDataURI: a.BulkDataURI}

	vr, err := dicom.LookupVR(a.VR)
	if err == nil && vr.IsBinary() {
		if b, ok := concatBytes(a.Value); ok {
			// an empty payload is kept as "" so it survives a round trip
			enc := base64.StdEncoding.EncodeToString(b)
			out.InlineBinary = &enc
			return out
		}
	}

	out.Value = a.Value
	if vr == dicom.PNVR {
		// person names are objects of name component groups
		out.Value = make([]interface{}, len(a.Value))
		for i, v := range a.Value {
			if s, ok := v.(string); ok {
				out.Value[i] = map[string]string{"Alphabetic": s}
			} else {
				out.Value[i] = v
			}
		}
	}
	return out
}

// MarshalJSON encodes the attribute in the DICOM JSON model. Values of binary VRs held as
// []byte are encoded as base64 InlineBinary, which is present even for an empty payload.
func (a *Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.encoded())
}

// MarshalYAML encodes the attribute with the same field names as MarshalJSON
func (a *Attribute) MarshalYAML() (interface{}, error) {
	return a.encoded(), nil
}

func concatBytes(values []interface{}) ([]byte, bool) {
	if len(values) == 0 {
		return nil, false
	}
	var out []byte
	for _, v := range values {
		b, ok := v.([]byte)
		if !ok {
			return nil, false
		}
		out = append(out, b...)
	}
	return out, true
}

// Standard is the default ContextFactory. It stores the values of a tag in an *Attribute keyed by
// the tag as given to AddTag. The attribute is always list shaped.
func Standard(req TagRequest) Context {
	return &standardContext{
		parent: req.Parent,
		key:    req.Tag,
		attr:   &Attribute{VR: req.VR()},
	}
}

type standardContext struct {
	parent  *ObjectContext
	key     string
	attr    *Attribute
	written bool
}

func (c *standardContext) write() {
	if !c.written {
		c.parent.Set(c.key, c.attr)
		c.written = true
	}
}

func (c *standardContext) Value(v interface{}) error {
	if ref, ok := v.(dicom.BulkDataReference); ok && ref.URI != "" {
		c.attr.BulkDataURI = ref.URI
	} else {
		c.attr.Value = append(c.attr.Value, v)
	}
	c.write()
	return nil
}

func (c *standardContext) Values(vs []interface{}) error {
	for _, v := range vs {
		if err := c.Value(v); err != nil {
			return err
		}
	}
	return nil
}

// Pop writes attributes that received no value so that empty attributes stay visible
func (c *standardContext) Pop() (interface{}, error) {
	c.write()
	return c.attr, nil
}
