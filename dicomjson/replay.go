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

// Package dicomjson emits the events describing documents in the DICOM JSON model
// (http://dicom.nema.org/medical/dicom/current/output/html/part18.html#chapter_F) so that they
// can be converted by any dicom.EventHandler, such as a metadata.Builder.
package dicomjson

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
)

// Replay reads a DICOM JSON document from r and emits its events to h. The document is either one
// data set or an array of data sets; each data set is emitted as an outermost object and the
// results of the outermost Pops are returned in document order. Arrays are decoded one data set at
// a time.
func Replay(r io.Reader, h dicom.EventHandler) ([]interface{}, error) {
	var results []interface{}
	_, err := decode(r, func(ds map[string]interface{}) error {
		res, err := replayObject(ds, h)
		if err != nil {
			return err
		}
		results = append(results, res)
		return nil
	})
	return results, err
}

var errNullDataSet = errors.New("data set is null, want an object")

// decode calls fn with each data set of the document and reports whether the document is an array
func decode(r io.Reader, fn func(map[string]interface{}) error) (bool, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		return false, fmt.Errorf("reading document: %w", err)
	}

	dec := json.NewDecoder(br)
	dec.UseNumber()

	if first != '[' {
		var ds map[string]interface{}
		if err := dec.Decode(&ds); err != nil {
			return false, fmt.Errorf("decoding data set: %w", err)
		}
		if ds == nil {
			return false, errNullDataSet
		}
		return false, fn(ds)
	}

	if _, err := dec.Token(); err != nil {
		return true, fmt.Errorf("decoding document: %w", err)
	}
	for i := 0; dec.More(); i++ {
		var ds map[string]interface{}
		if err := dec.Decode(&ds); err != nil {
			return true, fmt.Errorf("decoding data set %d: %w", i, err)
		}
		if ds == nil {
			return true, fmt.Errorf("data set %d: %w", i, errNullDataSet)
		}
		if err := fn(ds); err != nil {
			return true, fmt.Errorf("data set %d: %w", i, err)
		}
	}
	if _, err := dec.Token(); err != nil {
		return true, fmt.Errorf("decoding document: %w", err)
	}
	return true, nil
}

func peekNonSpace(br *bufio.Reader) (rune, error) {
	for {
		r, _, err := br.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, br.UnreadRune()
		}
	}
}

func replayObject(ds map[string]interface{}, h dicom.EventHandler) (interface{}, error) {
	h.StartObject()
	if err := replayAttributes(ds, h); err != nil {
		return nil, err
	}
	return h.Pop()
}

func replayAttributes(ds map[string]interface{}, h dicom.EventHandler) error {
	keys := make([]string, 0, len(ds))
	for k := range ds {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := dicom.ParseTag(k); err != nil {
			return err
		}
		attr, ok := ds[k].(map[string]interface{})
		if !ok {
			return fmt.Errorf("attribute %v: expected an object, got %T", k, ds[k])
		}
		if err := replayAttribute(k, attr, h); err != nil {
			return fmt.Errorf("attribute %v: %w", k, err)
		}
	}
	return nil
}

func replayAttribute(tag string, attr map[string]interface{}, h dicom.EventHandler) error {
	vr, _ := attr["vr"].(string)
	if vr == "" {
		return fmt.Errorf("missing vr")
	}
	if err := h.AddTag(tag, &dicom.TagInfo{VR: vr}); err != nil {
		return err
	}

	if vr == dicom.SQVR.Name {
		items, err := valueArray(attr)
		if err != nil {
			return err
		}
		for i, item := range items {
			ds, ok := item.(map[string]interface{})
			if !ok {
				return fmt.Errorf("item %d: expected an object, got %T", i, item)
			}
			h.StartObject()
			if err := replayAttributes(ds, h); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if _, err := h.Pop(); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		_, err = h.Pop()
		return err
	}

	values, err := attributeValues(vr, attr)
	if err != nil {
		return err
	}
	_, err = h.Values(values)
	return err
}

func valueArray(attr map[string]interface{}) ([]interface{}, error) {
	raw, ok := attr["Value"]
	if !ok || raw == nil {
		return nil, nil
	}
	values, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected Value to be an array, got %T", raw)
	}
	return values, nil
}

func attributeValues(vr string, attr map[string]interface{}) ([]interface{}, error) {
	if uri, ok := attr["BulkDataURI"].(string); ok {
		return []interface{}{dicom.BulkDataReference{URI: uri}}, nil
	}
	if s, ok := attr["InlineBinary"].(string); ok {
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decoding InlineBinary: %w", err)
		}
		return []interface{}{b}, nil
	}

	raw, err := valueArray(attr)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, len(raw))
	for i, v := range raw {
		values[i] = convertValue(vr, v)
	}
	return values, nil
}

// convertValue turns JSON numbers into int64 when they are integral and float64 otherwise. Person
// names with only an alphabetic component group become plain strings.
func convertValue(vr string, v interface{}) interface{} {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]interface{}:
		if vr != dicom.PNVR.Name {
			return v
		}
		if s, ok := v["Alphabetic"].(string); ok && len(v) == 1 {
			return s
		}
		return v
	}
	return v
}
