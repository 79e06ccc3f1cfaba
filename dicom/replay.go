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

import (
	"fmt"
	"strings"
	"unicode"
)

// EventHandler consumes the well-nested event stream produced by a tokenizer: StartObject and
// AddTag open a context, Pop closes it, Value and Values supply values to the open context.
type EventHandler interface {
	StartObject()
	AddTag(tag string, info *TagInfo) error
	Value(v interface{}) error
	Values(vs []interface{}) (interface{}, error)
	Pop() (interface{}, error)
}

// Replay emits the events describing ds to h and returns the result of the outermost Pop. Tags
// are emitted in ascending order and keyed by their 8 hex digit form. Text values held as raw
// bytes are decoded using the Specific Character Set of the enclosing data set.
func Replay(ds *DataSet, h EventHandler, opts ...ReplayOption) (interface{}, error) {
	h.StartObject()
	if err := replayDataSet(ds, h, nil, opts); err != nil {
		return nil, err
	}
	return h.Pop()
}

func replayDataSet(ds *DataSet, h EventHandler, terms []string, opts []ReplayOption) error {
	if e, ok := ds.Elements[SpecificCharacterSetTag]; ok {
		t, err := e.StringValues()
		if err != nil {
			return fmt.Errorf("reading specific character set: %w", err)
		}
		if len(t) > 0 {
			terms = t
		}
	}

	for _, tag := range ds.SortedTags() {
		elem, err := applyOptions(ds.Elements[tag], opts)
		if err != nil {
			return err
		}
		if elem == nil { // option wants to filter this element out
			continue
		}
		if err := replayElement(elem, h, terms, opts); err != nil {
			return fmt.Errorf("replaying %v: %w", tag, err)
		}
	}
	return nil
}

func applyOptions(element *DataElement, opts []ReplayOption) (*DataElement, error) {
	var err error
	for i, opt := range opts {
		element, err = opt.transform(element)
		if err != nil {
			return nil, fmt.Errorf("applying option %v: %w", i, err)
		}
		if element == nil {
			return nil, nil
		}
	}
	return element, nil
}

func replayElement(elem *DataElement, h EventHandler, terms []string, opts []ReplayOption) error {
	vr := elem.VR
	if vr == nil {
		vr = elem.Tag.DictionaryVR()
	}
	seq, ok := elem.ValueField.(*Sequence)
	if (ok && !vr.IsSequence() && vr != UNVR) || (!ok && vr.IsSequence() && elem.ValueField != nil) {
		return fmt.Errorf("VR %v cannot hold a value of type %T", vr.Name, elem.ValueField)
	}
	if err := h.AddTag(elem.Tag.Hex(), &TagInfo{VR: vr.Name}); err != nil {
		return err
	}

	if ok {
		for i, item := range seq.Items {
			h.StartObject()
			if err := replayDataSet(item, h, terms, opts); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			if _, err := h.Pop(); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		_, err := h.Pop()
		return err
	}

	values, err := elementValues(elem.ValueField, vr, terms)
	if err != nil {
		return err
	}
	_, err = h.Values(values)
	return err
}

func elementValues(field interface{}, vr *VR, terms []string) ([]interface{}, error) {
	switch v := field.(type) {
	case nil:
		return nil, nil
	case []string:
		return toValues(v), nil
	case []byte:
		if !vr.IsText() {
			return []interface{}{v}, nil
		}
		text, err := DecodeText(v, terms...)
		if err != nil {
			return nil, err
		}
		return toValues(splitText(text, vr)), nil
	case [][]byte:
		return toValues(v), nil
	case []int16:
		return toValues(v), nil
	case []uint16:
		return toValues(v), nil
	case []int32:
		return toValues(v), nil
	case []uint32:
		return toValues(v), nil
	case []int64:
		return toValues(v), nil
	case []uint64:
		return toValues(v), nil
	case []float32:
		return toValues(v), nil
	case []float64:
		return toValues(v), nil
	case []BulkDataReference:
		return toValues(v), nil
	}
	return nil, fmt.Errorf("unsupported type for ValueField: %T", field)
}

func toValues[T any](s []T) []interface{} {
	values := make([]interface{}, len(s))
	for i := range s {
		values[i] = s[i]
	}
	return values
}

// splitText deals with value multiplicity and padding of decoded text
func splitText(text string, vr *VR) []string {
	if text == "" {
		return []string{}
	}

	isPadding := unicode.IsSpace
	if vr == UIVR {
		isPadding = func(r rune) bool { return r == 0x00 || r == ' ' }
	}

	// UT, ST and LT do not support multiple values and only trailing padding is insignificant
	if vr == UTVR || vr == STVR || vr == LTVR || vr == URVR {
		return []string{strings.TrimRightFunc(text, isPadding)}
	}

	strs := strings.Split(text, "\\")
	for i, s := range strs {
		strs[i] = strings.TrimFunc(s, isPadding)
	}
	return strs
}
