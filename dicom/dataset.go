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
	"sort"
	"strconv"
	"strings"
)

// DataElementTag is a unique identifier for a Data Element composed of an unordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number.
type DataElementTag uint32

// ParseTag parses a tag written either as 8 hex digits ("00100010") or in the
// "(gggg,eeee)" / "gggg,eeee" notation.
func ParseTag(s string) (DataElementTag, error) {
	t := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	t = strings.Replace(t, ",", "", 1)
	if len(t) != 8 {
		return 0, fmt.Errorf("invalid tag %q: want 8 hex digits", s)
	}
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: %v", s, err)
	}
	return DataElementTag(v), nil
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsPrivate is true if the group number is odd
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// IsPrivateCreator is true for the private creator elements (gggg,0010-00FF) of an odd group
func (t DataElementTag) IsPrivateCreator() bool {
	return t.IsPrivate() && t.ElementNumber() >= 0x0010 && t.ElementNumber() <= 0x00FF
}

// IsGroupLength is true for group length elements (gggg,0000)
func (t DataElementTag) IsGroupLength() bool {
	return t.ElementNumber() == 0
}

func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

// Hex returns the tag as 8 upper case hex digits, the form used for attribute keys in the
// DICOM JSON model.
func (t DataElementTag) Hex() string {
	return fmt.Sprintf("%08X", uint32(t))
}

// DictionaryVR returns the VR of the tag in the standard data dictionary, or UNVR if the tag is
// not in the dictionary.
func (t DataElementTag) DictionaryVR() *VR {
	if e, ok := StandardDictionary.LookupTag(t); ok && e.VR != nil {
		return e.VR
	}
	return UNVR
}

// DataElement models a DICOM Data Element as defined in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataElement struct {
	Tag DataElementTag

	// Value Representation
	VR *VR

	// ValueField represents the field within a Data Element that contains its value(s)
	// Can be any of of the following types:
	// []string,
	// []byte
	// [][]byte
	// []int16,
	// []uint16,
	// []int32,
	// []uint32,
	// []float32,
	// []float64
	// []BulkDataReference
	// *Sequence
	ValueField interface{}
}

func (e *DataElement) String() string {
	return e.string(0)
}

func (e *DataElement) string(indentLvl int) string {
	prefix := strings.Repeat(">", indentLvl) + e.Tag.String() + " " + e.VR.Name
	if seq, ok := e.ValueField.(*Sequence); ok {
		return prefix + seq.string(indentLvl)
	}
	return fmt.Sprintf("%s %v", prefix, e.ValueField)
}

// StringValues returns the values of a text DataElement. Raw bytes are split on the value
// delimiter without character set decoding, which suits code string elements such as
// Specific Character Set.
func (e *DataElement) StringValues() ([]string, error) {
	switch v := e.ValueField.(type) {
	case []string:
		return v, nil
	case []byte:
		vr := e.VR
		if vr == nil {
			vr = e.Tag.DictionaryVR()
		}
		if !vr.IsText() {
			return nil, fmt.Errorf("VR %v does not hold text", vr.Name)
		}
		return splitText(string(v), vr), nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("wrong type for ValueField: got %T, want []string or []byte", e.ValueField)
}

// DataSet models a DICOM Data Set as defined
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10
type DataSet struct {
	// Elements is a map of DataElement tags to *DataElement
	Elements map[DataElementTag]*DataElement
}

// NewDataSet builds a DataSet from tag/value pairs, taking each VR from the data dictionary.
func NewDataSet(elements map[DataElementTag]interface{}) *DataSet {
	ds := &DataSet{Elements: map[DataElementTag]*DataElement{}}
	for tag, v := range elements {
		ds.Elements[tag] = &DataElement{tag, tag.DictionaryVR(), v}
	}
	return ds
}

// SortedTags returns the tags of the DataSet in ascending order
func (ds *DataSet) SortedTags() []DataElementTag {
	tags := make([]DataElementTag, 0, len(ds.Elements))
	for tag := range ds.Elements {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func (ds *DataSet) String() string {
	return ds.string(0)
}

func (ds *DataSet) string(indentLvl int) string {
	lines := make([]string, 0, len(ds.Elements))
	for _, tag := range ds.SortedTags() {
		lines = append(lines, ds.Elements[tag].string(indentLvl))
	}
	return strings.Join(lines, "\n")
}
