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
	"testing"

	"github.com/google/go-cmp/cmp"
)

type arithmeticSeq struct {
	start DataElementTag
	end   DataElementTag
	inc   DataElementTag
}

func TestDataElementTag_String(t *testing.T) {
	got := ItemTag.String()
	want := "(FFFE,E000)"
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDataElementTag_Hex(t *testing.T) {
	if got, want := PatientNameTag.Hex(), "00100010"; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := DataElementTag(0x7FE0000A).Hex(), "7FE0000A"; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDataElementTag_ElementNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.ElementNumber() != 0xBA98 {
		t.Fatalf("got %v, want %v", tag.ElementNumber(), 0xBA98)
	}
}

func TestDataElementTag_GroupNumber(t *testing.T) {
	tag := DataElementTag(0xFEDCBA98)
	if tag.GroupNumber() != 0xFEDC {
		t.Fatalf("got %v, want %v", tag.GroupNumber(), 0xFEDC)
	}
}

func TestDataElementTag_IsPrivate(t *testing.T) {
	tests := []struct {
		name string
		tag  DataElementTag
		want bool
	}{
		{
			"when group number is odd, the tag is considered private",
			DataElementTag(0x00010000),
			true,
		},
		{
			"when group number is even, the tag is considered non-private",
			PixelDataTag,
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tag.IsPrivate()
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	for _, in := range []string{"00100010", "(0010,0010)", "0010,0010"} {
		got, err := ParseTag(in)
		if err != nil {
			t.Fatalf("ParseTag(%q) => unexpected error: %v", in, err)
		}
		if got != PatientNameTag {
			t.Fatalf("ParseTag(%q) => %v, want %v", in, got, PatientNameTag)
		}
	}
}

func TestParseTag_invalidCases(t *testing.T) {
	for _, in := range []string{"", "PatientName", "0010001", "001000100", "0010,00GG", "(00,10,0010)"} {
		if _, err := ParseTag(in); err == nil {
			t.Fatalf("ParseTag(%q) => expected error", in)
		}
	}
}

func TestDataElementTag_DictionaryVR(t *testing.T) {
	tests := []struct {
		name   string
		tagSet arithmeticSeq
		want   *VR
	}{
		{
			"Tags of the form (60xx,0010) have VR US",
			arithmeticSeq{0x60000010, 0x60FE0010, 0x00020000},
			USVR,
		},
		{
			"Tags without wildcard lookup",
			arithmeticSeq{ReferencedStudySequenceTag, ReferencedStudySequenceTag, 1},
			SQVR,
		},
		{
			"When the Tag has multiple associated VRs, the last one in the dictionary row is chosen",
			arithmeticSeq{PixelDataTag, PixelDataTag, 1},
			OWVR,
		},
		{
			"when lookup fails, UNVR is returned",
			arithmeticSeq{0xABCDEF98, 0xABCDEF98, 1},
			UNVR,
		},
		{
			"odd groups never match repeating group entries",
			arithmeticSeq{0x60013000, 0x60013000, 1},
			UNVR,
		},
		{
			"when the tag belongs to private creator group (gggg,0010-00FF) where gggg is odd, " +
				"the dictionary VR is LO",
			arithmeticSeq{0x80010010, 0x800100FF, 1},
			LOVR,
		},
		{
			"when the tag is a group length element (gggg,0000) the VR is UL",
			arithmeticSeq{0x00020000, 0x0FFF0000, 0x00010000},
			ULVR,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for tag := tc.tagSet.start; tag <= tc.tagSet.end; tag += tc.tagSet.inc {
				got := tag.DictionaryVR()
				if got != tc.want {
					t.Fatalf("%v: got %v, want %v", tag, got, tc.want)
				}
			}
		})
	}
}

func TestDataElement_String(t *testing.T) {
	item := NewDataSet(map[DataElementTag]interface{}{
		ReferencedSOPClassUIDTag: []string{"1.2.3"},
	})

	tests := []struct {
		name string
		in   *DataElement
		want string
	}{
		{
			"non-nested data element",
			&DataElement{FileMetaInformationGroupLengthTag, ULVR, []uint32{198}},
			"(0002,0000) UL [198]",
		},
		{
			"sequence data element",
			&DataElement{ReferencedStudySequenceTag, SQVR, NewSequence(item)},
			"(0008,1110) SQ\n>(0008,1150) UI [1.2.3]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.String()
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDataElement_StringValues(t *testing.T) {
	tests := []struct {
		name string
		elem *DataElement
		want []string
	}{
		{
			"decoded strings are returned as is",
			&DataElement{Tag: PatientNameTag, VR: PNVR, ValueField: []string{"A", "B"}},
			[]string{"A", "B"},
		},
		{
			"raw code strings are split and trimmed",
			&DataElement{Tag: SpecificCharacterSetTag, VR: CSVR, ValueField: []byte("\\ISO 2022 IR 87 ")},
			[]string{"", "ISO 2022 IR 87"},
		},
		{
			"raw bytes fall back to the dictionary VR",
			&DataElement{Tag: SpecificCharacterSetTag, ValueField: []byte("ISO_IR 192")},
			[]string{"ISO_IR 192"},
		},
		{
			"missing value",
			&DataElement{Tag: SpecificCharacterSetTag, VR: CSVR},
			nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.elem.StringValues()
			if err != nil {
				t.Fatalf("StringValues: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected values (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDataElement_StringValues_invalidCases(t *testing.T) {
	tests := []struct {
		name string
		elem *DataElement
	}{
		{"binary VR", &DataElement{Tag: PixelDataTag, VR: OBVR, ValueField: []byte{1}}},
		{"integers", &DataElement{Tag: RowsTag, VR: USVR, ValueField: []uint16{1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.elem.StringValues(); err == nil {
				t.Fatalf("expected error to be returned")
			}
		})
	}
}

func TestDataSet_SortedTags(t *testing.T) {
	ds := NewDataSet(map[DataElementTag]interface{}{
		PixelDataTag:         []byte{},
		PatientNameTag:       []string{"Doe^Jane"},
		SOPClassUIDTag:       []string{"1.2"},
		TransferSyntaxUIDTag: []string{"1.2.840.10008.1.2.1"},
	})

	want := []DataElementTag{TransferSyntaxUIDTag, SOPClassUIDTag, PatientNameTag, PixelDataTag}
	if diff := cmp.Diff(want, ds.SortedTags()); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
	if ds.Elements[PatientNameTag].VR != PNVR {
		t.Fatalf("NewDataSet should take the VR from the dictionary: got %v", ds.Elements[PatientNameTag].VR)
	}
}
