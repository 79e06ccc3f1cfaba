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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStandardDictionary_Lookup(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want DictionaryEntry
	}{
		{
			"tags are looked up by their hex form",
			"00100010",
			DictionaryEntry{PatientNameTag, PNVR, "1", "PatientName"},
		},
		{
			"tags are looked up by their (gggg,eeee) form",
			"(0028,0010)",
			DictionaryEntry{RowsTag, USVR, "1", "Rows"},
		},
		{
			"tags are looked up by keyword",
			"ImageType",
			DictionaryEntry{ImageTypeTag, CSVR, "2-n", "ImageType"},
		},
		{
			"repeating group entries carry the looked up tag",
			"60023000",
			DictionaryEntry{0x60023000, OWVR, "1", "OverlayData"},
		},
		{
			"repeating group entries are found by keyword with the x's set to 0",
			"OverlayData",
			DictionaryEntry{OverlayDataTag, OWVR, "1", "OverlayData"},
		},
		{
			"private creators are LO",
			"00090010",
			DictionaryEntry{0x00090010, LOVR, "1", "PrivateCreator"},
		},
		{
			"group lengths are UL",
			"00080000",
			DictionaryEntry{0x00080000, ULVR, "1", "GenericGroupLength"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := StandardDictionary.Lookup(tc.id)
			if !ok {
				t.Fatalf("Lookup(%q) => not found", tc.id)
			}
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(VR{})); diff != "" {
				t.Fatalf("entry mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStandardDictionary_LookupMissing(t *testing.T) {
	for _, id := range []string{"00091001", "NoSuchKeyword", "ABCDEF98", ""} {
		if e, ok := StandardDictionary.Lookup(id); ok {
			t.Fatalf("Lookup(%q) => %v, want not found", id, e)
		}
	}
}

func TestMapDictionary_NoImplicitEntries(t *testing.T) {
	d := NewMapDictionary(DictionaryEntry{PatientIDTag, LOVR, "1", "PatientID"})
	if _, ok := d.Lookup("00090010"); ok {
		t.Fatalf("private creators are only implied by the standard dictionary")
	}
	if d.Len() != 1 {
		t.Fatalf("got %v entries, want 1", d.Len())
	}
}

const privateDictionary = `
[[entry]]
tag = "00091001"
vr = "LO"
vm = "1"
name = "VendorSeriesLabel"

[[entry]]
tag = "(0009,1002)"
vr = "DS"
vm = "1-n"
name = "VendorWeights"

[[entry]]
tag = "00100010"
vr = "LO"
vm = "1"
name = "AnonymizedName"
`

func TestLoadDictionary(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader(privateDictionary))
	if err != nil {
		t.Fatalf("LoadDictionary => %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("got %v entries, want 3", d.Len())
	}

	got, ok := d.Lookup("VendorWeights")
	if !ok {
		t.Fatalf("Lookup(VendorWeights) => not found")
	}
	want := DictionaryEntry{0x00091002, DSVR, "1-n", "VendorWeights"}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(VR{})); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDictionary_invalidCases(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"malformed TOML", `[[entry]`},
		{"invalid tag", "[[entry]]\ntag = \"0009\"\nvr = \"LO\""},
		{"unknown VR", "[[entry]]\ntag = \"00091001\"\nvr = \"XX\""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadDictionary(strings.NewReader(tc.in)); err == nil {
				t.Fatalf("expected error to be returned")
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	private, err := LoadDictionary(strings.NewReader(privateDictionary))
	if err != nil {
		t.Fatalf("LoadDictionary => %v", err)
	}
	d := Overlay(private, StandardDictionary)

	if e, _ := d.Lookup("00100010"); e.Name != "AnonymizedName" {
		t.Fatalf("earlier dictionaries take precedence: got %v", e.Name)
	}
	if e, _ := d.Lookup("VendorSeriesLabel"); e.Tag != 0x00091001 {
		t.Fatalf("got tag %v, want (0009,1001)", e.Tag)
	}
	if e, _ := d.Lookup("Rows"); e.Tag != RowsTag {
		t.Fatalf("later dictionaries are consulted on a miss: got %v", e.Tag)
	}
	if _, ok := d.Lookup("NoSuchKeyword"); ok {
		t.Fatalf("expected a miss")
	}
}

func TestVM(t *testing.T) {
	if !VM("1").IsSingle() || VM("1-n").IsSingle() || VM("").IsSingle() {
		t.Fatalf("only VM 1 is single")
	}
	if VM("").Known() || !VM("2-2n").Known() {
		t.Fatalf("only the empty VM is unknown")
	}
}
