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

import "testing"

func TestDefaultBulkDataDefinition(t *testing.T) {
	tests := []struct {
		name string
		in   arithmeticSeq
		want bool
	}{
		{
			"Curve Data (50xx,3000) is bulk data",
			arithmeticSeq{0x50003000, 0x50FF3000, 0x00010000},
			true,
		},
		{
			"Overlay Data (60xx,3000) is bulk data",
			arithmeticSeq{OverlayDataTag, 0x60FF3000, 0x00010000},
			true,
		},
		{
			"Pixel data is bulk data (7FE0,0010) is bulk data",
			arithmeticSeq{PixelDataTag, PixelDataTag, 1},
			true,
		},
		{
			"Source Image IDs (0x0020,31xx) is not bulk data",
			arithmeticSeq{0x00203100, 0x002031FF, 1},
			false,
		},
		{
			"Patient Name is not bulk data",
			arithmeticSeq{PatientNameTag, PatientNameTag, 1},
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for tag := tc.in.start; tag <= tc.in.end; tag += tc.in.inc {
				got := DefaultBulkDataDefinition(tag)
				if got != tc.want {
					t.Fatalf("DefaultBulkDataDefinition(0x%08X) => %v, want %v", uint32(tag), got, tc.want)
				}
			}
		})
	}
}

func TestBulkDataReference_String(t *testing.T) {
	if got, want := (BulkDataReference{URI: "bulk/1"}).String(), "bulk/1"; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
