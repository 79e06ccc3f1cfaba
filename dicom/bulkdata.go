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

// BulkDataReference stands in for the value of a bulk data element. URI names the payload,
// which is stored out-of-band.
type BulkDataReference struct {
	URI string
}

func (r BulkDataReference) String() string {
	return r.URI
}

// bulkDataMasks handles all wildcards in the DICOM data dictionary. The value 0xFFFFFFFF is
// included in the list of masks for convenience since (tag & 0xFFFFFFFF) == tag
var bulkDataMasks = []uint32{0xFFFFFF00, 0xFFFFFF0F, 0xFFFF000F, 0xFFFF0000, 0xFF00FFFF, 0xFFFFFFFF}

// DefaultBulkDataDefinition returns true if and only if the tag corresponds to a data element
// that contains large non-metadata fields
func DefaultBulkDataDefinition(tag DataElementTag) bool {
	// Tags in the DICOM data dictionary have wildcards (e.g. tags like (gggg,eexx), (ggxx,eeee))
	// and are stored with the x's set to '0' in hex. For example the Curve Data tag is defined as
	// (50xx,3000) and CurveDataTag = 0x50003000, so a tag is of the form (50xx,3000) when
	// (tag & 0xFF00FFFF) == CurveDataTag.
	for _, m := range bulkDataMasks {
		switch DataElementTag(uint32(tag) & m) {
		case PixelDataProviderURLTag, AudioSampleDataTag, CurveDataTag, SpectroscopyDataTag,
			OverlayDataTag, EncapsulatedDocumentTag, FloatPixelDataTag, DoubleFloatPixelDataTag,
			PixelDataTag, WaveformDataTag:
			return true
		}
	}
	return false
}
