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

// Tags referenced by name within this package. Repeating group tags such as (50xx,3000) are
// stored with the x's set to 0.
const (
	FileMetaInformationGroupLengthTag DataElementTag = 0x00020000
	FileMetaInformationVersionTag     DataElementTag = 0x00020001
	MediaStorageSOPClassUIDTag        DataElementTag = 0x00020002
	MediaStorageSOPInstanceUIDTag     DataElementTag = 0x00020003
	TransferSyntaxUIDTag              DataElementTag = 0x00020010
	SpecificCharacterSetTag           DataElementTag = 0x00080005
	ImageTypeTag                      DataElementTag = 0x00080008
	SOPClassUIDTag                    DataElementTag = 0x00080016
	SOPInstanceUIDTag                 DataElementTag = 0x00080018
	ModalityTag                       DataElementTag = 0x00080060
	ReferencedStudySequenceTag        DataElementTag = 0x00081110
	ReferencedImageSequenceTag        DataElementTag = 0x00081140
	ReferencedSOPClassUIDTag          DataElementTag = 0x00081150
	ReferencedSOPInstanceUIDTag       DataElementTag = 0x00081155
	PatientNameTag                    DataElementTag = 0x00100010
	PatientIDTag                      DataElementTag = 0x00100020
	ImagePositionPatientTag           DataElementTag = 0x00200032
	RowsTag                           DataElementTag = 0x00280010
	ColumnsTag                        DataElementTag = 0x00280011
	PixelSpacingTag                   DataElementTag = 0x00280030
	WindowCenterTag                   DataElementTag = 0x00281050
	PixelDataProviderURLTag           DataElementTag = 0x00287FE0
	EncapsulatedDocumentTag           DataElementTag = 0x00420011
	AudioSampleDataTag                DataElementTag = 0x5000200C
	CurveDataTag                      DataElementTag = 0x50003000
	WaveformDataTag                   DataElementTag = 0x54001010
	SpectroscopyDataTag               DataElementTag = 0x56000020
	OverlayDataTag                    DataElementTag = 0x60003000
	FloatPixelDataTag                 DataElementTag = 0x7FE00008
	DoubleFloatPixelDataTag           DataElementTag = 0x7FE00009
	PixelDataTag                      DataElementTag = 0x7FE00010
	ItemTag                           DataElementTag = 0xFFFEE000
	ItemDelimitationItemTag           DataElementTag = 0xFFFEE00D
	SequenceDelimitationItemTag       DataElementTag = 0xFFFEE0DD
)
