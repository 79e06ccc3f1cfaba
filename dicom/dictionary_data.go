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

// StandardDictionary holds a subset of the DICOM data dictionary from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html.
// When the standard lists several VRs for an attribute (e.g. "OB or OW") the last one is used.
var StandardDictionary = newStandardDictionary()

func newStandardDictionary() *MapDictionary {
	d := NewMapDictionary(
		DictionaryEntry{FileMetaInformationGroupLengthTag, ULVR, "1", "FileMetaInformationGroupLength"},
		DictionaryEntry{FileMetaInformationVersionTag, OBVR, "1", "FileMetaInformationVersion"},
		DictionaryEntry{MediaStorageSOPClassUIDTag, UIVR, "1", "MediaStorageSOPClassUID"},
		DictionaryEntry{MediaStorageSOPInstanceUIDTag, UIVR, "1", "MediaStorageSOPInstanceUID"},
		DictionaryEntry{TransferSyntaxUIDTag, UIVR, "1", "TransferSyntaxUID"},
		DictionaryEntry{0x00020012, UIVR, "1", "ImplementationClassUID"},
		DictionaryEntry{0x00020013, SHVR, "1", "ImplementationVersionName"},
		DictionaryEntry{SpecificCharacterSetTag, CSVR, "1-n", "SpecificCharacterSet"},
		DictionaryEntry{ImageTypeTag, CSVR, "2-n", "ImageType"},
		DictionaryEntry{0x00080012, DAVR, "1", "InstanceCreationDate"},
		DictionaryEntry{0x00080013, TMVR, "1", "InstanceCreationTime"},
		DictionaryEntry{SOPClassUIDTag, UIVR, "1", "SOPClassUID"},
		DictionaryEntry{SOPInstanceUIDTag, UIVR, "1", "SOPInstanceUID"},
		DictionaryEntry{0x00080020, DAVR, "1", "StudyDate"},
		DictionaryEntry{0x00080021, DAVR, "1", "SeriesDate"},
		DictionaryEntry{0x00080022, DAVR, "1", "AcquisitionDate"},
		DictionaryEntry{0x00080023, DAVR, "1", "ContentDate"},
		DictionaryEntry{0x00080030, TMVR, "1", "StudyTime"},
		DictionaryEntry{0x00080031, TMVR, "1", "SeriesTime"},
		DictionaryEntry{0x00080032, TMVR, "1", "AcquisitionTime"},
		DictionaryEntry{0x00080033, TMVR, "1", "ContentTime"},
		DictionaryEntry{0x00080050, SHVR, "1", "AccessionNumber"},
		DictionaryEntry{ModalityTag, CSVR, "1", "Modality"},
		DictionaryEntry{0x00080061, CSVR, "1-n", "ModalitiesInStudy"},
		DictionaryEntry{0x00080070, LOVR, "1", "Manufacturer"},
		DictionaryEntry{0x00080080, LOVR, "1", "InstitutionName"},
		DictionaryEntry{0x00080090, PNVR, "1", "ReferringPhysicianName"},
		DictionaryEntry{0x00081030, LOVR, "1", "StudyDescription"},
		DictionaryEntry{0x0008103E, LOVR, "1", "SeriesDescription"},
		DictionaryEntry{0x00081090, LOVR, "1", "ManufacturerModelName"},
		DictionaryEntry{ReferencedStudySequenceTag, SQVR, "1", "ReferencedStudySequence"},
		DictionaryEntry{0x00081115, SQVR, "1", "ReferencedSeriesSequence"},
		DictionaryEntry{ReferencedImageSequenceTag, SQVR, "1", "ReferencedImageSequence"},
		DictionaryEntry{ReferencedSOPClassUIDTag, UIVR, "1", "ReferencedSOPClassUID"},
		DictionaryEntry{ReferencedSOPInstanceUIDTag, UIVR, "1", "ReferencedSOPInstanceUID"},
		DictionaryEntry{0x00082112, SQVR, "1", "SourceImageSequence"},
		DictionaryEntry{PatientNameTag, PNVR, "1", "PatientName"},
		DictionaryEntry{PatientIDTag, LOVR, "1", "PatientID"},
		DictionaryEntry{0x00100030, DAVR, "1", "PatientBirthDate"},
		DictionaryEntry{0x00100040, CSVR, "1", "PatientSex"},
		DictionaryEntry{0x00101001, PNVR, "1-n", "OtherPatientNames"},
		DictionaryEntry{0x00101010, ASVR, "1", "PatientAge"},
		DictionaryEntry{0x00101020, DSVR, "1", "PatientSize"},
		DictionaryEntry{0x00101030, DSVR, "1", "PatientWeight"},
		DictionaryEntry{0x00180015, CSVR, "1", "BodyPartExamined"},
		DictionaryEntry{0x00180050, DSVR, "1", "SliceThickness"},
		DictionaryEntry{0x00180060, DSVR, "1", "KVP"},
		DictionaryEntry{0x00180088, DSVR, "1", "SpacingBetweenSlices"},
		DictionaryEntry{0x00181020, LOVR, "1-n", "SoftwareVersions"},
		DictionaryEntry{0x00181151, ISVR, "1", "XRayTubeCurrent"},
		DictionaryEntry{0x00185100, CSVR, "1", "PatientPosition"},
		DictionaryEntry{0x0020000D, UIVR, "1", "StudyInstanceUID"},
		DictionaryEntry{0x0020000E, UIVR, "1", "SeriesInstanceUID"},
		DictionaryEntry{0x00200010, SHVR, "1", "StudyID"},
		DictionaryEntry{0x00200011, ISVR, "1", "SeriesNumber"},
		DictionaryEntry{0x00200012, ISVR, "1", "AcquisitionNumber"},
		DictionaryEntry{0x00200013, ISVR, "1", "InstanceNumber"},
		DictionaryEntry{0x00200020, CSVR, "2", "PatientOrientation"},
		DictionaryEntry{ImagePositionPatientTag, DSVR, "3", "ImagePositionPatient"},
		DictionaryEntry{0x00200037, DSVR, "6", "ImageOrientationPatient"},
		DictionaryEntry{0x00200052, UIVR, "1", "FrameOfReferenceUID"},
		DictionaryEntry{0x00201041, DSVR, "1", "SliceLocation"},
		DictionaryEntry{0x00204000, LTVR, "1", "ImageComments"},
		DictionaryEntry{0x00280002, USVR, "1", "SamplesPerPixel"},
		DictionaryEntry{0x00280004, CSVR, "1", "PhotometricInterpretation"},
		DictionaryEntry{0x00280008, ISVR, "1", "NumberOfFrames"},
		DictionaryEntry{RowsTag, USVR, "1", "Rows"},
		DictionaryEntry{ColumnsTag, USVR, "1", "Columns"},
		DictionaryEntry{PixelSpacingTag, DSVR, "2", "PixelSpacing"},
		DictionaryEntry{0x00280034, ISVR, "2", "PixelAspectRatio"},
		DictionaryEntry{0x00280100, USVR, "1", "BitsAllocated"},
		DictionaryEntry{0x00280101, USVR, "1", "BitsStored"},
		DictionaryEntry{0x00280102, USVR, "1", "HighBit"},
		DictionaryEntry{0x00280103, USVR, "1", "PixelRepresentation"},
		DictionaryEntry{WindowCenterTag, DSVR, "1-n", "WindowCenter"},
		DictionaryEntry{0x00281051, DSVR, "1-n", "WindowWidth"},
		DictionaryEntry{0x00281052, DSVR, "1", "RescaleIntercept"},
		DictionaryEntry{0x00281053, DSVR, "1", "RescaleSlope"},
		DictionaryEntry{0x00281054, LOVR, "1", "RescaleType"},
		DictionaryEntry{0x00283010, SQVR, "1", "VOILUTSequence"},
		DictionaryEntry{PixelDataProviderURLTag, URVR, "1", "PixelDataProviderURL"},
		DictionaryEntry{0x0040A730, SQVR, "1", "ContentSequence"},
		DictionaryEntry{EncapsulatedDocumentTag, OBVR, "1", "EncapsulatedDocument"},
		DictionaryEntry{0x00540016, SQVR, "1", "RadiopharmaceuticalInformationSequence"},
		DictionaryEntry{0x54000100, SQVR, "1", "WaveformSequence"},
		DictionaryEntry{WaveformDataTag, OWVR, "1", "WaveformData"},
		DictionaryEntry{SpectroscopyDataTag, OFVR, "1", "SpectroscopyData"},
		DictionaryEntry{FloatPixelDataTag, OFVR, "1", "FloatPixelData"},
		DictionaryEntry{DoubleFloatPixelDataTag, ODVR, "1", "DoubleFloatPixelData"},
		DictionaryEntry{PixelDataTag, OWVR, "1", "PixelData"},
	)

	// Repeating groups and elements. Entries hold the tag with the x's set to 0.
	d.addRepeating(0xFFFFFF00, DictionaryEntry{0x00203100, CSVR, "1-n", "SourceImageIDs"})
	d.addRepeating(0xFFFFFF0F, DictionaryEntry{0x00280400, USVR, "1", "RowsForNthOrderCoefficients"})
	d.addRepeating(0xFFFF000F, DictionaryEntry{0x10000000, USVR, "3", "EscapeTriplet"})
	d.addRepeating(0xFFFF000F, DictionaryEntry{0x10000001, USVR, "3", "RunLengthTriplet"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{AudioSampleDataTag, OWVR, "1", "AudioSampleData"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{CurveDataTag, OWVR, "1", "CurveData"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{0x60000010, USVR, "1", "OverlayRows"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{0x60000011, USVR, "1", "OverlayColumns"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{0x60000040, CSVR, "1", "OverlayType"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{0x60000050, SSVR, "2", "OverlayOrigin"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{OverlayDataTag, OWVR, "1", "OverlayData"})
	d.addRepeating(0xFF00FFFF, DictionaryEntry{0x7F000010, OWVR, "1", "VariablePixelData"})

	d.standard = true
	return d
}
