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

// Package dicom provides the DICOM data model shared by the metadata tree builder: tags, VRs,
// the data dictionary and an in-memory DataSet.
//
// Converters consume DICOM content as a stream of events described by EventHandler. Replay emits
// the events of a DataSet; other packages emit them from other representations, such as the
// DICOM JSON model.
//
// The data dictionary maps tags to their VR, value multiplicity and keyword. StandardDictionary
// holds the attributes commonly needed for metadata, including repeating groups such as
// (60xx,3000). LoadDictionary reads additional, typically private, entries from TOML and Overlay
// combines dictionaries.
package dicom
