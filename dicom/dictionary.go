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
	"io"

	"github.com/BurntSushi/toml"
)

// VM is a Value Multiplicity as written in the data dictionary, e.g. "1", "2", "1-n", "2-2n".
// The empty VM means the multiplicity is unknown.
type VM string

// IsSingle is true if and only if the VM allows exactly one value
func (vm VM) IsSingle() bool {
	return vm == "1"
}

// Known is false for the empty VM
func (vm VM) Known() bool {
	return vm != ""
}

// DictionaryEntry describes one attribute of a data dictionary
type DictionaryEntry struct {
	Tag  DataElementTag
	VR   *VR
	VM   VM
	Name string
}

// TagInfo overrides dictionary information for a single occurrence of a tag. Zero fields are not
// overridden.
type TagInfo struct {
	VR   string
	VM   VM
	Name string
}

// Dictionary is a read-only lookup of attribute information. Implementations must be safe for
// concurrent use once constructed.
type Dictionary interface {
	// Lookup returns the entry for id, which is either a tag in one of the forms accepted by
	// ParseTag or an attribute keyword such as "PatientName".
	Lookup(id string) (DictionaryEntry, bool)
}

type repeatingEntry struct {
	mask  uint32
	entry DictionaryEntry
}

// MapDictionary is a Dictionary backed by maps. It is not safe to Add entries concurrently with
// lookups.
type MapDictionary struct {
	byTag     map[DataElementTag]DictionaryEntry
	byName    map[string]DictionaryEntry
	repeating []repeatingEntry

	// standard enables the implicit private creator and group length entries
	standard bool
}

// NewMapDictionary returns a dictionary holding the given entries
func NewMapDictionary(entries ...DictionaryEntry) *MapDictionary {
	d := &MapDictionary{
		byTag:  map[DataElementTag]DictionaryEntry{},
		byName: map[string]DictionaryEntry{},
	}
	for _, e := range entries {
		d.Add(e)
	}
	return d
}

// Add inserts or replaces the entry for e.Tag
func (d *MapDictionary) Add(e DictionaryEntry) {
	d.byTag[e.Tag] = e
	if e.Name != "" {
		d.byName[e.Name] = e
	}
}

func (d *MapDictionary) addRepeating(mask uint32, e DictionaryEntry) {
	d.repeating = append(d.repeating, repeatingEntry{mask, e})
	if e.Name != "" {
		d.byName[e.Name] = e
	}
}

// Lookup implements Dictionary
func (d *MapDictionary) Lookup(id string) (DictionaryEntry, bool) {
	if tag, err := ParseTag(id); err == nil {
		return d.LookupTag(tag)
	}
	e, ok := d.byName[id]
	return e, ok
}

// LookupTag returns the entry for tag. An exact entry takes precedence over a repeating group
// entry such as (60xx,3000).
func (d *MapDictionary) LookupTag(tag DataElementTag) (DictionaryEntry, bool) {
	if e, ok := d.byTag[tag]; ok {
		return e, true
	}
	for _, r := range d.repeating {
		if tag.IsPrivate() {
			break
		}
		if DataElementTag(uint32(tag)&r.mask) == r.entry.Tag {
			e := r.entry
			e.Tag = tag
			return e, true
		}
	}
	if !d.standard {
		return DictionaryEntry{}, false
	}
	if tag.IsGroupLength() {
		return DictionaryEntry{tag, ULVR, "1", "GenericGroupLength"}, true
	}
	if tag.IsPrivateCreator() {
		return DictionaryEntry{tag, LOVR, "1", "PrivateCreator"}, true
	}
	return DictionaryEntry{}, false
}

// Len returns the number of exact and repeating entries
func (d *MapDictionary) Len() int {
	return len(d.byTag) + len(d.repeating)
}

type overlay []Dictionary

// Overlay returns a Dictionary that consults dicts in order and returns the first match.
func Overlay(dicts ...Dictionary) Dictionary {
	return overlay(dicts)
}

func (o overlay) Lookup(id string) (DictionaryEntry, bool) {
	for _, d := range o {
		if e, ok := d.Lookup(id); ok {
			return e, true
		}
	}
	return DictionaryEntry{}, false
}

type dictionaryFile struct {
	Entries []struct {
		Tag  string `toml:"tag"`
		VR   string `toml:"vr"`
		VM   string `toml:"vm"`
		Name string `toml:"name"`
	} `toml:"entry"`
}

// LoadDictionary reads a dictionary in TOML form:
//
//	[[entry]]
//	tag = "00091001"
//	vr = "LO"
//	vm = "1"
//	name = "VendorSeriesLabel"
func LoadDictionary(r io.Reader) (*MapDictionary, error) {
	var f dictionaryFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}

	d := NewMapDictionary()
	for i, raw := range f.Entries {
		tag, err := ParseTag(raw.Tag)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		vr, err := LookupVR(raw.VR)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%v): %w", i, tag, err)
		}
		d.Add(DictionaryEntry{Tag: tag, VR: vr, VM: VM(raw.VM), Name: raw.Name})
	}
	return d, nil
}
