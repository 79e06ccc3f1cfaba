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

package metadata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
)

func mustAddTag(t *testing.T, b *Builder, tag string, info *dicom.TagInfo) {
	t.Helper()
	if err := b.AddTag(tag, info); err != nil {
		t.Fatalf("AddTag(%q, _) => %v", tag, err)
	}
}

func mustValue(t *testing.T, b *Builder, vs ...interface{}) {
	t.Helper()
	for _, v := range vs {
		if err := b.Value(v); err != nil {
			t.Fatalf("Value(%v) => %v", v, err)
		}
	}
}

func mustValues(t *testing.T, b *Builder, vs ...interface{}) interface{} {
	t.Helper()
	got, err := b.Values(vs)
	if err != nil {
		t.Fatalf("Values(%v) => %v", vs, err)
	}
	return got
}

func mustPop(t *testing.T, b *Builder) interface{} {
	t.Helper()
	got, err := b.Pop()
	if err != nil {
		t.Fatalf("Pop() => %v", err)
	}
	return got
}

// warnLogger returns a logger that writes one line per warning to buf
func warnLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.WarnLevel})
}

func countLines(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "\n")
}
