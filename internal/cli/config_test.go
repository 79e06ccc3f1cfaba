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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/bulkdata"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %v => %v", path, err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "dcmtree.toml", `
form = "natural"
dictionary = "private.toml"

[bulk]
store = "file"
dir = "/tmp/bulk"
ttl = "1h"
threshold = 1024
uri_prefix = "bulk/"
`)

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%v) => %v", path, err)
	}
	want := Config{
		Form:       "natural",
		Dictionary: "private.toml",
		Bulk: BulkConfig{
			Store:     "file",
			Dir:       "/tmp/bulk",
			RedisAddr: "localhost:6379",
			TTL:       time.Hour,
			Threshold: 1024,
			URIPrefix: "bulk/",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Unknown keys are rejected.",
			content: `colour = "blue"`,
		},
		{
			name:    "Unknown forms are rejected.",
			content: `form = "pretty"`,
		},
		{
			name:    "Malformed TOML is rejected.",
			content: `form = `,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "dcmtree.toml", tc.content)
			if _, err := LoadConfig(path); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestConfig_Dictionary(t *testing.T) {
	path := writeFile(t, "private.toml", `
[[entry]]
tag = "00091001"
vr = "LO"
vm = "1"
name = "VendorSeriesLabel"
`)
	cfg := DefaultConfig()
	cfg.Dictionary = path

	dict, err := cfg.dictionary()
	if err != nil {
		t.Fatalf("dictionary() => %v", err)
	}
	for _, id := range []string{"VendorSeriesLabel", "00091001", "PatientName"} {
		if _, ok := dict.Lookup(id); !ok {
			t.Errorf("Lookup(%v) => not found", id)
		}
	}
}

func TestBulkConfig_OpenStore(t *testing.T) {
	ctx := context.Background()

	store, err := BulkConfig{Store: "none"}.openStore(ctx)
	if err != nil || store != nil {
		t.Errorf("openStore(none) => %v, %v, want nil store", store, err)
	}

	store, err = BulkConfig{Store: "memory"}.openStore(ctx)
	if _, ok := store.(*bulkdata.MemoryStore); err != nil || !ok {
		t.Errorf("openStore(memory) => %T, %v, want *bulkdata.MemoryStore", store, err)
	}

	store, err = BulkConfig{Store: "file", Dir: t.TempDir()}.openStore(ctx)
	if _, ok := store.(*bulkdata.FileStore); err != nil || !ok {
		t.Errorf("openStore(file) => %T, %v, want *bulkdata.FileStore", store, err)
	}

	for _, bad := range []BulkConfig{{Store: "file"}, {Store: "tape"}} {
		if _, err := bad.openStore(ctx); err == nil {
			t.Errorf("openStore(%+v) => expected error", bad)
		}
	}
}
