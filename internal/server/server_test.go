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

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/bulkdata"
)

const document = `{
  "00080060": {"vr": "CS", "Value": ["MR"]},
  "00280010": {"vr": "US", "Value": [2]},
  "7FE00010": {"vr": "OW", "InlineBinary": "AAECAw=="}
}`

func newTestServer(t *testing.T, cfg Config) *httptest.Server {
	t.Helper()
	cfg.Logger = log.New(io.Discard)
	srv := httptest.NewServer(New(cfg))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, "application/dicom+json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %v => %v", url, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response => %v", err)
	}
	return resp, b
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, Config{})

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz => %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %v, want %v", resp.StatusCode, http.StatusOK)
	}
}

func TestConvert_Natural(t *testing.T) {
	srv := newTestServer(t, Config{Form: "standard"})

	resp, body := post(t, srv.URL+"/v1/convert?form=natural", document)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %v, want %v: %s", resp.StatusCode, http.StatusOK, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("got Content-Type %q, want application/json", ct)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("json.Unmarshal(_) => %v", err)
	}
	want := map[string]interface{}{
		"Modality":  "MR",
		"Rows":      2.0,
		"PixelData": "AAECAw==",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_DefaultFormIsStandard(t *testing.T) {
	srv := newTestServer(t, Config{})

	resp, body := post(t, srv.URL+"/v1/convert", document)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %v, want %v: %s", resp.StatusCode, http.StatusOK, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/dicom+json" {
		t.Errorf("got Content-Type %q, want application/dicom+json", ct)
	}

	var got, want interface{}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("json.Unmarshal(_) => %v", err)
	}
	if err := json.Unmarshal([]byte(document), &want); err != nil {
		t.Fatalf("json.Unmarshal(document) => %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_BulkDataIsServed(t *testing.T) {
	store := bulkdata.NewMemoryStore()
	srv := newTestServer(t, Config{Store: store})

	resp, body := post(t, srv.URL+"/v1/convert", document)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %v, want %v: %s", resp.StatusCode, http.StatusOK, body)
	}

	var got map[string]struct {
		BulkDataURI string
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("json.Unmarshal(_) => %v", err)
	}
	uri := got["7FE00010"].BulkDataURI
	if !strings.HasPrefix(uri, BulkDataPath) {
		t.Fatalf("got BulkDataURI %q, want prefix %v", uri, BulkDataPath)
	}

	bulk, err := http.Get(srv.URL + uri)
	if err != nil {
		t.Fatalf("GET %v => %v", uri, err)
	}
	defer bulk.Body.Close()
	payload, err := io.ReadAll(bulk.Body)
	if err != nil {
		t.Fatalf("reading bulk data => %v", err)
	}
	if want := []byte{0, 1, 2, 3}; !bytes.Equal(payload, want) {
		t.Fatalf("got payload %v, want %v", payload, want)
	}
}

func TestBulkData_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		store bulkdata.Store
	}{
		{
			name: "Without a store every payload is missing.",
		},
		{
			name:  "Unknown ids are missing.",
			store: bulkdata.NewMemoryStore(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, Config{Store: tc.store})
			resp, err := http.Get(srv.URL + BulkDataPath + "missing")
			if err != nil {
				t.Fatalf("GET => %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				t.Fatalf("got status %v, want %v", resp.StatusCode, http.StatusNotFound)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		body   string
		status int
	}{
		{
			name:   "Unknown forms are bad requests.",
			query:  "?form=pretty",
			body:   document,
			status: http.StatusBadRequest,
		},
		{
			name:   "Malformed documents cannot be processed.",
			body:   `{"00080060": [`,
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := newTestServer(t, Config{})
			resp, _ := post(t, srv.URL+"/v1/convert"+tc.query, tc.body)
			if resp.StatusCode != tc.status {
				t.Fatalf("got status %v, want %v", resp.StatusCode, tc.status)
			}
		})
	}
}
