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

// Package server exposes metadata tree conversion over HTTP.
//
//	POST /v1/convert?form=natural   DICOM JSON document in, converted tree(s) out
//	GET  /v1/bulkdata/{id}          payload deferred during a conversion
//	GET  /healthz                   liveness
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/bulkdata"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicomjson"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/metadata"
)

// BulkDataPath is the path prefix under which deferred payloads are served
const BulkDataPath = "/v1/bulkdata/"

// maxDocumentSize bounds the size of a converted document
const maxDocumentSize = 64 << 20

// Config configures the handler returned by New
type Config struct {
	// Form is used when a request has no form parameter
	Form       string
	Dictionary dicom.Dictionary

	// Store receives bulk data payloads. When nil, payloads stay in the converted tree.
	Store     bulkdata.Store
	Threshold int

	Logger *log.Logger
}

type server struct {
	cfg Config
}

// New returns the HTTP handler of the conversion service
func New(cfg Config) http.Handler {
	if cfg.Dictionary == nil {
		cfg.Dictionary = dicom.StandardDictionary
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &server{cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	r.Post("/v1/convert", s.convert)
	r.Get(BulkDataPath+"{id}", s.bulkData)
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.cfg.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

func (s *server) convert(w http.ResponseWriter, r *http.Request) {
	form := r.URL.Query().Get("form")
	if form == "" {
		form = s.cfg.Form
	}
	f, err := metadata.FactoryForForm(form)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.cfg.Store != nil {
		f = bulkdata.Defer(r.Context(), s.cfg.Store, f,
			bulkdata.WithThreshold(s.cfg.Threshold),
			bulkdata.WithURIPrefix(BulkDataPath))
	}

	body := http.MaxBytesReader(w, r.Body, maxDocumentSize)
	tree, err := dicomjson.Convert(body, form,
		metadata.WithFactory(f),
		metadata.WithDictionary(s.cfg.Dictionary),
		metadata.WithLogger(s.cfg.Logger))
	if err != nil {
		s.cfg.Logger.Warn("conversion failed", "form", form, "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	contentType := "application/json"
	if form == "" || strings.EqualFold(form, "standard") {
		contentType = "application/dicom+json"
	}
	w.Header().Set("Content-Type", contentType)
	if err := json.NewEncoder(w).Encode(tree); err != nil {
		s.cfg.Logger.Error("encoding response", "err", err)
	}
}

func (s *server) bulkData(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store == nil {
		http.NotFound(w, r)
		return
	}
	data, err := s.cfg.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, bulkdata.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.cfg.Logger.Error("reading bulk data", "err", err)
		http.Error(w, "reading bulk data", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}
