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
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/redis/go-redis/v9"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/bulkdata"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicom"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/metadata"
)

// Config is the content of the --config file
type Config struct {
	// Form is the output form: standard, natural or normal
	Form string `toml:"form"`

	// Dictionary is a TOML dictionary consulted before the built-in one
	Dictionary string `toml:"dictionary"`

	Bulk BulkConfig `toml:"bulk"`
}

// BulkConfig selects where bulk data payloads are written
type BulkConfig struct {
	// Store is one of none, memory, file or redis
	Store     string        `toml:"store"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	TTL       time.Duration `toml:"ttl"`
	Threshold int           `toml:"threshold"`
	URIPrefix string        `toml:"uri_prefix"`
}

// DefaultConfig returns the configuration used without a config file
func DefaultConfig() Config {
	return Config{
		Form: "standard",
		Bulk: BulkConfig{
			Store:     "none",
			RedisAddr: "localhost:6379",
		},
	}
}

// LoadConfig reads a TOML config file over DefaultConfig. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("reading config %v: unknown keys %v", path, strings.Join(keys, ", "))
	}
	if _, err := metadata.FactoryForForm(cfg.Form); err != nil {
		return Config{}, fmt.Errorf("reading config %v: %w", path, err)
	}
	return cfg, nil
}

// dictionary returns the built-in dictionary overlaid by the configured one
func (c Config) dictionary() (dicom.Dictionary, error) {
	if c.Dictionary == "" {
		return dicom.StandardDictionary, nil
	}
	f, err := os.Open(c.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	extra, err := dicom.LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %v: %w", c.Dictionary, err)
	}
	return dicom.Overlay(extra, dicom.StandardDictionary), nil
}

// openStore opens the configured bulk data store. It returns a nil Store when bulk data stays
// in the tree.
func (c BulkConfig) openStore(ctx context.Context) (bulkdata.Store, error) {
	switch strings.ToLower(c.Store) {
	case "", "none":
		return nil, nil
	case "memory":
		return bulkdata.NewMemoryStore(), nil
	case "file":
		if c.Dir == "" {
			return nil, fmt.Errorf("file store requires a directory")
		}
		return bulkdata.NewFileStore(c.Dir)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("connecting to redis at %v: %w", c.RedisAddr, err)
		}
		return bulkdata.NewRedisStore(client, "dcmtree:bulk:", c.TTL), nil
	}
	return nil, fmt.Errorf("unknown bulk data store %q", c.Store)
}

// factory returns the ContextFactory of the configured form, deferring bulk data to store when
// it is not nil
func (c Config) factory(ctx context.Context, form string, store bulkdata.Store) (metadata.ContextFactory, error) {
	if form == "" {
		form = c.Form
	}
	f, err := metadata.FactoryForForm(form)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return f, nil
	}
	return bulkdata.Defer(ctx, store, f,
		bulkdata.WithThreshold(c.Bulk.Threshold),
		bulkdata.WithURIPrefix(c.Bulk.URIPrefix)), nil
}
