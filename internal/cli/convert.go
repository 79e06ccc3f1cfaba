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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GoogleCloudPlatform/go-dicom-metadata/dicomjson"
	"github.com/GoogleCloudPlatform/go-dicom-metadata/metadata"
)

type convertOptions struct {
	form      string
	format    string
	output    string
	bulkStore string
	bulkDir   string
}

func (a *app) newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a DICOM JSON document into a metadata tree",
		Long: `Convert reads a DICOM JSON data set, or an array of data sets, from file or standard input
and writes its metadata tree in the chosen form.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			if opts.output != "" {
				f, err := os.Create(opts.output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return a.runConvert(cmd, in, out, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.form, "form", "f", "", "output form: standard, natural or normal (default from config)")
	cmd.Flags().StringVar(&opts.format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.bulkStore, "bulk-store", "", "bulk data store: none, memory, file or redis (default from config)")
	cmd.Flags().StringVar(&opts.bulkDir, "bulk-dir", "", "directory of the file bulk data store")

	return cmd
}

func (a *app) runConvert(cmd *cobra.Command, in io.Reader, out io.Writer, opts convertOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := a.cfg
	if opts.bulkStore != "" {
		cfg.Bulk.Store = opts.bulkStore
	}
	if opts.bulkDir != "" {
		cfg.Bulk.Dir = opts.bulkDir
	}

	encode, err := encoderFor(opts.format, out)
	if err != nil {
		return err
	}
	dict, err := cfg.dictionary()
	if err != nil {
		return err
	}
	store, err := cfg.Bulk.openStore(ctx)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}
	f, err := cfg.factory(ctx, opts.form, store)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	tree, err := dicomjson.Convert(in, opts.form,
		metadata.WithFactory(f),
		metadata.WithDictionary(dict),
		metadata.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}
	prog.done("converted", "form", formName(opts.form, cfg.Form))

	return encode(tree)
}

func formName(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

func encoderFor(format string, w io.Writer) (func(interface{}) error, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode, nil
	case "yaml":
		return func(v interface{}) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q, expected json or yaml", format)
}
