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
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newDictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dict <tag|keyword>...",
		Short: "Look up dictionary entries",
		Long: `Dict prints the VR, multiplicity and keyword of each tag or keyword, using the built-in
dictionary overlaid by the configured one. Tags are written as ggggeeee, gggg,eeee or (gggg,eeee).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.cfg.dictionary()
			if err != nil {
				return err
			}

			missing := 0
			for _, id := range args {
				e, ok := dict.Lookup(id)
				if !ok {
					printMissing(cmd.OutOrStdout(), id)
					missing++
					continue
				}
				vm := string(e.VM)
				if vm == "" {
					vm = "?"
				}
				printEntry(cmd.OutOrStdout(), e.Tag.String(), e.Name, e.VR.Name, vm)
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d entries not found", missing, len(args))
			}
			return nil
		},
	}
}
