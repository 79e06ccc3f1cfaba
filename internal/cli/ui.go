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
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTag     = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleName    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleMissing = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func printEntry(w io.Writer, tag, name, vr, vm string) {
	fmt.Fprintf(w, "%s %s %s\n",
		styleTag.Render(tag),
		styleName.Render(name),
		styleDim.Render(fmt.Sprintf("VR=%s VM=%s", vr, vm)))
}

func printMissing(w io.Writer, id string) {
	fmt.Fprintln(w, styleMissing.Render("! "+id+" is not in the dictionary"))
}
