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
	"fmt"
	"sort"
	"strings"
)

var forms = map[string]ContextFactory{
	"standard": Standard,
	"natural":  Natural,
	"normal":   Normal,
}

// FactoryForForm returns the ContextFactory of a named output form: "standard", "natural" or
// "normal". Names are case insensitive and the empty name selects "standard".
func FactoryForForm(name string) (ContextFactory, error) {
	if name == "" {
		return Standard, nil
	}
	f, ok := forms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown form %q, expected one of %v", name, FormNames())
	}
	return f, nil
}

// FormNames lists the names accepted by FactoryForForm
func FormNames() []string {
	names := make([]string, 0, len(forms))
	for name := range forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
