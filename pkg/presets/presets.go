// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package presets holds the built-in theme rule sets.
package presets

import (
	"sort"

	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrUnknownPreset is returned by Get for a name with no preset
var ErrUnknownPreset = errors.New("unknown preset")

// 🎨 Preset is a named rule set with its conditional subsets and report
type Preset struct {
	Name         string
	Description  string
	Rules        text.RuleSet
	Conditionals []selector.Conditional
	Message      string // printed after the job finishes
	CountMarker  string // occurrences reported after the job finishes
}

var registry = map[string]func() Preset{
	Brighten:    brighten,
	Translucent: translucent,
}

// Get returns a fresh copy of the named preset
func Get(name string) (Preset, error) {
	fn, ok := registry[name]
	if !ok {
		return Preset{}, errors.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

// Names lists the registered presets in lexical order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
