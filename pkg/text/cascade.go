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

package text

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrCascade is returned by CheckCascades when a rule feeds a later rule
// that did not ask for it
var ErrCascade = errors.New("unintended cascading rule")

// OverlapKind says how a replacement can satisfy a later pattern
type OverlapKind int

const (
	OverlapNone     OverlapKind = iota
	OverlapContains             // replacement contains the whole pattern
	OverlapWithin               // pattern contains the whole replacement
)

func (k OverlapKind) String() string {
	switch k {
	case OverlapContains:
		return "contains"
	case OverlapWithin:
		return "within"
	default:
		return "none"
	}
}

// 🌊 Cascade describes a later rule whose pattern can be satisfied by text an
// earlier rule introduced
type Cascade struct {
	From     int         // index of the producing rule
	To       int         // index of the consuming rule
	Kind     OverlapKind // how the texts overlap
	Intended bool        // consuming rule is marked Cascade
}

func (c Cascade) String() string {
	kind := "unintended"
	if c.Intended {
		kind = "intended"
	}
	return fmt.Sprintf("rule %d feeds rule %d (%s, %s)", c.From, c.To, c.Kind, kind)
}

// FindCascades lists every (i, j), i < j, where text produced by rules[i]
// can take part in a match of rules[j]
func FindCascades(rules RuleSet) []Cascade {
	var out []Cascade
	for i, from := range rules {
		if from.Old == "" || from.New == "" {
			continue
		}
		for j := i + 1; j < len(rules); j++ {
			to := rules[j]
			if to.Old == "" {
				continue
			}
			kind := overlap(from.New, to.Old)
			if kind == OverlapNone {
				continue
			}
			out = append(out, Cascade{From: i, To: j, Kind: kind, Intended: to.Cascade})
		}
	}
	return out
}

// overlap reports whether produced can contribute to a match of pattern.
// Partial runs at the edges are ignored; class names are whole tokens.
func overlap(produced, pattern string) OverlapKind {
	switch {
	case strings.Contains(produced, pattern):
		return OverlapContains
	case strings.Contains(pattern, produced):
		return OverlapWithin
	default:
		return OverlapNone
	}
}

// CheckCascades returns ErrCascade for the first unintended cascade
func CheckCascades(rules RuleSet) error {
	for _, c := range FindCascades(rules) {
		if c.Intended {
			continue
		}
		return errors.Errorf("%w: %s: %q produces %q", ErrCascade, c, rules[c.From].New, rules[c.To].Old)
	}
	return nil
}
