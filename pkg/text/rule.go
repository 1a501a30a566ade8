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
	"context"
	"fmt"
	"io"
)

// 🔄 Rule is a single literal replacement
type Rule struct {
	// Old is the literal text to find
	Old string `json:"old" yaml:"old" hcl:"old"`

	// New is the literal replacement
	New string `json:"new" yaml:"new" hcl:"new"`

	// Cascade marks a rule that is expected to match text produced by an
	// earlier rule in the same set
	Cascade bool `json:"cascade,omitempty" yaml:"cascade,omitempty" hcl:"cascade,optional"`
}

// String returns a short human readable form of the rule
func (r Rule) String() string {
	return fmt.Sprintf("%s → %s", abbreviate(r.Old), abbreviate(r.New))
}

// 📚 RuleSet is an ordered list of rules, each feeding the next
type RuleSet []Rule

// Concat returns a new set holding s followed by every set in others
func (s RuleSet) Concat(others ...RuleSet) RuleSet {
	n := len(s)
	for _, o := range others {
		n += len(o)
	}
	out := make(RuleSet, 0, n)
	out = append(out, s...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// RuleResult records how many times a single rule fired
type RuleResult struct {
	Rule  Rule
	Count int
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made across all rules
	ReplacementCount int

	// Rules holds one entry per applied rule, in order
	Rules []RuleResult

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Fired returns the number of rules that matched at least once
func (r *ReplacementResult) Fired() int {
	n := 0
	for _, rr := range r.Rules {
		if rr.Count > 0 {
			n++
		}
	}
	return n
}

// 🔌 Replacer applies rule sets to content
type Replacer interface {
	// ReplaceText applies the rules to the content in order
	ReplaceText(ctx context.Context, content io.Reader, rules RuleSet) (*ReplacementResult, error)

	// ValidateRules checks that all rules are usable
	ValidateRules(rules RuleSet) error
}

func abbreviate(s string) string {
	const max = 40
	r := []rune(s)
	for i, c := range r {
		if c == '\n' {
			return string(r[:i]) + "…"
		}
	}
	if len(r) > max {
		return string(r[:max]) + "…"
	}
	return s
}
