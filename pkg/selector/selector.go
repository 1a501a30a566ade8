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

// Package selector picks the extra rule subsets that apply to a file path.
package selector

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/retheme/pkg/text"
)

// 🔍 Predicate decides whether a path receives a conditional subset
type Predicate interface {
	Match(p string) bool
	String() string
}

// Contains matches paths that contain a literal substring
type Contains string

func (c Contains) Match(p string) bool {
	return c != "" && strings.Contains(p, string(c))
}

func (c Contains) String() string {
	return "contains " + string(c)
}

// Glob matches paths against a doublestar pattern. The pattern is tried
// against the full slash path and then against the base name, so "page.tsx"
// and "**/app/page.tsx" both work.
type Glob string

func (g Glob) Match(p string) bool {
	if g == "" {
		return false
	}
	slashed := filepath.ToSlash(p)
	if ok, err := doublestar.Match(string(g), slashed); err == nil && ok {
		return true
	}
	ok, err := doublestar.Match(string(g), path.Base(slashed))
	return err == nil && ok
}

func (g Glob) String() string {
	return "glob " + string(g)
}

// 🎯 Conditional is a rule subset guarded by a path predicate
type Conditional struct {
	Name  string
	When  Predicate
	Rules text.RuleSet
}

// Select returns base followed by the rules of every conditional whose
// predicate matches p, in declaration order
func Select(p string, base text.RuleSet, conds []Conditional) text.RuleSet {
	var extra []text.RuleSet
	for _, c := range conds {
		if c.When != nil && c.When.Match(p) {
			extra = append(extra, c.Rules)
		}
	}
	return base.Concat(extra...)
}

// Matches returns the names of the conditionals that apply to p
func Matches(p string, conds []Conditional) []string {
	var names []string
	for _, c := range conds {
		if c.When != nil && c.When.Match(p) {
			names = append(names, c.Name)
		}
	}
	return names
}

// Union returns base followed by every conditional's rules, the largest set
// any path could receive
func Union(base text.RuleSet, conds []Conditional) text.RuleSet {
	extra := make([]text.RuleSet, 0, len(conds))
	for _, c := range conds {
		extra = append(extra, c.Rules)
	}
	return base.Concat(extra...)
}
