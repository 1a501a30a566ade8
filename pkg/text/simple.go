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
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements Replacer using exact literal matching
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements Replacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules RuleSet) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	result := Apply(string(originalContent), rules)
	result.OriginalContent = originalContent
	return result, nil
}

// ValidateRules implements Replacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules RuleSet) error {
	for i, rule := range rules {
		if rule.Old == "" {
			return errors.Errorf("rule %d: old is required", i)
		}
	}
	return nil
}

// Apply runs every rule over content in order. Each rule replaces all
// non-overlapping occurrences, scanning left to right, and the output of one
// rule is the input of the next.
func Apply(content string, rules RuleSet) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: []byte(content),
		Rules:           make([]RuleResult, 0, len(rules)),
	}

	current := content
	for _, rule := range rules {
		// an empty pattern matches between every rune
		if rule.Old == "" {
			result.Rules = append(result.Rules, RuleResult{Rule: rule})
			continue
		}

		n := strings.Count(current, rule.Old)
		if n > 0 {
			current = strings.ReplaceAll(current, rule.Old, rule.New)
			result.ReplacementCount += n
			if rule.Old != rule.New {
				result.WasModified = true
			}
		}
		result.Rules = append(result.Rules, RuleResult{Rule: rule, Count: n})
	}

	result.ModifiedContent = []byte(current)
	return result
}

// Count returns the number of non-overlapping occurrences of marker in content
func Count(content []byte, marker string) int {
	if marker == "" {
		return 0
	}
	return strings.Count(string(content), marker)
}
