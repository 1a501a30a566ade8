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

// Package diff renders line level previews of a rewrite.
package diff

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"
)

// Line is one line of a diff
type Line struct {
	Op   diffmatchpatch.Operation
	Text string
}

// 📊 Stats counts changed lines
type Stats struct {
	Added   int
	Removed int
}

// Lines diffs before and after line by line
func Lines(before, after string) []Line {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	var out []Line
	for _, d := range diffs {
		for _, l := range splitLines(d.Text) {
			out = append(out, Line{Op: d.Type, Text: l})
		}
	}
	return out
}

// Count returns the added and removed line counts
func Count(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			s.Added++
		case diffmatchpatch.DiffDelete:
			s.Removed++
		}
	}
	return s
}

// 🖨️ Render writes a preview of the change to w, keeping contextLines
// unchanged lines around each change. Gaps are shown as a single "@@" line.
func Render(w io.Writer, path, before, after string, contextLines int) (Stats, error) {
	lines := Lines(before, after)
	stats := Count(lines)
	if stats.Added == 0 && stats.Removed == 0 {
		return stats, nil
	}

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-contextLines); j <= min(len(lines)-1, i+contextLines); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(color.New(color.Bold).Sprintf("--- %s\n+++ %s\n", path, path))

	gap := true
	for i, l := range lines {
		if !keep[i] {
			gap = true
			continue
		}
		if gap {
			sb.WriteString(color.New(color.FgCyan).Sprint("@@") + "\n")
			gap = false
		}
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(color.New(color.FgGreen).Sprint("+"+l.Text) + "\n")
		case diffmatchpatch.DiffDelete:
			sb.WriteString(color.New(color.FgRed).Sprint("-"+l.Text) + "\n")
		default:
			sb.WriteString(" " + l.Text + "\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return stats, errors.Errorf("writing diff: %w", err)
	}
	return stats, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}
	return parts
}
