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

package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retheme/pkg/status"
)

func newTestLogger(t *testing.T) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var console, structured bytes.Buffer
	return New(&console, zerolog.New(&structured)), &console, &structured
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		op       func(l *Logger)
		contains []string
	}{
		{
			name: "modified_file",
			op: func(l *Logger) {
				l.LogFileOperation(context.Background(), FileOperation{
					Path:         "app/page.tsx",
					Status:       status.StatusModified,
					Replacements: 12,
					RulesFired:   3,
					Subsets:      []string{"page"},
				})
			},
			contains: []string{"⟳", "app/page.tsx", "modified", "12 replacements from 3 rules +page"},
		},
		{
			name: "planned_file",
			op: func(l *Logger) {
				l.LogFileOperation(context.Background(), FileOperation{
					Path:         "components/Nav.tsx",
					Status:       status.StatusPlanned,
					Replacements: 2,
					RulesFired:   1,
				})
			},
			contains: []string{"~", "components/Nav.tsx", "planned", "2 replacements from 1 rules"},
		},
		{
			name: "unchanged_file",
			op: func(l *Logger) {
				l.LogFileOperation(context.Background(), FileOperation{
					Path:   "app/layout.tsx",
					Status: status.StatusUnchanged,
				})
			},
			contains: []string{"•", "app/layout.tsx", "unchanged", "0 replacements"},
		},
		{
			name: "restored_file",
			op: func(l *Logger) {
				l.LogFileOperation(context.Background(), FileOperation{
					Path:   "app/page.tsx",
					Status: status.StatusRestored,
				})
			},
			contains: []string{"↺", "app/page.tsx", "restored"},
		},
		{
			name: "job_header_with_preset",
			op: func(l *Logger) {
				l.StartJob(context.Background(), JobOperation{Name: "brighten-site", Preset: "brighten", Targets: 4})
			},
			contains: []string{"[rewriting brighten-site]", "◆ brighten • 4 targets"},
		},
		{
			name: "dry_run_header",
			op: func(l *Logger) {
				l.StartJob(context.Background(), JobOperation{Name: "brighten-site", DryRun: true})
			},
			contains: []string{"[planning brighten-site]"},
		},
		{
			name:     "header",
			op:       func(l *Logger) { l.Header("applying 2 jobs") },
			contains: []string{"retheme", "• applying 2 jobs"},
		},
		{
			name:     "report",
			op:       func(l *Logger) { l.Report("Replaced gray text colors and backgrounds!") },
			contains: []string{"Replaced gray text colors and backgrounds!\n"},
		},
		{
			name:     "success",
			op:       func(l *Logger) { l.Successf("%d files rewritten", 3) },
			contains: []string{"✅", "3 files rewritten"},
		},
		{
			name:     "warning",
			op:       func(l *Logger) { l.Warningf("rule %d never fired", 2) },
			contains: []string{"⚠️", "rule 2 never fired"},
		},
		{
			name:     "error",
			op:       func(l *Logger) { l.Errorf("reading %s", "x.tsx") },
			contains: []string{"❌", "reading x.tsx"},
		},
		{
			name:     "info",
			op:       func(l *Logger) { l.Infof("loaded %s", ".retheme.hcl") },
			contains: []string{"ℹ️", "loaded .retheme.hcl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, console, _ := newTestLogger(t)
			tt.op(l)

			out := console.String()
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	l, _, _ := newTestLogger(t)
	ctx := NewContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))

	assert.Panics(t, func() { FromContext(context.Background()) })
}

func TestFileOperationFormatting(t *testing.T) {
	l, _, _ := newTestLogger(t)

	tests := []struct {
		name string
		op   FileOperation
		want string
	}{
		{
			name: "modified",
			op:   FileOperation{Path: "page.tsx", Status: status.StatusModified, Replacements: 1, RulesFired: 1},
			want: "    ⟳ page.tsx                            modified    1 replacements from 1 rules",
		},
		{
			name: "unchanged",
			op:   FileOperation{Path: "page.tsx", Status: status.StatusUnchanged},
			want: "    • page.tsx                            unchanged   0 replacements",
		},
		{
			name: "restored_has_no_details",
			op:   FileOperation{Path: "page.tsx", Status: status.StatusRestored, Replacements: 9},
			want: "    ↺ page.tsx                            restored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.formatFileOperation(tt.op))
		})
	}
}

func TestEndJob(t *testing.T) {
	l, _, structured := newTestLogger(t)
	ctx := context.Background()

	assert.Nil(t, l.EndJob(ctx), "no job started")

	l.StartJob(ctx, JobOperation{Name: "translucent", Targets: 2})
	l.LogFileOperation(ctx, FileOperation{Path: "a.tsx", Status: status.StatusModified, Replacements: 3})
	l.LogFileOperation(ctx, FileOperation{Path: "b.tsx", Status: status.StatusUnchanged})

	ops := l.EndJob(ctx)
	require.Len(t, ops, 2)
	assert.Equal(t, "a.tsx", ops[0].Path)

	lines := strings.Split(strings.TrimSpace(structured.String()), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, `"job":"translucent"`)
	assert.Contains(t, last, `"files":2`)
	assert.Contains(t, last, `"replacements":3`)
	assert.Contains(t, lines[1], `"job":"translucent"`, "file operations carry the job name")
}
