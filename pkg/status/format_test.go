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

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name   string
		status FileStatus
		want   string
	}{
		{"modified", StatusModified, "📝 Rewrote page.tsx (4 replacements)"},
		{"planned", StatusPlanned, "🔎 Would rewrite page.tsx (4 replacements)"},
		{"restored", StatusRestored, "⏪ Restored page.tsx"},
		{"failed", StatusFailed, "❌ Failed page.tsx"},
		{"unchanged", StatusUnchanged, "👍 Unchanged page.tsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileOperation("page.tsx", tt.status, 4))
		})
	}
}

func TestDefaultFileFormatter_Progress(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "⏳ Progress: 1/4 (25%)", f.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", f.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}

func TestDefaultFileFormatter_Error(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "", f.FormatError(nil))
	assert.Equal(t, "❌ Error: boom", f.FormatError(errors.New("boom")))
}
