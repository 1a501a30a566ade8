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

package presets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const (
	pagePath = "/site/app/page.tsx"
	formPath = "/site/app/components/HackathonForm.tsx"
)

func run(t *testing.T, name, path, content string) string {
	t.Helper()
	p, err := Get(name)
	require.NoError(t, err)
	rules := selector.Select(path, p.Rules, p.Conditionals)
	return string(text.Apply(content, rules).ModifiedContent)
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		p, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Rules)
	}

	_, err := Get("neon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{Brighten, Translucent}, Names())
}

func TestGet_ReturnsCopies(t *testing.T) {
	a, err := Get(Brighten)
	require.NoError(t, err)
	a.Rules[0].New = "mutated"

	b, err := Get(Brighten)
	require.NoError(t, err)
	assert.Equal(t, "text-white", b.Rules[0].New)
}

func TestPresetsHaveNoUnintendedCascades(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Get(name)
			require.NoError(t, err)
			assert.NoError(t, text.CheckCascades(selector.Union(p.Rules, p.Conditionals)))
		})
	}
}

func TestBrighten(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{
			name:    "common_rules_only_move_one_step",
			path:    "/site/app/other.tsx",
			content: "text-gray-700 bg-black",
			want:    "text-gray-400 bg-black",
		},
		{
			name:    "every_shade",
			path:    "/site/app/other.tsx",
			content: "text-gray-300 text-gray-400 text-gray-500 text-gray-600 text-gray-700 text-slate-400 text-slate-500 text-slate-600",
			want:    "text-white text-gray-100 text-gray-200 text-gray-300 text-gray-400 text-slate-100 text-slate-200 text-slate-300",
		},
		{
			name:    "page_background",
			path:    pagePath,
			content: "bg-[#050505]",
			want:    "bg-[#0f0c29]",
		},
		{
			name:    "page_black_sections",
			path:    pagePath,
			content: `<section className="bg-black">`,
			want:    `<section className="bg-[#151232]">`,
		},
		{
			name:    "page_root_wrapper_gradient",
			path:    pagePath,
			content: `<main className="min-h-screen bg-[#050505] text-white">`,
			want:    `<main className="min-h-screen bg-gradient-to-br from-[#0f0c29] via-[#302b63] to-[#24243e] text-white">`,
		},
		{
			name:    "form_backgrounds",
			path:    formPath,
			content: "bg-slate-950 bg-slate-900",
			want:    "bg-[#0f0c29] bg-[#151232]",
		},
		{
			name:    "form_leaves_bg_black",
			path:    formPath,
			content: "bg-black bg-[#050505]",
			want:    "bg-black bg-[#050505]",
		},
		{
			name:    "page_leaves_slate_backgrounds",
			path:    pagePath,
			content: "bg-slate-950",
			want:    "bg-slate-950",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, Brighten, tt.path, tt.content))
		})
	}
}

func TestBrighten_NotIdempotent(t *testing.T) {
	once := run(t, Brighten, "/x.tsx", "text-gray-700")
	twice := run(t, Brighten, "/x.tsx", once)
	assert.Equal(t, "text-gray-400", once)
	assert.Equal(t, "text-gray-100", twice)

	once = run(t, Brighten, "/x.tsx", "text-gray-600")
	twice = run(t, Brighten, "/x.tsx", once)
	assert.Equal(t, "text-gray-300", once)
	assert.Equal(t, "text-white", twice)
}

func TestTranslucent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "root_background",
			content: "bg-[#0f0c29]",
			want:    "bg-black/20",
		},
		{
			name:    "section_background",
			content: "bg-[#151232]",
			want:    "bg-black/20",
		},
		{
			name:    "gradient_stops_untouched",
			content: "from-[#0f0c29]",
			want:    "from-[#0f0c29]",
		},
		{
			name:    "wrapper_gradient",
			content: wrapperOld,
			want:    wrapperNew,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, Translucent, pagePath, tt.content))
		})
	}
}

func TestTranslucent_CyberBackgroundAfterSolidSwap(t *testing.T) {
	// the block only matches once bg-[#0f0c29] has become bg-black/20
	before := strings.Replace(cyberBackgroundOld, "bg-black/20", "bg-[#0f0c29]", 1) + "\n    </div>\n)"

	got := run(t, Translucent, pagePath, before)
	assert.Equal(t, cyberBackgroundNew+"\n    </div>\n)", got)
	assert.NotContains(t, got, "radial-gradient")
}

func TestBrightenThenTranslucent(t *testing.T) {
	page := strings.Join([]string{
		`<div className="min-h-screen bg-[#050505] text-white font-sans selection:bg-orange-500/30 selection:text-orange-200 overflow-x-hidden">`,
		`<section className="bg-black text-gray-500">`,
		`<p className="text-gray-700">`,
	}, "\n")

	brightened := run(t, Brighten, pagePath, page)
	assert.Contains(t, brightened, "bg-gradient-to-br from-[#0f0c29]")
	assert.Contains(t, brightened, `<section className="bg-[#151232] text-gray-200">`)

	final := run(t, Translucent, pagePath, brightened)
	assert.Contains(t, final, "bg-gradient-to-b from-[#111A31] via-[#2F1D51] to-[#1F1738]")
	assert.Contains(t, final, `<section className="bg-black/20 text-gray-200">`)
	assert.Contains(t, final, `<p className="text-gray-400">`)

	p, err := Get(Translucent)
	require.NoError(t, err)
	assert.Equal(t, 1, text.Count([]byte(final), p.CountMarker))
}
