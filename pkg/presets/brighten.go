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
	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/text"
)

// Brighten lifts gray and slate text one step lighter and swaps the solid
// page backgrounds for the brand palette
const Brighten = "brighten"

// Shades are listed lightest first. Each replacement is a pattern of an
// earlier rule only, so a single run moves every class exactly one step.
func brighten() Preset {
	return Preset{
		Name:        Brighten,
		Description: "brighten gray/slate text and swap solid backgrounds for brand colors",
		Rules: text.RuleSet{
			{Old: "text-gray-300", New: "text-white"},
			{Old: "text-gray-400", New: "text-gray-100"},
			{Old: "text-gray-500", New: "text-gray-200"},
			{Old: "text-gray-600", New: "text-gray-300"},
			{Old: "text-gray-700", New: "text-gray-400"},

			{Old: "text-slate-400", New: "text-slate-100"},
			{Old: "text-slate-500", New: "text-slate-200"},
			{Old: "text-slate-600", New: "text-slate-300"},
		},
		Conditionals: []selector.Conditional{
			{
				Name: "page",
				When: selector.Contains("page.tsx"),
				Rules: text.RuleSet{
					{Old: "bg-[#050505]", New: "bg-[#0f0c29]"},
					{Old: "bg-black", New: "bg-[#151232]"},
					// root wrapper, after its background became #0f0c29 above
					{
						Old:     `className="min-h-screen bg-[#0f0c29]`,
						New:     `className="min-h-screen bg-gradient-to-br from-[#0f0c29] via-[#302b63] to-[#24243e]`,
						Cascade: true,
					},
				},
			},
			{
				Name: "form",
				When: selector.Contains("HackathonForm.tsx"),
				Rules: text.RuleSet{
					{Old: "bg-slate-950", New: "bg-[#0f0c29]"},
					{Old: "bg-slate-900", New: "bg-[#151232]"},
				},
			},
		},
		Message: "Replaced gray text colors and backgrounds!",
	}
}
