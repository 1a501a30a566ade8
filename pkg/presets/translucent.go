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
	"github.com/walteh/retheme/pkg/text"
)

// Translucent turns the brand backgrounds written by Brighten into
// translucent ones. It expects Brighten to have run first.
const Translucent = "translucent"

const cyberBackgroundOld = `const CyberBackground = () => (
    <div className="fixed inset-0 z-0 bg-black/20 perspective-1000 overflow-hidden">
        {/* Deep Space Base */}
        <div className="absolute inset-0 bg-[radial-gradient(circle_at_center,#0d0d1a_0%,#000000_100%)]" />`

const cyberBackgroundNew = `const CyberBackground = () => (
    <div className="fixed inset-0 z-0 perspective-1000 overflow-hidden border-none mix-blend-screen pointer-events-none">
        {/* Removed black radial gradient to reveal main page gradient */}
`

const (
	wrapperOld = `className="min-h-screen bg-gradient-to-br from-[#0f0c29] via-[#302b63] to-[#24243e] text-white font-sans selection:bg-orange-500/30 selection:text-orange-200 overflow-x-hidden"`
	wrapperNew = `className="min-h-screen bg-gradient-to-b from-[#111A31] via-[#2F1D51] to-[#1F1738] text-white font-sans selection:bg-orange-500/30 selection:text-orange-200 overflow-x-hidden"`
)

func translucent() Preset {
	return Preset{
		Name:        Translucent,
		Description: "make brand backgrounds translucent and reveal the page gradient",
		Rules: text.RuleSet{
			{Old: "bg-[#151232]", New: "bg-black/20"},
			{Old: "bg-[#0f0c29]", New: "bg-black/20"},
			{Old: cyberBackgroundOld, New: cyberBackgroundNew, Cascade: true},
			{Old: wrapperOld, New: wrapperNew},
		},
		CountMarker: "bg-gradient-to-b",
	}
}
