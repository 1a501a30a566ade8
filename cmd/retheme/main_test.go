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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retheme/cmd/retheme/opts"
	"github.com/walteh/retheme/pkg/config"
	"github.com/walteh/retheme/pkg/status"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

const testConfig = `
job "brighten" {
  preset  = "brighten"
  targets = ["app/page.tsx", "app/components/HackathonForm.tsx"]
}

job "translucent" {
  preset  = "translucent"
  targets = ["app/page.tsx"]
}
`

const (
	pageSource = "<main className=\"min-h-screen bg-[#050505]\">\n<p className=\"text-gray-700\">x</p>\n</main>\n"
	formSource = "<form className=\"bg-slate-950 bg-slate-900 text-slate-500\" />\n"
)

func setupSite(t *testing.T, cfg string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		config.DefaultFile:                 cfg,
		"app/page.tsx":                     pageSource,
		"app/components/HackathonForm.tsx": formSource,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true
	pterm.DisableColor()
	t.Cleanup(func() {
		color.NoColor = false
		pterm.EnableColor()
	})

	var out, errOut bytes.Buffer
	o := &opts.RootOpts{
		ConfigFile: filepath.Join(dir, config.DefaultFile),
		Out:        &out,
		Err:        &errOut,
	}

	cmd := newRootCmd(o)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(b)
}

func TestApply(t *testing.T) {
	dir := setupSite(t, testConfig)

	out, err := execute(t, dir, "apply")
	require.NoError(t, err)

	assert.Equal(t, "<main className=\"min-h-screen bg-gradient-to-br from-[#0f0c29] via-[#302b63] to-[#24243e]\">\n<p className=\"text-gray-400\">x</p>\n</main>\n", readFile(t, dir, "app/page.tsx"))
	assert.Equal(t, "<form className=\"bg-[#0f0c29] bg-[#151232] text-slate-200\" />\n", readFile(t, dir, "app/components/HackathonForm.tsx"))

	assert.Contains(t, out, "Replaced gray text colors and backgrounds!")
	assert.Contains(t, out, "1 × bg-gradient-to-b")
	assert.Contains(t, out, "2 files rewritten")
	assert.Contains(t, out, "loaded 2 jobs [brighten, translucent]")
}

func TestApply_SelectedJob(t *testing.T) {
	dir := setupSite(t, testConfig)

	_, err := execute(t, dir, "apply", "translucent")
	require.NoError(t, err)

	assert.Equal(t, pageSource, readFile(t, dir, "app/page.tsx"), "translucent alone has nothing to match")
	assert.Equal(t, formSource, readFile(t, dir, "app/components/HackathonForm.tsx"))
}

func TestApply_DryRun(t *testing.T) {
	dir := setupSite(t, testConfig)

	out, err := execute(t, dir, "apply", "--dry-run")
	require.NoError(t, err)

	assert.Equal(t, pageSource, readFile(t, dir, "app/page.tsx"))
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "[planning brighten]")
}

func TestApply_Backup(t *testing.T) {
	dir := setupSite(t, testConfig)

	_, err := execute(t, dir, "apply", "--backup")
	require.NoError(t, err)
	assert.Equal(t, pageSource, readFile(t, dir, "app/page.tsx"+status.BackupSuffix))

	out, err := execute(t, dir, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "2 files restored")
	assert.Equal(t, pageSource, readFile(t, dir, "app/page.tsx"))

	_, err = execute(t, dir, "restore")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNoBackup))
}

func TestApply_MissingTarget(t *testing.T) {
	dir := setupSite(t, testConfig)
	require.NoError(t, os.Remove(filepath.Join(dir, "app/components/HackathonForm.tsx")))

	_, err := execute(t, dir, "apply")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.NotEqual(t, pageSource, readFile(t, dir, "app/page.tsx"), "targets before the failure stay rewritten")
}

func TestPlan(t *testing.T) {
	dir := setupSite(t, testConfig)

	out, err := execute(t, dir, "plan", "--context", "0")
	require.NoError(t, err)

	assert.Equal(t, pageSource, readFile(t, dir, "app/page.tsx"))
	assert.Contains(t, out, "--- app/page.tsx")
	assert.Contains(t, out, "-<p className=\"text-gray-700\">x</p>")
	assert.Contains(t, out, "+<p className=\"text-gray-400\">x</p>")
	assert.Contains(t, out, "Replacements")
	assert.Contains(t, out, "app/components/HackathonForm.tsx")
}

func TestCheck(t *testing.T) {
	dir := setupSite(t, testConfig)

	out, err := execute(t, dir, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "2 jobs ok")
	assert.Contains(t, out, "Intended")
}

func TestCheck_HelpStatesLimits(t *testing.T) {
	out, err := execute(t, t.TempDir(), "check", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--strict is not a guarantee")
}

func TestCheck_UnintendedCascade(t *testing.T) {
	dir := setupSite(t, `
job "dark-first" {
  targets = ["app/page.tsx"]

  rule {
    old = "text-gray-700"
    new = "text-gray-400"
  }

  rule {
    old = "text-gray-400"
    new = "text-gray-100"
  }
}
`)

	out, err := execute(t, dir, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "1 unintended cascading rules")

	_, err = execute(t, dir, "check", "--strict")
	require.Error(t, err)
	assert.True(t, errors.Is(err, text.ErrCascade))
}

func TestPresets(t *testing.T) {
	dir := setupSite(t, testConfig)

	out, err := execute(t, dir, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "brighten")
	assert.Contains(t, out, "translucent")

	out, err = execute(t, dir, "presets", "brighten")
	require.NoError(t, err)
	assert.Contains(t, out, "text-gray-700 → text-gray-400")
	assert.Contains(t, out, "page (contains page.tsx)")

	_, err = execute(t, dir, "presets", "neon")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Version)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "missing_config",
			args:        []string{"apply", "-c", "nope.hcl"},
			errContains: "loading config",
		},
		{
			name:        "unknown_job",
			args:        []string{"apply", "darken"},
			errContains: `unknown job "darken"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupSite(t, testConfig)
			_, err := execute(t, dir, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
