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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/walteh/retheme/pkg/presets"
	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrNoJobs is returned when a config declares no jobs
var ErrNoJobs = errors.New("no jobs configured")

// 📚 Config is the complete configuration file
type Config struct {
	Flags *Flags `json:"flags,omitempty" yaml:"flags,omitempty" hcl:"flags,block"`
	Jobs  []*Job `json:"jobs" yaml:"jobs" hcl:"job,block"`

	// directory the config was loaded from, relative targets resolve against it
	root string
}

// 🔧 Flags holds defaults shared by every job
type Flags struct {
	Backup bool `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty" hcl:"strict,optional"`
}

// 📝 Job is a named batch of file rewrites
type Job struct {
	Name    string      `json:"name" yaml:"name" hcl:"name,label"`
	Preset  string      `json:"preset,omitempty" yaml:"preset,omitempty" hcl:"preset,optional"`
	Targets []string    `json:"targets" yaml:"targets" hcl:"targets"`
	Backup  *bool       `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	Rules   []text.Rule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	When    []*When     `json:"when,omitempty" yaml:"when,omitempty" hcl:"when,block"`
	Report  *Report     `json:"report,omitempty" yaml:"report,omitempty" hcl:"report,block"`
}

// 🎯 When is a rule subset applied only to matching target paths
type When struct {
	Name         string      `json:"name" yaml:"name" hcl:"name,label"`
	PathContains string      `json:"path_contains,omitempty" yaml:"path_contains,omitempty" hcl:"path_contains,optional"`
	PathGlob     string      `json:"path_glob,omitempty" yaml:"path_glob,omitempty" hcl:"path_glob,optional"`
	Rules        []text.Rule `json:"rules" yaml:"rules" hcl:"rule,block"`
}

// 📊 Report is printed after a job completes
type Report struct {
	Message string `json:"message,omitempty" yaml:"message,omitempty" hcl:"message,optional"`
	Count   string `json:"count,omitempty" yaml:"count,omitempty" hcl:"count,optional"`
}

// Root returns the directory relative targets resolve against
func (cfg *Config) Root() string {
	return cfg.root
}

// Job returns the named job
func (cfg *Config) Job(name string) (*Job, bool) {
	for _, j := range cfg.Jobs {
		if j.Name == name {
			return j, true
		}
	}
	return nil, false
}

// Select returns the named jobs in config order, or every job when names is empty
func (cfg *Config) Select(names ...string) ([]*Job, error) {
	if len(names) == 0 {
		return cfg.Jobs, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := cfg.Job(n); !ok {
			return nil, errors.Errorf("unknown job %q", n)
		}
		want[n] = true
	}

	out := make([]*Job, 0, len(names))
	for _, j := range cfg.Jobs {
		if want[j.Name] {
			out = append(out, j)
		}
	}
	return out, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	if len(cfg.Jobs) == 0 {
		return ErrNoJobs
	}
	if cfg.Flags == nil {
		cfg.Flags = &Flags{}
	}

	seen := map[string]bool{}
	for i, job := range cfg.Jobs {
		if job == nil {
			return errors.Errorf("job %d: empty", i)
		}
		if job.Name == "" {
			return errors.Errorf("job %d: name is required", i)
		}
		if seen[job.Name] {
			return errors.Errorf("job %q: duplicate name", job.Name)
		}
		seen[job.Name] = true

		if err := job.validate(cfg.Flags.Strict); err != nil {
			return errors.Errorf("job %q: %w", job.Name, err)
		}
	}

	return nil
}

func (job *Job) validate(strict bool) error {
	if len(job.Targets) == 0 {
		return errors.Errorf("at least one target is required")
	}
	for i, t := range job.Targets {
		if strings.TrimSpace(t) == "" {
			return errors.Errorf("target %d: empty path", i)
		}
	}

	if job.Preset != "" {
		if _, err := presets.Get(job.Preset); err != nil {
			return err
		}
	}

	replacer := text.NewSimpleTextReplacer()
	if err := replacer.ValidateRules(job.Rules); err != nil {
		return errors.Errorf("rules: %w", err)
	}
	for i, w := range job.When {
		if w == nil {
			return errors.Errorf("when %d: empty", i)
		}
		if (w.PathContains == "") == (w.PathGlob == "") {
			return errors.Errorf("when %q: exactly one of path_contains or path_glob is required", w.Name)
		}
		if len(w.Rules) == 0 {
			return errors.Errorf("when %q: at least one rule is required", w.Name)
		}
		if err := replacer.ValidateRules(w.Rules); err != nil {
			return errors.Errorf("when %q: %w", w.Name, err)
		}
	}

	rules, conds, err := job.RuleSet()
	if err != nil {
		return err
	}
	if len(selector.Union(rules, conds)) == 0 {
		return errors.Errorf("no rules: set a preset or add rule blocks")
	}
	if strict {
		if err := text.CheckCascades(selector.Union(rules, conds)); err != nil {
			return err
		}
	}
	return nil
}

// RuleSet merges the preset (if any) with the job's own rules. Preset rules
// come first, inline rules after them; preset conditionals come before the
// job's own.
func (job *Job) RuleSet() (text.RuleSet, []selector.Conditional, error) {
	var (
		rules text.RuleSet
		conds []selector.Conditional
	)

	if job.Preset != "" {
		p, err := presets.Get(job.Preset)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, p.Rules...)
		conds = append(conds, p.Conditionals...)
	}

	rules = append(rules, job.Rules...)
	for _, w := range job.When {
		c := selector.Conditional{Name: w.Name, Rules: w.Rules}
		switch {
		case w.PathContains != "":
			c.When = selector.Contains(w.PathContains)
		case w.PathGlob != "":
			c.When = selector.Glob(w.PathGlob)
		}
		conds = append(conds, c)
	}

	return rules, conds, nil
}

// ResolvedReport merges the preset report with the job's own. Job fields win.
func (job *Job) ResolvedReport() Report {
	var r Report
	if job.Preset != "" {
		if p, err := presets.Get(job.Preset); err == nil {
			r.Message = p.Message
			r.Count = p.CountMarker
		}
	}
	if job.Report != nil {
		if job.Report.Message != "" {
			r.Message = job.Report.Message
		}
		if job.Report.Count != "" {
			r.Count = job.Report.Count
		}
	}
	return r
}

// ShouldBackup reports whether originals are copied aside before writing
func (job *Job) ShouldBackup(flags *Flags) bool {
	if job.Backup != nil {
		return *job.Backup
	}
	return flags != nil && flags.Backup
}

// ResolveTarget makes a target absolute against root
func ResolveTarget(root, target string) string {
	if filepath.IsAbs(target) || root == "" {
		return filepath.Clean(target)
	}
	return filepath.Join(root, target)
}

// String returns a one line summary of the config
func (cfg *Config) String() string {
	names := make([]string, 0, len(cfg.Jobs))
	for _, j := range cfg.Jobs {
		names = append(names, j.Name)
	}
	return fmt.Sprintf("%d jobs [%s] in %s", len(cfg.Jobs), strings.Join(names, ", "), cfg.root)
}
