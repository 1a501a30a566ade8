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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/retheme/pkg/config"
	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrNoTargets is returned when a target pattern matches no files
var ErrNoTargets = errors.New("no targets matched")

// 📦 Job is a config job resolved into everything a run needs
type Job struct {
	Name         string
	Preset       string
	Root         string   // Directory targets are relative to
	Targets      []string // Declared targets, paths or doublestar patterns
	Rules        text.RuleSet
	Conditionals []selector.Conditional
	Backup       bool
	Report       config.Report
}

// 🏭 NewJob resolves a config job
func NewJob(cfg *config.Config, j *config.Job) (*Job, error) {
	rules, conds, err := j.RuleSet()
	if err != nil {
		return nil, errors.Errorf("resolving rules for job %q: %w", j.Name, err)
	}

	return &Job{
		Name:         j.Name,
		Preset:       j.Preset,
		Root:         cfg.Root(),
		Targets:      append([]string(nil), j.Targets...),
		Rules:        rules,
		Conditionals: conds,
		Backup:       j.ShouldBackup(cfg.Flags),
		Report:       j.ResolvedReport(),
	}, nil
}

// 🏭 NewJobs resolves the named jobs, or every job when names is empty
func NewJobs(cfg *config.Config, names ...string) ([]*Job, error) {
	selected, err := cfg.Select(names...)
	if err != nil {
		return nil, err
	}

	jobs := make([]*Job, 0, len(selected))
	for _, j := range selected {
		job, err := NewJob(cfg, j)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// ExpandTargets resolves every target to an absolute path. Patterns are
// expanded with doublestar and sorted; a pattern with no match is an error.
// Literal paths are kept as given even when missing so the read reports it.
// A target naming an existing file is literal even if it holds glob
// characters, as in app/[slug]/page.tsx. A path listed twice is only
// rewritten once.
func (j *Job) ExpandTargets(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, target := range j.Targets {
		resolved := config.ResolveTarget(j.Root, target)
		if !isPattern(target) || isFile(resolved) {
			add(resolved)
			continue
		}

		matches, err := doublestar.FilepathGlob(resolved, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", target, err)
		}
		if len(matches) == 0 {
			return nil, errors.Errorf("%w: %s", ErrNoTargets, target)
		}
		sort.Strings(matches)

		logger.Debug().Str("pattern", target).Int("matches", len(matches)).Msg("expanded target pattern")
		for _, m := range matches {
			add(filepath.Clean(m))
		}
	}

	if len(out) == 0 {
		return nil, ErrNoTargets
	}
	return out, nil
}

// Display returns path relative to the job root when it lives under it.
// Conditional subsets are matched against this form.
func (j *Job) Display(path string) string {
	if j.Root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(j.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func isPattern(target string) bool {
	return strings.ContainsAny(target, "*?[{")
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
