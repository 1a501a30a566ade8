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
	"bytes"
	"context"

	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/status"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 Result is what one job did, or would do, to one target
type Result struct {
	Job     string
	Path    string   // Absolute path
	Display string   // Path relative to the job root
	Subsets []string // Conditional subsets that applied
	Status  status.FileStatus
	Backup  string

	Replacement *text.ReplacementResult
}

// Before returns the content the rules were applied to
func (r *Result) Before() []byte { return r.Replacement.OriginalContent }

// After returns the rewritten content
func (r *Result) After() []byte { return r.Replacement.ModifiedContent }

// transform applies the job's rules for path to content. It does no I/O.
func (r *Runner) transform(ctx context.Context, job *Job, path string, content []byte) (*Result, error) {
	display := job.Display(path)
	rules := selector.Select(display, job.Rules, job.Conditionals)

	replaced, err := r.replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return nil, errors.Errorf("replacing text in %s: %w", display, err)
	}

	res := &Result{
		Job:         job.Name,
		Path:        path,
		Display:     display,
		Subsets:     selector.Matches(display, job.Conditionals),
		Status:      status.StatusUnchanged,
		Replacement: replaced,
	}
	return res, nil
}

// rewrite loads path, transforms it and writes it back when the content
// changed. Any error aborts the caller's batch.
func (r *Runner) rewrite(ctx context.Context, job *Job, path string) (*Result, error) {
	content, err := r.files.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	res, err := r.transform(ctx, job, path, content)
	if err != nil {
		return nil, err
	}

	if !res.Replacement.WasModified {
		return res, nil
	}

	if job.Backup {
		backup, err := r.files.BackupFile(ctx, path)
		if err != nil {
			return nil, errors.Errorf("backing up %s: %w", path, err)
		}
		res.Backup = backup
	}

	if err := r.files.WriteFileAtomic(ctx, path, res.After()); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}

	res.Status = status.StatusModified
	return res, nil
}
