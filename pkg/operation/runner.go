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
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/retheme/pkg/log"
	"github.com/walteh/retheme/pkg/status"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of targets Plan reads at once
const DefaultConcurrency = 8

// 🔧 Options configures a Runner. Every field is optional.
type Options struct {
	Files       status.FileManager
	Status      status.StatusReporter
	Replacer    text.Replacer
	Logger      *log.Logger
	Concurrency int
}

// 🏃 Runner executes jobs against the filesystem
type Runner struct {
	files       status.FileManager
	status      status.StatusReporter
	replacer    text.Replacer
	logger      *log.Logger
	concurrency int
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) *Runner {
	r := &Runner{
		files:       opts.Files,
		status:      opts.Status,
		replacer:    opts.Replacer,
		logger:      opts.Logger,
		concurrency: opts.Concurrency,
	}

	if r.files == nil || r.status == nil {
		mgr := status.New("")
		if r.files == nil {
			r.files = mgr
		}
		if r.status == nil {
			r.status = mgr
		}
	}
	if r.replacer == nil {
		r.replacer = text.NewSimpleTextReplacer()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard, zerolog.Nop())
	}
	if r.concurrency <= 0 {
		r.concurrency = DefaultConcurrency
	}
	return r
}

// 🏃 Run applies jobs one after another, each target in order. The first
// error stops the batch; files already written stay written.
func (r *Runner) Run(ctx context.Context, jobs []*Job) ([]*JobResult, error) {
	results := make([]*JobResult, 0, len(jobs))
	for _, job := range jobs {
		jr, err := r.runJob(ctx, job)
		if jr != nil {
			results = append(results, jr)
		}
		if err != nil {
			return results, errors.Errorf("job %q: %w", job.Name, err)
		}
	}
	return results, nil
}

func (r *Runner) runJob(ctx context.Context, job *Job) (*JobResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("job", job.Name).Logger()

	targets, err := job.ExpandTargets(ctx)
	if err != nil {
		return nil, err
	}

	r.logger.StartJob(ctx, log.JobOperation{Name: job.Name, Preset: job.Preset, Targets: len(targets)})
	defer r.logger.EndJob(ctx)
	defer r.logger.LogNewline()

	r.status.StartOperation(ctx, len(targets))
	defer r.status.FinishOperation(ctx)

	jr := &JobResult{Job: job}
	for i, path := range targets {
		if err := ctx.Err(); err != nil {
			return jr, errors.Errorf("stopped before %s: %w", path, err)
		}

		res, err := r.rewrite(ctx, job, path)
		if err != nil {
			r.status.TrackFile(ctx, path, status.FileInfo{Path: path, Status: status.StatusFailed, Error: err})
			r.logger.LogFileOperation(ctx, log.FileOperation{Path: job.Display(path), Status: status.StatusFailed})
			return jr, err
		}

		jr.Files = append(jr.Files, res)
		r.track(ctx, res)
		r.status.UpdateProgress(ctx, i+1)
	}

	jr.Report = buildReport(job, jr.Files)
	if jr.Report != "" {
		r.logger.Report(jr.Report)
	}

	logger.Debug().Int("files", len(jr.Files)).Int("replacements", jr.Replacements()).Msg("job applied")
	return jr, nil
}

// 🔎 Plan computes what Run would do without writing. Targets of a job are
// read concurrently; each job sees the planned output of the jobs before it.
// Results come back in declared order.
func (r *Runner) Plan(ctx context.Context, jobs []*Job) ([]*JobResult, error) {
	pending := map[string][]byte{}

	results := make([]*JobResult, 0, len(jobs))
	for _, job := range jobs {
		jr, err := r.planJob(ctx, job, pending)
		if err != nil {
			return results, errors.Errorf("job %q: %w", job.Name, err)
		}
		results = append(results, jr)

		for _, f := range jr.Files {
			pending[f.Path] = f.After()
		}
	}
	return results, nil
}

func (r *Runner) planJob(ctx context.Context, job *Job, pending map[string][]byte) (*JobResult, error) {
	targets, err := job.ExpandTargets(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]*Result, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, path := range targets {
		content, ok := pending[path]
		g.Go(func() error {
			if !ok {
				var err error
				content, err = r.files.ReadFile(gctx, path)
				if err != nil {
					return errors.Errorf("reading %s: %w", path, err)
				}
			}

			res, err := r.transform(gctx, job, path, content)
			if err != nil {
				return err
			}
			if res.Replacement.WasModified {
				res.Status = status.StatusPlanned
			}
			files[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.StartJob(ctx, log.JobOperation{Name: job.Name, Preset: job.Preset, Targets: len(targets), DryRun: true})
	defer r.logger.EndJob(ctx)
	defer r.logger.LogNewline()

	jr := &JobResult{Job: job, Files: files}
	for _, res := range files {
		r.track(ctx, res)
	}

	jr.Report = buildReport(job, files)
	if jr.Report != "" {
		r.logger.Report(jr.Report)
	}
	return jr, nil
}

// ⏪ Restore copies each target's backup back over it and removes the
// backup. Targets without a backup are skipped; ErrNoBackup is returned only
// when none of the selected targets had one.
func (r *Runner) Restore(ctx context.Context, jobs []*Job) ([]*Result, error) {
	seen := map[string]bool{}
	var restored []*Result

	for _, job := range jobs {
		targets, err := job.ExpandTargets(ctx)
		if err != nil {
			return restored, errors.Errorf("job %q: %w", job.Name, err)
		}

		for _, path := range targets {
			if seen[path] {
				continue
			}
			seen[path] = true

			if err := ctx.Err(); err != nil {
				return restored, errors.Errorf("stopped before %s: %w", path, err)
			}

			ok, err := r.files.FileExists(ctx, path+status.BackupSuffix)
			if err != nil {
				return restored, err
			}
			if !ok {
				zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no backup, skipping")
				continue
			}

			if err := r.files.RestoreFile(ctx, path); err != nil {
				return restored, errors.Errorf("restoring %s: %w", path, err)
			}

			res := &Result{
				Job:         job.Name,
				Path:        path,
				Display:     job.Display(path),
				Status:      status.StatusRestored,
				Backup:      path + status.BackupSuffix,
				Replacement: &text.ReplacementResult{},
			}
			restored = append(restored, res)
			r.track(ctx, res)
		}
	}

	if len(restored) == 0 {
		return nil, errors.Errorf("%w: no selected target has one", status.ErrNoBackup)
	}
	return restored, nil
}

func (r *Runner) track(ctx context.Context, res *Result) {
	r.status.TrackFile(ctx, res.Path, status.FileInfo{
		Path:         res.Path,
		Status:       res.Status,
		Size:         int64(len(res.After())),
		Replacements: res.Replacement.ReplacementCount,
		RulesFired:   res.Replacement.Fired(),
		Checksum:     status.Checksum(res.After()),
		Backup:       res.Backup,
	})

	r.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         res.Display,
		Status:       res.Status,
		Replacements: res.Replacement.ReplacementCount,
		RulesFired:   res.Replacement.Fired(),
		Subsets:      res.Subsets,
		Backup:       res.Backup,
	})
}
