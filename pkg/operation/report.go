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
	"fmt"
	"strings"

	"github.com/walteh/retheme/pkg/text"
)

// 📊 JobResult collects the per target results of one job
type JobResult struct {
	Job    *Job
	Files  []*Result
	Report string
}

// Replacements returns the total replacements across the job
func (jr *JobResult) Replacements() int {
	n := 0
	for _, f := range jr.Files {
		n += f.Replacement.ReplacementCount
	}
	return n
}

// Changed returns the results whose content changed
func (jr *JobResult) Changed() []*Result {
	var out []*Result
	for _, f := range jr.Files {
		if f.Replacement.WasModified {
			out = append(out, f)
		}
	}
	return out
}

// buildReport renders the job's report line: the fixed message, then the
// number of times the marker occurs across the final texts
func buildReport(job *Job, files []*Result) string {
	var lines []string
	if job.Report.Message != "" {
		lines = append(lines, job.Report.Message)
	}
	if job.Report.Count != "" {
		n := 0
		for _, f := range files {
			n += text.Count(f.After(), job.Report.Count)
		}
		lines = append(lines, fmt.Sprintf("%d × %s", n, job.Report.Count))
	}
	return strings.Join(lines, "\n")
}
