package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/walteh/retheme/pkg/diff"
	"github.com/walteh/retheme/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// renderTable writes a pterm table with a header row to out
func renderTable(out io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Errorf("rendering table: %w", err)
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

// renderPlan prints a diff for every changed file followed by a summary table
func renderPlan(out io.Writer, results []*operation.JobResult, contextLines int, showDiff bool) error {
	data := pterm.TableData{{"Job", "File", "Subsets", "Rules", "Replacements", "Lines"}}

	for _, jr := range results {
		for _, f := range jr.Files {
			stats := diff.Count(diff.Lines(string(f.Before()), string(f.After())))
			if showDiff && f.Replacement.WasModified {
				if _, err := diff.Render(out, f.Display, string(f.Before()), string(f.After()), contextLines); err != nil {
					return err
				}
			}

			subsets := "-"
			if len(f.Subsets) > 0 {
				subsets = strings.Join(f.Subsets, ",")
			}
			data = append(data, []string{
				jr.Job.Name,
				f.Display,
				subsets,
				strconv.Itoa(f.Replacement.Fired()),
				strconv.Itoa(f.Replacement.ReplacementCount),
				fmt.Sprintf("+%d -%d", stats.Added, stats.Removed),
			})
		}
	}

	return renderTable(out, data)
}
