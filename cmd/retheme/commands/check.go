package commands

import (
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/retheme/cmd/retheme/opts"
	"github.com/walteh/retheme/pkg/operation"
	"github.com/walteh/retheme/pkg/selector"
	"github.com/walteh/retheme/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates the check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [job...]",
		Short: "Validate the config and list cascading rules",
		Long: `Check loads the config, makes sure every target exists and lists each pair
of rules where a later rule would match text an earlier rule wrote in the same
pass. Pairs whose later rule sets cascade = true are expected.

Only whole overlaps are found: a replacement containing a later pattern, or a
later pattern containing a replacement. A match made of a replacement plus the
text next to it in the file is not reported, so --strict is not a guarantee.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.LoadConfig(ctx)
			if err != nil {
				return err
			}
			jobs, err := operation.NewJobs(cfg, args...)
			if err != nil {
				return errors.Errorf("selecting jobs: %w", err)
			}

			jobData := [][]string{{"Job", "Preset", "Targets", "Rules", "Subsets", "Backup"}}
			cascadeData := [][]string{{"Job", "From", "To", "Kind", "Intended"}}
			unintended := 0

			for _, job := range jobs {
				targets, err := job.ExpandTargets(ctx)
				if err != nil {
					return errors.Errorf("job %q: %w", job.Name, err)
				}
				for _, t := range targets {
					if _, err := os.Stat(t); err != nil {
						return errors.Errorf("job %q: target %s: %w", job.Name, job.Display(t), err)
					}
				}

				preset := job.Preset
				if preset == "" {
					preset = "-"
				}
				jobData = append(jobData, []string{
					job.Name,
					preset,
					strconv.Itoa(len(targets)),
					strconv.Itoa(len(job.Rules)),
					strconv.Itoa(len(job.Conditionals)),
					strconv.FormatBool(job.Backup),
				})

				union := selector.Union(job.Rules, job.Conditionals)
				for _, c := range text.FindCascades(union) {
					if !c.Intended {
						unintended++
					}
					cascadeData = append(cascadeData, []string{
						job.Name,
						union[c.From].String(),
						union[c.To].String(),
						c.Kind.String(),
						strconv.FormatBool(c.Intended),
					})
				}
			}

			if err := renderTable(opts.Out, pterm.TableData(jobData)); err != nil {
				return err
			}
			if len(cascadeData) > 1 {
				if err := renderTable(opts.Out, pterm.TableData(cascadeData)); err != nil {
					return err
				}
			}

			if unintended > 0 {
				if strict {
					return errors.Errorf("%w: %d found", text.ErrCascade, unintended)
				}
				opts.Logger.Warningf("%d unintended cascading rules", unintended)
				return nil
			}

			opts.Logger.Successf("%d jobs ok", len(jobs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unintended cascading rules")

	return cmd
}
