package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/retheme/cmd/retheme/opts"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates the plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		contextLines int
		noDiff       bool
		concurrency  int
	)

	cmd := &cobra.Command{
		Use:   "plan [job...]",
		Short: "Preview the changes apply would make",
		Long: `Plan computes every job without writing anything. Each job sees the
planned output of the jobs before it, so the diffs show the combined effect of
a whole apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			jobs, err := opts.Jobs(ctx, args)
			if err != nil {
				return err
			}

			results, err := opts.Runner(concurrency).Plan(ctx, jobs)
			if err != nil {
				return errors.Errorf("planning: %w", err)
			}

			return renderPlan(opts.Out, results, contextLines, !noDiff)
		},
	}

	cmd.Flags().IntVar(&contextLines, "context", 2, "unchanged lines shown around each change")
	cmd.Flags().BoolVar(&noDiff, "no-diff", false, "only print the summary table")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "files read at once (0 for the default)")

	return cmd
}
