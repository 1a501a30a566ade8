package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/retheme/cmd/retheme/opts"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates the apply command
func NewApplyCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		dryRun bool
		backup bool
	)

	cmd := &cobra.Command{
		Use:   "apply [job...]",
		Short: "Rewrite the target files of the given jobs",
		Long: `Apply runs every job in config order, or only the named ones.
For each target it will:
1. Read the file
2. Apply the job's rules in order, plus any subset matching the path
3. Write the result back in place

Jobs run one after another. The first failure stops the batch; files already
written are left as they are. Running a job twice can change files again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			jobs, err := opts.Jobs(ctx, args)
			if err != nil {
				return err
			}
			if backup {
				for _, j := range jobs {
					j.Backup = true
				}
			}

			runner := opts.Runner(0)

			if dryRun {
				opts.Logger.Header("dry run, nothing is written")
				results, err := runner.Plan(ctx, jobs)
				if err != nil {
					return errors.Errorf("planning: %w", err)
				}
				return renderPlan(opts.Out, results, 2, false)
			}

			opts.Logger.Header("applying")
			results, err := runner.Run(ctx, jobs)
			if err != nil {
				return errors.Errorf("applying: %w", err)
			}

			files, replacements := 0, 0
			for _, jr := range results {
				files += len(jr.Changed())
				replacements += jr.Replacements()
			}
			opts.Logger.Successf("%d files rewritten, %d replacements", files, replacements)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would change without writing")
	cmd.Flags().BoolVar(&backup, "backup", false, "copy each file to <file>.bak before the first rewrite")

	return cmd
}
