package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/retheme/cmd/retheme/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRestoreCmd creates the restore command
func NewRestoreCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore [job...]",
		Short: "Put back the files saved by apply --backup",
		Long: `Restore copies each target's .bak file back over it and removes the backup.
Targets without a backup are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			jobs, err := opts.Jobs(ctx, args)
			if err != nil {
				return err
			}

			opts.Logger.Header("restoring")
			restored, err := opts.Runner(0).Restore(ctx, jobs)
			if err != nil {
				return errors.Errorf("restoring: %w", err)
			}

			opts.Logger.Successf("%d files restored", len(restored))
			return nil
		},
	}

	return cmd
}
