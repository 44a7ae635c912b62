package cli

import (
	"github.com/spf13/cobra"
)

// NewLogCommand creates the log command listing admin activity.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the admin activity log",
		Long:  "Show the admin activity log, newest first. At most the 50 most recent entries are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openShop(rootOpts, nil)
			if err != nil {
				return err
			}
			defer s.Close()
			return writeEntries(cmd.OutOrStdout(), rootOpts.Format, s.ActivityLog().Entries())
		},
	}
}
