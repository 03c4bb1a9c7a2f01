package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hightemp/searchpresets/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				config.AppName, Version, Commit, BuildTime)
			return nil
		},
	}
}
