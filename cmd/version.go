package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"headgate/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion(cmd.Root().Name()))
		},
	}
}
