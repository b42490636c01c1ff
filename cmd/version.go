package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hivemcp",
		Long:  `Print the version of hivemcp. The same version is reported as serverInfo.version during initialize.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hivemcp version %s\n", rootCmd.Version)
		},
	}
}
