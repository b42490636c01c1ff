package cmd

import (
	"github.com/spf13/cobra"

	"hivemcp/internal/cli"
	"hivemcp/internal/server"
	"hivemcp/internal/tools"
)

var toolsFlags cli.CommandFlags

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the hive server exposes",
	Long: `Lists the tool catalog with its arguments. Required arguments are marked
with '*'. No server is needed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.ValidateOutputFormat(toolsFlags.OutputFormat); err != nil {
			return err
		}
		options := toolsFlags.ToExecutorOptions()
		options.Out = cmd.OutOrStdout()
		return cli.ListTools(server.MCPTools(tools.Catalog()), options)
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	cli.RegisterOutputFlags(toolsCmd, &toolsFlags)
}
