package cmd

import (
	"github.com/spf13/cobra"

	"hivemcp/internal/cli"
)

var statusFlags cli.CommandFlags

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of a running hive",
	Long: `Reads the hive://status resource from a running server.

Output formats:
  table     summary table (default)
  json      the resource body
  yaml      the resource body as YAML
  template  a Go template with sprig functions over the JSON fields, e.g.
            --template '{{.hive_id | trunc 8}} {{.metrics.total_agents}}'`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if statusFlags.Template != "" && !cmd.Flags().Changed("output") {
		statusFlags.OutputFormat = string(cli.OutputFormatTemplate)
	}
	if err := cli.ValidateOutputFormat(statusFlags.OutputFormat,
		cli.OutputFormatTable, cli.OutputFormatJSON, cli.OutputFormatYAML, cli.OutputFormatTemplate); err != nil {
		return err
	}

	options := statusFlags.ToExecutorOptions()
	options.Out = cmd.OutOrStdout()
	executor := cli.NewToolExecutor(options)
	if err := executor.Connect(cmd.Context()); err != nil {
		return err
	}
	defer executor.Close()

	return executor.ShowStatus(cmd.Context())
}

func init() {
	rootCmd.AddCommand(statusCmd)
	cli.RegisterConnectionFlags(statusCmd, &statusFlags)
	statusCmd.Flags().StringVarP(&statusFlags.OutputFormat, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml, template)")
	statusCmd.Flags().BoolVar(&statusFlags.NoHeaders, "no-headers", false, "Suppress header row in table output")
	statusCmd.Flags().StringVar(&statusFlags.Template, "template", "", "Go template for -o template")
}
