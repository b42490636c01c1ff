package cmd

import (
	"github.com/spf13/cobra"

	"hivemcp/internal/cli"
)

var (
	callFlags    cli.CommandFlags
	callArgPairs []string
	callArgsJSON string
)

var callCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Call a tool on a running hive",
	Long: `Calls a tool on a running server and prints the result.

Arguments are given as repeated --arg key=value pairs, as a JSON object with
--args, or both; pairs win on conflicts. Pair values that parse as JSON keep
their type, so --arg count=3 sends a number.

Examples:
  hivemcp call create_swarm_agent --arg agent_type=Worker
  hivemcp call batch_create_agents --arg count=5 --arg agent_type=Specialist -o yaml
  hivemcp call assign_swarm_task --args '{"description":"index docs","priority":"High"}'`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func runCall(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(callFlags.OutputFormat); err != nil {
		return err
	}
	toolArgs, err := cli.ParseToolArgs(callArgPairs, callArgsJSON)
	if err != nil {
		return err
	}

	options := callFlags.ToExecutorOptions()
	options.Out = cmd.OutOrStdout()
	executor := cli.NewToolExecutor(options)
	if err := executor.Connect(cmd.Context()); err != nil {
		return err
	}
	defer executor.Close()

	return executor.Execute(cmd.Context(), args[0], toolArgs)
}

func init() {
	rootCmd.AddCommand(callCmd)
	cli.RegisterConnectionFlags(callCmd, &callFlags)
	cli.RegisterOutputFlags(callCmd, &callFlags)
	callCmd.Flags().StringArrayVar(&callArgPairs, "arg", nil, "Tool argument as key=value (repeatable)")
	callCmd.Flags().StringVar(&callArgsJSON, "args", "", "Tool arguments as a JSON object")
}
