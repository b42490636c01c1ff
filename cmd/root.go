package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"hivemcp/internal/cli"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeUnreachable indicates the hive server could not be reached.
	ExitCodeUnreachable = 2
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hivemcp",
	Short: "Multi-agent hive coordination over the Model Context Protocol",
	Long: `hivemcp runs an in-memory hive of simulated agents and tasks and exposes it
to MCP clients as tools and resources.

Start a server with 'hivemcp serve', then use 'hivemcp status' and
'hivemcp call' to inspect and drive it from the command line.`,
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code derived from the error.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "hivemcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var connErr *cli.ConnectionError
	if errors.As(err, &connErr) {
		return ExitCodeUnreachable
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
