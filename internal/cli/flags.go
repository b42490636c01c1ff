package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"hivemcp/internal/client"
)

// EndpointEnvVar overrides the default endpoint for commands that connect
// to a running server.
const EndpointEnvVar = "HIVEMCP_ENDPOINT"

// CommandFlags holds the flag values shared by commands that talk to a
// running hive server.
type CommandFlags struct {
	// OutputFormat is the requested output format
	OutputFormat string
	// Template is the Go template used with -o template
	Template string
	// NoHeaders suppresses the header row in table output
	NoHeaders bool
	// Quiet suppresses the spinner
	Quiet bool
	// Endpoint is the MCP endpoint URL
	Endpoint string
	// Transport is the client transport, streamable-http or sse
	Transport string
	// Timeout bounds each request
	Timeout time.Duration
}

// GetDefaultEndpoint returns $HIVEMCP_ENDPOINT or the default local endpoint.
func GetDefaultEndpoint() string {
	if endpoint := os.Getenv(EndpointEnvVar); endpoint != "" {
		return endpoint
	}
	return client.DefaultEndpoint
}

// RegisterOutputFlags registers --output/-o and --no-headers.
func RegisterOutputFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", string(OutputFormatTable), "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&flags.NoHeaders, "no-headers", false, "Suppress header row in table output")
}

// RegisterConnectionFlags registers the flags needed to reach a server.
//
// The registered flags are:
//   - --endpoint: MCP endpoint URL (env: HIVEMCP_ENDPOINT)
//   - --client-transport: streamable-http or sse
//   - --timeout: per-request timeout
//   - --quiet/-q: no spinner
func RegisterConnectionFlags(cmd *cobra.Command, flags *CommandFlags) {
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", GetDefaultEndpoint(), "MCP endpoint URL (env: "+EndpointEnvVar+")")
	cmd.Flags().StringVar(&flags.Transport, "client-transport", "", "Client transport: streamable-http or sse (default: inferred from the endpoint)")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", client.DefaultTimeout, "Request timeout")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress progress output")
}

// ToExecutorOptions converts the flags to ExecutorOptions.
func (f *CommandFlags) ToExecutorOptions() ExecutorOptions {
	return ExecutorOptions{
		Format:    OutputFormat(f.OutputFormat),
		Template:  f.Template,
		NoHeaders: f.NoHeaders,
		Quiet:     f.Quiet,
		Endpoint:  f.Endpoint,
		Transport: f.Transport,
		Timeout:   f.Timeout,
	}
}
