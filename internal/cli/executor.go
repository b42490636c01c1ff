package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mark3labs/mcp-go/mcp"

	"hivemcp/internal/client"
	"hivemcp/internal/resources"
)

// ExecutorOptions configures a ToolExecutor.
type ExecutorOptions struct {
	Format    OutputFormat
	Template  string
	NoHeaders bool
	Quiet     bool
	Endpoint  string
	Transport string
	Timeout   time.Duration

	// Out receives formatted output. Defaults to stdout.
	Out io.Writer
}

// ToolExecutor runs commands against a hive server and prints the results.
type ToolExecutor struct {
	client  *client.Client
	options ExecutorOptions
	printer *Printer
}

// NewToolExecutor creates an executor. The transport is inferred from the
// endpoint when not set: URLs ending in /sse use SSE.
func NewToolExecutor(options ExecutorOptions) *ToolExecutor {
	endpoint := options.Endpoint
	if endpoint == "" {
		endpoint = GetDefaultEndpoint()
	}
	transport := options.Transport
	if transport == "" {
		transport = client.TransportStreamableHTTP
		if strings.HasSuffix(strings.TrimRight(endpoint, "/"), "/sse") {
			transport = client.TransportSSE
		}
	}

	return &ToolExecutor{
		client:  client.New(endpoint, transport, options.Timeout),
		options: options,
		printer: NewPrinter(options.Out, options),
	}
}

// Printer returns the printer used for output.
func (e *ToolExecutor) Printer() *Printer {
	return e.printer
}

// Connect connects to the server, showing a spinner unless quiet.
func (e *ToolExecutor) Connect(ctx context.Context) error {
	if e.options.Quiet {
		return e.connect(ctx)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Connecting to hive server..."
	s.Start()
	defer s.Stop()

	if err := e.connect(ctx); err != nil {
		s.FinalMSG = text.FgRed.Sprint("Failed to connect to hive server") + "\n"
		return err
	}
	return nil
}

func (e *ToolExecutor) connect(ctx context.Context) error {
	if err := e.client.Connect(ctx); err != nil {
		return ClassifyConnectionError(err, e.client.Endpoint())
	}
	return nil
}

// Close closes the connection.
func (e *ToolExecutor) Close() error {
	return e.client.Close()
}

// Execute calls a tool and prints its result.
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, args map[string]interface{}) error {
	body, err := e.client.CallToolText(ctx, toolName, args)
	if err != nil {
		return fmt.Errorf("failed to execute tool %s: %w", toolName, err)
	}
	return e.printer.PrintText(body)
}

// ShowStatus reads hive://status and prints it.
func (e *ToolExecutor) ShowStatus(ctx context.Context) error {
	body, err := e.client.ReadResource(ctx, resources.URIStatus)
	if err != nil {
		return err
	}
	return e.printer.PrintStatus(body)
}

// ListTools prints the tools advertised by the server.
func (e *ToolExecutor) ListTools(ctx context.Context) error {
	tools, err := e.client.ListTools(ctx)
	if err != nil {
		return err
	}
	return e.printer.PrintTools(tools)
}

// ListTools prints tools without a server connection.
func ListTools(tools []mcp.Tool, options ExecutorOptions) error {
	return NewPrinter(options.Out, options).PrintTools(tools)
}
