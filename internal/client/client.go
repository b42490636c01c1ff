package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mcpclient "github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"hivemcp/pkg/logging"
)

const (
	// TransportStreamableHTTP connects to a streamable HTTP endpoint.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE connects to an SSE endpoint.
	TransportSSE = "sse"

	// DefaultEndpoint is the streamable endpoint of the default http bridge.
	DefaultEndpoint = "http://localhost:3002/mcp"

	// DefaultTimeout bounds every request.
	DefaultTimeout = 30 * time.Second

	clientName = "hivemcp-cli"
)

// ErrNotConnected is returned when a call is made before Connect.
var ErrNotConnected = errors.New("client not connected")

// Client is an MCP client bound to one endpoint.
type Client struct {
	endpoint  string
	transport string
	timeout   time.Duration
	version   string

	client     *mcpclient.Client
	serverInfo mcp.Implementation
}

// New creates a client. Nothing is sent until Connect.
func New(endpoint, transport string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if transport == "" {
		transport = TransportStreamableHTTP
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint:  endpoint,
		transport: transport,
		timeout:   timeout,
		version:   "1.0.0",
	}
}

// Endpoint returns the endpoint the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ServerInfo returns the server implementation reported during initialize.
func (c *Client) ServerInfo() mcp.Implementation {
	return c.serverInfo
}

// Connect starts the transport and performs the initialize handshake.
func (c *Client) Connect(ctx context.Context) error {
	var (
		mcpClient *mcpclient.Client
		err       error
	)
	switch c.transport {
	case TransportStreamableHTTP:
		mcpClient, err = mcpclient.NewStreamableHttpClient(c.endpoint)
	case TransportSSE:
		mcpClient, err = mcpclient.NewSSEMCPClient(c.endpoint)
	default:
		return fmt.Errorf("unsupported transport type: %s", c.transport)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s client: %w", c.transport, err)
	}

	if err := mcpClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start %s client: %w", c.transport, err)
	}
	c.client = mcpClient

	if err := c.initialize(ctx); err != nil {
		_ = c.client.Close()
		c.client = nil
		return fmt.Errorf("initialization failed: %w", err)
	}

	logging.Debug("Client", "Connected to %s %s at %s", c.serverInfo.Name, c.serverInfo.Version, c.endpoint)
	return nil
}

func (c *Client) initialize(ctx context.Context) error {
	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    clientName,
		Version: c.version,
	}
	req.Params.Capabilities = mcp.ClientCapabilities{}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Initialize(timeoutCtx, req)
	if err != nil {
		return err
	}
	c.serverInfo = result.ServerInfo
	return nil
}

// Close closes the transport.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// ListTools returns the tools advertised by the server.
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	if c.client == nil {
		return nil, ErrNotConnected
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ListTools(timeoutCtx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return result.Tools, nil
}

// CallTool invokes a tool and returns the raw result.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, ErrNotConnected
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	if args != nil {
		req.Params.Arguments = args
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	return result, nil
}

// CallToolText invokes a tool and returns its text content.
func (c *Client) CallToolText(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	result, err := c.CallTool(ctx, name, args)
	if err != nil {
		return "", err
	}

	var output []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			output = append(output, textContent.Text)
		}
	}

	if result.IsError {
		return "", fmt.Errorf("tool error: %s", strings.Join(output, "; "))
	}
	return strings.Join(output, "\n"), nil
}

// CallToolJSON invokes a tool and decodes its text content as JSON. Text
// that is not JSON is returned as a string.
func (c *Client) CallToolJSON(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	text, err := c.CallToolText(ctx, name, args)
	if err != nil {
		return nil, err
	}

	var out interface{}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return text, nil
	}
	return out, nil
}

// ReadResource reads uri and returns its text.
func (c *Client) ReadResource(ctx context.Context, uri string) (string, error) {
	if c.client == nil {
		return "", ErrNotConnected
	}

	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.ReadResource(timeoutCtx, req)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", uri, err)
	}

	for _, content := range result.Contents {
		switch tc := content.(type) {
		case mcp.TextResourceContents:
			return tc.Text, nil
		case *mcp.TextResourceContents:
			return tc.Text, nil
		}
	}
	return "", fmt.Errorf("resource %s has no text content", uri)
}
