package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"hivemcp/internal/api"
	"hivemcp/pkg/logging"
)

const (
	// ServerName is reported in serverInfo during initialize.
	ServerName = "multiagent-hive-mcp"
	// ServerVersion is the default serverInfo version.
	ServerVersion = "1.0.0"
)

// JSON-RPC error codes produced by the dispatcher itself. Everything else
// is produced by the MCP server.
const (
	codeParseError    = -32700
	codeInternalError = -32603
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics records request and tool call metrics.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

// WithVersion overrides the reported server version.
func WithVersion(version string) Option {
	return func(d *Dispatcher) {
		if version != "" {
			d.version = version
		}
	}
}

// Dispatcher routes JSON-RPC messages to the tool and resource providers.
// It is transport agnostic: every transport ends up in HandleMessage.
type Dispatcher struct {
	mcp       *server.MCPServer
	tools     api.ToolProvider
	resources api.ResourceProvider
	metrics   *Metrics
	version   string
}

// NewDispatcher registers every tool of tools and every resource of
// resources with a new MCP server.
func NewDispatcher(tools api.ToolProvider, resources api.ResourceProvider, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		tools:     tools,
		resources: resources,
		version:   ServerVersion,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.mcp = server.NewMCPServer(
		ServerName,
		d.version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
		server.WithRecovery(),
	)

	d.registerTools()
	d.registerResources()
	return d
}

// MCPServer exposes the underlying MCP server for the HTTP transports.
func (d *Dispatcher) MCPServer() *server.MCPServer {
	return d.mcp
}

func (d *Dispatcher) registerTools() {
	if d.tools == nil {
		return
	}
	tools := MCPTools(d.tools.GetTools())
	serverTools := make([]server.ServerTool, 0, len(tools))
	for _, tool := range tools {
		serverTools = append(serverTools, server.ServerTool{
			Tool:    tool,
			Handler: d.createToolHandler(tool.Name),
		})
	}
	d.mcp.AddTools(serverTools...)
	logging.Debug("Dispatcher", "Registered %d tools", len(serverTools))
}

// MCPTools converts tool metadata to MCP tool definitions, keeping order.
func MCPTools(metas []api.ToolMetadata) []mcp.Tool {
	tools := make([]mcp.Tool, 0, len(metas))
	for _, meta := range metas {
		tools = append(tools, mcp.Tool{
			Name:        meta.Name,
			Description: meta.Description,
			InputSchema: convertToMCPSchema(meta.Args),
		})
	}
	return tools
}

func (d *Dispatcher) registerResources() {
	if d.resources == nil {
		return
	}
	for _, meta := range d.resources.GetResources() {
		resource := mcp.NewResource(
			meta.URI,
			meta.Name,
			mcp.WithResourceDescription(meta.Description),
			mcp.WithMIMEType(meta.MIMEType),
		)
		d.mcp.AddResource(resource, d.createResourceHandler(meta.URI))
	}
}

// createToolHandler adapts a provider tool to the MCP handler signature.
// Provider errors become JSON-RPC errors whose message is the error text.
func (d *Dispatcher) createToolHandler(toolName string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		if args == nil {
			args = make(map[string]interface{})
		}

		start := time.Now()
		result, err := d.tools.ExecuteTool(ctx, toolName, args)
		d.metrics.observeToolCall(toolName, err, time.Since(start))
		if err != nil {
			logging.Debug("Dispatcher", "Tool %s failed: %v", toolName, err)
			return nil, err
		}
		return convertToMCPResult(result), nil
	}
}

func (d *Dispatcher) createResourceHandler(uri string) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := d.resources.ReadResource(ctx, uri)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      content.URI,
				MIMEType: content.MIMEType,
				Text:     content.Text,
			},
		}, nil
	}
}

// HandleMessage processes one JSON-RPC message and returns the response,
// or nil for notifications. It never panics and never returns an error:
// every failure is a well-formed JSON-RPC error response.
func (d *Dispatcher) HandleMessage(ctx context.Context, raw json.RawMessage) (resp mcp.JSONRPCMessage) {
	var envelope struct {
		ID     json.RawMessage `json:"id,omitempty"`
		Method string          `json:"method"`
	}

	defer func() {
		if r := recover(); r != nil {
			logging.Error("Dispatcher", fmt.Errorf("panic: %v", r), "Recovered while handling %q", envelope.Method)
			resp = newErrorResponse(envelope.ID, codeInternalError, "Internal error")
		}
	}()

	if err := json.Unmarshal(raw, &envelope); err != nil {
		d.metrics.observeRequest("parse_error")
		return newErrorResponse(nil, codeParseError, "Parse error")
	}
	d.metrics.observeRequest(envelope.Method)

	return d.mcp.HandleMessage(ctx, raw)
}

// errorResponse is a JSON-RPC error built without going through the MCP
// server, for failures that happen before or around it.
type errorResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Error   errorBody       `json:"error"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newErrorResponse(id json.RawMessage, code int, message string) errorResponse {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	return errorResponse{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      id,
		Error:   errorBody{Code: code, Message: message},
	}
}

// convertToMCPSchema converts argument metadata to an MCP input schema.
// Detailed schema keywords win over the basic type; the description is
// always taken from the argument.
func convertToMCPSchema(args []api.ArgMetadata) mcp.ToolInputSchema {
	properties := make(map[string]interface{})
	required := []string{}

	for _, arg := range args {
		propSchema := make(map[string]interface{}, len(arg.Schema)+2)
		propSchema["type"] = arg.Type
		for key, value := range arg.Schema {
			propSchema[key] = value
		}
		if arg.Description != "" {
			propSchema["description"] = arg.Description
		}
		if arg.Default != nil {
			propSchema["default"] = arg.Default
		}

		properties[arg.Name] = propSchema
		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// convertToMCPResult converts a provider result to MCP content. String
// entries become text content; anything else is JSON encoded first.
func convertToMCPResult(result *api.CallToolResult) *mcp.CallToolResult {
	mcpContent := make([]mcp.Content, len(result.Content))

	for i, content := range result.Content {
		if text, ok := content.(string); ok {
			mcpContent[i] = mcp.NewTextContent(text)
			continue
		}
		text, err := api.EncodeJSON(content)
		if err != nil {
			text = fmt.Sprintf("%v", content)
		}
		mcpContent[i] = mcp.NewTextContent(text)
	}

	return &mcp.CallToolResult{
		Content: mcpContent,
		IsError: result.IsError,
	}
}
