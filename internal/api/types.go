package api

import (
	"context"
)

// CallToolResult represents the result of a tool call in a transport-neutral form.
// String content entries are emitted as text; any other entry is JSON encoded.
type CallToolResult struct {
	Content []interface{} `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolMetadata describes a tool that can be exposed
type ToolMetadata struct {
	Name        string // e.g., "create_swarm_agent", "echo"
	Description string
	Args        []ArgMetadata
}

// ArgMetadata describes a single tool argument.
type ArgMetadata struct {
	Name        string
	Type        string // "string", "integer"
	Required    bool
	Description string
	Default     interface{}

	// Schema holds additional JSON Schema keywords (enum, minimum, maximum).
	Schema map[string]interface{}
}

// ToolProvider is implemented by packages that offer callable tools.
type ToolProvider interface {
	// Returns all tools this provider offers, in catalog order
	GetTools() []ToolMetadata

	// Executes a tool by name
	ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*CallToolResult, error)
}

// ResourceMetadata describes a read-only resource addressable by URI.
type ResourceMetadata struct {
	URI         string
	Name        string
	Description string
	MIMEType    string
}

// ResourceContent is the text body of a resource read.
type ResourceContent struct {
	URI      string
	MIMEType string
	Text     string
}

// ResourceProvider is implemented by packages that publish resources.
type ResourceProvider interface {
	GetResources() []ResourceMetadata
	ReadResource(ctx context.Context, uri string) (*ResourceContent, error)
}
