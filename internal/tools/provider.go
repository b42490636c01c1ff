package tools

import (
	"context"

	"hivemcp/internal/api"
	"hivemcp/internal/hive"
	"hivemcp/internal/nlp"
	"hivemcp/internal/sysinfo"
	"hivemcp/pkg/logging"
)

// Provider implements api.ToolProvider for the hive tool catalog.
// It is safe for concurrent use; all shared state lives in the orchestrator.
type Provider struct {
	orch     *hive.Orchestrator
	analyzer nlp.Analyzer
	host     sysinfo.Provider
	byName   map[ToolName]*entry
}

// NewProvider creates a provider bound to one hive. A nil analyzer or host
// provider falls back to the built-in implementations.
func NewProvider(orch *hive.Orchestrator, analyzer nlp.Analyzer, host sysinfo.Provider) *Provider {
	if analyzer == nil {
		analyzer = nlp.NewKeywordAnalyzer()
	}
	if host == nil {
		host = sysinfo.Runtime{}
	}
	byName := make(map[ToolName]*entry, len(catalog))
	for i := range catalog {
		byName[catalog[i].name] = &catalog[i]
	}
	return &Provider{
		orch:     orch,
		analyzer: analyzer,
		host:     host,
		byName:   byName,
	}
}

// GetTools returns metadata for every tool, in catalog order.
func (p *Provider) GetTools() []api.ToolMetadata {
	return Catalog()
}

// Catalog returns the tool metadata without needing a running hive.
func Catalog() []api.ToolMetadata {
	out := make([]api.ToolMetadata, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, api.ToolMetadata{
			Name:        string(e.name),
			Description: e.description,
			Args:        e.schema.Args(),
		})
	}
	return out
}

// ExecuteTool validates args against the tool's schema and runs it.
// Validation failures are returned as *api.ValidationError before anything
// in the hive is touched.
func (p *Provider) ExecuteTool(ctx context.Context, toolName string, args map[string]interface{}) (*api.CallToolResult, error) {
	e, ok := p.byName[ToolName(toolName)]
	if !ok {
		return nil, api.NewToolNotFoundError(toolName)
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	values, err := e.schema.Validate(args)
	if err != nil {
		logging.Debug("Tools", "Rejected %s call: %v", toolName, err)
		return nil, err
	}

	logging.Debug("Tools", "Executing tool %s", toolName)
	return e.handle(p, ctx, values)
}

// textResult creates a successful text result.
func textResult(text string) *api.CallToolResult {
	return &api.CallToolResult{
		Content: []interface{}{text},
		IsError: false,
	}
}

// jsonResult encodes v as the text of a successful result.
func jsonResult(v interface{}) (*api.CallToolResult, error) {
	text, err := api.EncodeJSON(v)
	if err != nil {
		return nil, err
	}
	return textResult(text), nil
}
