package cmd

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivemcp/internal/hive"
	"hivemcp/internal/resources"
	"hivemcp/internal/server"
	"hivemcp/internal/tools"
)

func newTestServer(t *testing.T) (*hive.Orchestrator, string) {
	t.Helper()
	orch := hive.New(hive.NewState(), hive.Config{})
	d := server.NewDispatcher(tools.NewProvider(orch, nil, nil), resources.NewProvider(orch))
	srv := httptest.NewServer(mcpserver.NewStreamableHTTPServer(d.MCPServer()))
	t.Cleanup(srv.Close)
	return orch, srv.URL + "/mcp"
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		callArgPairs = nil
		callArgsJSON = ""
		statusFlags.Template = ""
		statusFlags.OutputFormat = "table"
		callFlags.OutputFormat = "table"
		toolsFlags.OutputFormat = "table"
		for _, c := range []string{"output", "template", "arg", "args"} {
			for _, cmd := range rootCmd.Commands() {
				if f := cmd.Flags().Lookup(c); f != nil {
					f.Changed = false
				}
			}
		}
	})
}

func TestToolsCommand(t *testing.T) {
	resetFlags(t)

	out, err := executeCommand(t, "tools", "-o", "json")
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, len(tools.Catalog()))
	assert.Equal(t, "create_swarm_agent", rows[0]["name"])
}

func TestToolsCommand_RejectsTemplate(t *testing.T) {
	resetFlags(t)

	_, err := executeCommand(t, "tools", "-o", "template")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestCallCommand(t *testing.T) {
	resetFlags(t)
	orch, endpoint := newTestServer(t)

	out, err := executeCommand(t, "call", "batch_create_agents", "-q", "--endpoint", endpoint,
		"--arg", "count=3", "--args", `{"agent_type":"Learner"}`, "-o", "json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, 3, orch.Status().Metrics.TotalAgents)
}

func TestCallCommand_BadArg(t *testing.T) {
	resetFlags(t)

	_, err := executeCommand(t, "call", "echo", "--arg", "message")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected key=value")
}

func TestStatusCommand_Template(t *testing.T) {
	resetFlags(t)
	orch, endpoint := newTestServer(t)

	_, err := executeCommand(t, "call", "create_swarm_agent", "-q", "--endpoint", endpoint, "--arg", "agent_type=Worker")
	require.NoError(t, err)

	out, err := executeCommand(t, "status", "-q", "--endpoint", endpoint, "--template", "{{.metrics.total_agents}} {{.hive_id | trunc 8}}")
	require.NoError(t, err)
	assert.Equal(t, "1 "+orch.HiveID()[:8], out)
}
